package polynomial

import (
	"fmt"
	"math"
	"testing"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Coefficients
	}{
		{
			name: "single term",
			text: "5*X^0",
			want: Coefficients{0: 5},
		},
		{
			name: "spaced terms",
			text: "5 * X^0 + 4 * X^1",
			want: Coefficients{0: 5, 1: 4},
		},
		{
			name: "negative decimal coefficient",
			text: "-9.3*X^2",
			want: Coefficients{2: -9.3},
		},
		{
			name: "subtraction between terms",
			text: "5*X^0-4*X^1",
			want: Coefficients{0: 5, 1: -4},
		},
		{
			name: "repeated exponent sums",
			text: "2*X^1 + 3*X^1",
			want: Coefficients{1: 5},
		},
		{
			name: "whitespace inside a term",
			text: "  - 9.3 * X ^ 2 ",
			want: Coefficients{2: -9.3},
		},
		{
			name: "unrecognizable fragments skipped",
			text: "hello + 4*X^1 + world",
			want: Coefficients{1: 4},
		},
		{
			name: "term without explicit coefficient skipped",
			text: "X^2 + 3*X^1",
			want: Coefficients{1: 3},
		},
		{
			name: "empty side",
			text: "",
			want: Coefficients{},
		},
		{
			name: "nothing recognizable",
			text: "a + b - c",
			want: Coefficients{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSide(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSide(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for exp, coef := range tt.want {
				if math.Abs(got.At(exp)-coef) > 1e-12 {
					t.Errorf("ParseSide(%q)[%d] = %v, want %v", tt.text, exp, got.At(exp), coef)
				}
			}
		})
	}
}

// A single-term side survives a parse → render → parse round trip with
// its coefficient and exponent intact.
func TestParseSideRenderRoundTrip(t *testing.T) {
	cases := []struct {
		coef float64
		exp  int
	}{
		{5, 0},
		{-4, 1},
		{9.3, 2},
		{-0.5, 2},
		{123.456, 1},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v_X^%d", tc.coef, tc.exp), func(t *testing.T) {
			side := ParseSide(fmt.Sprintf("%v*X^%d", tc.coef, tc.exp))
			if len(side) != 1 {
				t.Fatalf("expected one term, got %v", side)
			}
			reparsed := ParseSide(side.String())
			if got := reparsed.At(tc.exp); math.Abs(got-tc.coef) > 1e-12 {
				t.Errorf("round trip coefficient = %v, want %v", got, tc.coef)
			}
		})
	}
}
