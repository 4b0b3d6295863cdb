package polynomial

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
)

func TestSolveDegreeZero(t *testing.T) {
	t.Run("identity has all reals", func(t *testing.T) {
		sol, err := Solve(Coefficients{0: 0})
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if sol.Kind != AllReals {
			t.Errorf("Kind = %v, want %v", sol.Kind, AllReals)
		}
	})

	t.Run("empty mapping has all reals", func(t *testing.T) {
		sol, err := Solve(Coefficients{})
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if sol.Kind != AllReals {
			t.Errorf("Kind = %v, want %v", sol.Kind, AllReals)
		}
	})

	t.Run("nonzero constant has no solution", func(t *testing.T) {
		sol, err := Solve(Coefficients{0: 4, 1: 0})
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if sol.Kind != NoSolution {
			t.Errorf("Kind = %v, want %v", sol.Kind, NoSolution)
		}
	})
}

func TestSolveLinear(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want float64
	}{
		{"scenario one", Coefficients{0: 4, 1: 4}, -1},
		{"scenario two", Coefficients{0: 5, 1: 4, 2: 0}, -1.25},
		{"negative slope", Coefficients{0: 6, 1: -2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := Solve(tt.c)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if sol.Kind != OneReal {
				t.Fatalf("Kind = %v, want %v", sol.Kind, OneReal)
			}
			if math.Abs(sol.X1-tt.want) > 1e-9 {
				t.Errorf("X1 = %v, want %v", sol.X1, tt.want)
			}
		})
	}
}

// The epsilon guard in solveLinear is unreachable through Solve (degree
// classification already filtered near-zero leading coefficients) but
// still protects direct calls with degenerate inputs.
func TestSolveLinearDegenerate(t *testing.T) {
	sol := solveLinear(0, 5)
	if sol.Kind != NoSolution {
		t.Errorf("Kind = %v, want %v", sol.Kind, NoSolution)
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want Solution
	}{
		{
			name: "two real roots",
			c:    Coefficients{2: 1, 1: -3, 0: 2},
			want: Solution{Kind: TwoReal, X1: 1, X2: 2},
		},
		{
			name: "two real roots, negative leading coefficient",
			c:    Coefficients{2: -1, 0: 1},
			want: Solution{Kind: TwoReal, X1: -1, X2: 1},
		},
		{
			name: "repeated root",
			c:    Coefficients{2: 1, 1: -2, 0: 1},
			want: Solution{Kind: OneReal, X1: 1},
		},
		{
			name: "complex pair",
			c:    Coefficients{2: 1, 0: 1},
			want: Solution{Kind: ComplexPair, Real: 0, Imag: 1},
		},
		{
			name: "complex pair, negative leading coefficient",
			c:    Coefficients{2: -1, 0: -1},
			want: Solution{Kind: ComplexPair, Real: 0, Imag: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := Solve(tt.c)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if sol.Kind != tt.want.Kind {
				t.Fatalf("Kind = %v, want %v", sol.Kind, tt.want.Kind)
			}
			fields := []struct {
				name      string
				got, want float64
			}{
				{"X1", sol.X1, tt.want.X1},
				{"X2", sol.X2, tt.want.X2},
				{"Real", sol.Real, tt.want.Real},
				{"Imag", sol.Imag, tt.want.Imag},
			}
			for _, f := range fields {
				if math.Abs(f.got-f.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
				}
			}
		})
	}
}

func TestSolveOrdersRealRoots(t *testing.T) {
	sol, err := Solve(Coefficients{2: 3, 1: 12, 0: 4})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Kind != TwoReal {
		t.Fatalf("Kind = %v, want %v", sol.Kind, TwoReal)
	}
	if sol.X1 > sol.X2 {
		t.Errorf("roots out of order: X1=%v X2=%v", sol.X1, sol.X2)
	}
}

func TestSolveDegreeTooHigh(t *testing.T) {
	_, err := Solve(Coefficients{3: -5.6, 0: 5})
	if err == nil {
		t.Fatal("expected an error for degree 3")
	}
	if !errors.Is(err, errors.ErrCodeDegreeTooHigh) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDegreeTooHigh)
	}
}

func TestComplexPairImagPositive(t *testing.T) {
	// Both signs of the leading coefficient must yield a positive
	// imaginary magnitude.
	for _, a := range []float64{1, -1} {
		sol, err := Solve(Coefficients{2: a, 1: a, 0: a})
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		if sol.Kind != ComplexPair {
			t.Fatalf("Kind = %v, want %v", sol.Kind, ComplexPair)
		}
		if sol.Imag <= 0 {
			t.Errorf("Imag = %v, want > 0 (a=%v)", sol.Imag, a)
		}
	}
}

// Every returned root satisfies the original equation to within 1e-4,
// using complex arithmetic for conjugate pairs.
func TestRootsSatisfyEquation(t *testing.T) {
	cases := []struct{ a, b, c float64 }{
		{1, -3, 2},
		{3, 13, 4},
		{-2, 4, 16},
		{1, 2, 1},
		{0.5, -0.1, -7},
		{1, 0, 1},
		{2, 2, 5},
		{-1, 3, -9},
	}

	for _, tc := range cases {
		sol, err := Solve(Coefficients{2: tc.a, 1: tc.b, 0: tc.c})
		if err != nil {
			t.Fatalf("Solve(%v) failed: %v", tc, err)
		}
		eval := func(x float64) float64 {
			return tc.a*x*x + tc.b*x + tc.c
		}
		switch sol.Kind {
		case TwoReal:
			for _, x := range []float64{sol.X1, sol.X2} {
				if r := math.Abs(eval(x)); r > 1e-4 {
					t.Errorf("residual %v for root %v of %v", r, x, tc)
				}
			}
		case OneReal:
			if r := math.Abs(eval(sol.X1)); r > 1e-4 {
				t.Errorf("residual %v for root %v of %v", r, sol.X1, tc)
			}
		case ComplexPair:
			for _, z := range []complex128{
				complex(sol.Real, sol.Imag),
				complex(sol.Real, -sol.Imag),
			} {
				residual := complex(tc.a, 0)*z*z + complex(tc.b, 0)*z + complex(tc.c, 0)
				if r := cmplx.Abs(residual); r > 1e-4 {
					t.Errorf("residual %v for root %v of %v", r, z, tc)
				}
			}
		default:
			t.Errorf("unexpected kind %v for %v", sol.Kind, tc)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{NoSolution, "no solution"},
		{AllReals, "all reals"},
		{OneReal, "one real root"},
		{TwoReal, "two real roots"},
		{ComplexPair, "complex pair"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
