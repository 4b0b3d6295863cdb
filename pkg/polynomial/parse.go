package polynomial

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// termRE matches one signed term: an optional sign, a coefficient with
// at most one decimal point, the literal "*X^", and a non-negative
// integer exponent. It is applied after whitespace stripping, so
// "- 9.3 * X ^ 2" matches as "-9.3*X^2".
var termRE = regexp.MustCompile(`([+-]?\d+(?:\.\d+)?)\*X\^(\d+)`)

// ParseSide extracts coefficient/exponent terms from one side of an
// equation. The scan is best-effort: all whitespace is stripped first,
// then every non-overlapping match of termRE contributes to the result,
// and anything that does not match is silently skipped. A side with no
// recognizable terms yields an empty mapping, equivalent to all zeros.
//
// When the same exponent appears in several terms, their coefficients
// sum.
func ParseSide(text string) Coefficients {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	side := make(Coefficients)
	for _, m := range termRE.FindAllStringSubmatch(stripped, -1) {
		coef, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		exp, err := strconv.Atoi(m[2])
		if err != nil {
			// Exponent too large for int; treat like any other
			// unrecognizable term.
			continue
		}
		side.Add(exp, coef)
	}
	return side
}
