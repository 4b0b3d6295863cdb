// Package polynomial implements the core equation-solving pipeline:
// parsing terms from equation text, reducing both sides into a single
// canonical form, classifying the degree, and computing roots for
// polynomials of degree two or less.
//
// The package is purely computational. It performs no I/O and holds no
// state across calls; every function consumes immutable inputs and
// produces a new value.
//
// # Pipeline
//
// The stages compose in a fixed order:
//
//	left := polynomial.ParseSide("5*X^0+4*X^1")
//	right := polynomial.ParseSide("1*X^0")
//	reduced := polynomial.Reduce(left, right)
//	fmt.Println(reduced.String() + " = 0") // "4 * X^0 + 4 * X^1 = 0"
//	sol, err := polynomial.Solve(reduced)
//
// # Tolerances
//
// Coefficients with magnitude at or below Epsilon are treated as exactly
// zero throughout, absorbing floating-point rounding introduced by the
// parse and reduce steps. Sqrt iterates until successive approximations
// differ by less than SqrtTolerance.
package polynomial

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	// Epsilon is the magnitude below which a coefficient (or a
	// discriminant) is considered numerically zero.
	Epsilon = 1e-8

	// SqrtTolerance is the convergence threshold for Sqrt: iteration
	// stops once two successive approximations differ by less than this.
	SqrtTolerance = 1e-10
)

// Coefficients is a sparse polynomial keyed by exponent. A missing
// exponent is equivalent to a zero coefficient; use At for the
// zero-defaulting lookup. Maps are built once per equation side and not
// mutated after construction.
type Coefficients map[int]float64

// At returns the coefficient for exp, or 0 when no entry exists.
func (c Coefficients) At(exp int) float64 {
	return c[exp]
}

// Add accumulates coef onto the entry for exp, creating it if needed.
// Repeated terms with the same exponent therefore sum.
func (c Coefficients) Add(exp int, coef float64) {
	c[exp] += coef
}

// Degree returns the highest exponent whose coefficient magnitude
// exceeds Epsilon, or 0 when every coefficient is numerically zero.
func (c Coefficients) Degree() int {
	degree := 0
	for exp, coef := range c {
		if exp > degree && math.Abs(coef) > Epsilon {
			degree = exp
		}
	}
	return degree
}

// Exponents returns the exponents present in the mapping in ascending
// order, including entries whose coefficient is zero.
func (c Coefficients) Exponents() []int {
	exps := make([]int, 0, len(c))
	for exp := range c {
		exps = append(exps, exp)
	}
	sort.Ints(exps)
	return exps
}

// String renders the canonical reduced form ordered by ascending
// exponent, e.g. "4 * X^0 + 4 * X^1". Zero-coefficient terms are
// omitted unless the mapping holds a single entry, which is always
// shown (so an all-zero equation renders "0 * X^0" rather than an
// empty string). An empty mapping renders "0". The caller appends
// " = 0" for display; this string has no effect on solving.
func (c Coefficients) String() string {
	exps := c.Exponents()

	shown := make([]int, 0, len(exps))
	for _, exp := range exps {
		if c[exp] != 0 {
			shown = append(shown, exp)
		}
	}
	if len(exps) == 1 {
		shown = exps
	}
	if len(shown) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, exp := range shown {
		coef := c[exp]
		switch {
		case i == 0 && coef < 0:
			b.WriteString("-")
		case i > 0 && coef < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s * X^%d", formatCoefficient(math.Abs(coef)), exp)
	}
	return b.String()
}

// Reduce computes left minus right over the union of exponents present
// on either side. Every exponent seen on either side gets an entry in
// the result, even when the net coefficient is exactly zero.
func Reduce(left, right Coefficients) Coefficients {
	reduced := make(Coefficients, len(left)+len(right))
	for exp, coef := range left {
		reduced[exp] = coef
	}
	for exp, coef := range right {
		reduced[exp] -= coef
	}
	return reduced
}

// formatCoefficient renders a coefficient with the shortest exact
// decimal representation ("4", "9.3", "1.25").
func formatCoefficient(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
