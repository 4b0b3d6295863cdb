package polynomial

import (
	"math"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
)

// Kind identifies the shape of a solution set.
type Kind int

// Solution kinds, ordered from empty to richest.
const (
	// NoSolution marks a contradiction such as "4 = 0"; the solution
	// set is empty.
	NoSolution Kind = iota

	// AllReals marks an identity such as "0 = 0"; every real number
	// satisfies the equation.
	AllReals

	// OneReal marks a single real root: a linear equation, or a
	// quadratic whose discriminant is numerically zero.
	OneReal

	// TwoReal marks a quadratic with a strictly positive discriminant
	// and two distinct real roots.
	TwoReal

	// ComplexPair marks a quadratic with a strictly negative
	// discriminant and a conjugate pair of complex roots.
	ComplexPair
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "no solution"
	case AllReals:
		return "all reals"
	case OneReal:
		return "one real root"
	case TwoReal:
		return "two real roots"
	case ComplexPair:
		return "complex pair"
	default:
		return "unknown"
	}
}

// Solution is the tagged outcome of solving a reduced equation. The
// fields that are meaningful depend on Kind:
//
//   - OneReal: X1 holds the root.
//   - TwoReal: X1 and X2 hold the roots, X1 <= X2.
//   - ComplexPair: the roots are Real ± Imag·i, with Imag > 0.
//
// A Solution is produced once by Solve and never mutated. Formatting
// for display happens at the output boundary, not here.
type Solution struct {
	Kind Kind

	X1 float64 // first (or only) real root
	X2 float64 // second real root, TwoReal only

	Real float64 // real part of the complex pair
	Imag float64 // imaginary magnitude of the complex pair, positive
}

// Solve dispatches on the degree of the reduced mapping and computes
// the solution set.
//
// Degrees above two are a policy limit: Solve returns a structured
// DEGREE_TOO_HIGH error without attempting any root computation.
// Callers are expected to have already shown the reduced form and
// degree before surfacing that message.
func Solve(c Coefficients) (Solution, error) {
	degree := c.Degree()
	switch degree {
	case 0:
		if math.Abs(c.At(0)) < Epsilon {
			return Solution{Kind: AllReals}, nil
		}
		return Solution{Kind: NoSolution}, nil
	case 1:
		return solveLinear(c.At(1), c.At(0)), nil
	case 2:
		return solveQuadratic(c.At(2), c.At(1), c.At(0))
	default:
		return Solution{}, errors.New(errors.ErrCodeDegreeTooHigh,
			"polynomial degree %d is strictly greater than 2", degree)
	}
}

// solveLinear solves a*X + b = 0. Degree classification guarantees a
// non-negligible a on the normal path; the zero check only guards
// direct calls with degenerate inputs.
func solveLinear(a, b float64) Solution {
	if math.Abs(a) < Epsilon {
		return Solution{Kind: NoSolution}
	}
	return Solution{Kind: OneReal, X1: -b / a}
}

// solveQuadratic solves a*X^2 + b*X + c = 0 by branching on the sign
// of the discriminant. The sign is checked before every Sqrt call, so
// the DOMAIN_ERROR path in Sqrt stays unreachable from here.
func solveQuadratic(a, b, c float64) (Solution, error) {
	disc := b*b - 4*a*c
	switch {
	case disc > Epsilon:
		root, err := Sqrt(disc)
		if err != nil {
			return Solution{}, err
		}
		x1 := (-b - root) / (2 * a)
		x2 := (-b + root) / (2 * a)
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		return Solution{Kind: TwoReal, X1: x1, X2: x2}, nil
	case disc < -Epsilon:
		root, err := Sqrt(-disc)
		if err != nil {
			return Solution{}, err
		}
		imag := root / (2 * a)
		if imag < 0 {
			imag = -imag
		}
		return Solution{Kind: ComplexPair, Real: -b / (2 * a), Imag: imag}, nil
	default:
		// |disc| <= Epsilon: a numerically repeated root.
		return Solution{Kind: OneReal, X1: -b / (2 * a)}, nil
	}
}
