package polynomial

import (
	"math"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
)

// Sqrt computes the square root of n with Heron's method: starting
// from x = n, iterate x = (x + n/x) / 2 until two successive
// approximations differ by less than SqrtTolerance.
//
// n must be non-negative; a negative input returns a DOMAIN_ERROR
// rather than silently producing NaN, so internal misuse fails loudly.
// The solver branches on the discriminant sign before calling Sqrt, so
// this path is never reached through the public solve pipeline.
func Sqrt(n float64) (float64, error) {
	if n < 0 {
		return 0, errors.New(errors.ErrCodeDomain, "square root of negative number %g", n)
	}
	if n == 0 {
		return 0, nil
	}
	x := n
	for {
		next := (x + n/x) / 2
		if math.Abs(next-x) < SqrtTolerance {
			return next, nil
		}
		x = next
	}
}
