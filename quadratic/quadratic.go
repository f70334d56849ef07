// SPDX-License-Identifier: MIT

package quadratic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/fn"
)

const (
	opSolve       = "Solve"
	opSolveLinear = "SolveLinear"
)

// Solve returns the real roots of a·x² + b·x + c = 0.
//
// Errors:
//   - fn.ErrNonFinite if any coefficient is NaN or ±Inf, or if b² − 4ac
//     overflows float64.
//   - ErrDegenerateCoefficients if a == 0 (and no linear fallback applies).
//
// Complexity: O(1).
func Solve(a, b, c float64, opts ...Option) (Roots, error) {
	if err := fn.ValidateFinite(a, b, c); err != nil {
		return Roots{}, quadraticErrorf(opSolve, err)
	}
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if a == 0 {
		if o.linearFallback {
			r, err := SolveLinear(b, c)
			if err != nil {
				return Roots{}, quadraticErrorf(opSolve, err)
			}
			return r, nil
		}
		return Roots{}, quadraticErrorf(opSolve, fmt.Errorf("a=0: %w", ErrDegenerateCoefficients))
	}

	var r Roots
	delta := b*b - 4*a*c
	if !fn.IsFinite(delta) {
		return Roots{}, quadraticErrorf(opSolve, fmt.Errorf("discriminant: %w", fn.ErrNonFinite))
	}
	switch {
	case delta > 0:
		sq := math.Sqrt(delta)
		r.Count = 2
		r.Values[0] = (-b + sq) / (2 * a)
		r.Values[1] = (-b - sq) / (2 * a)
	case delta == 0:
		r.Count = 1
		r.Values[0] = -b / (2 * a)
	}

	return r, nil
}

// SolveLinear returns the root of b·x + c = 0.
// b == 0 yields ErrDegenerateCoefficients, whether c is zero (every x is a
// solution) or not (no solution).
func SolveLinear(b, c float64) (Roots, error) {
	if err := fn.ValidateFinite(b, c); err != nil {
		return Roots{}, quadraticErrorf(opSolveLinear, err)
	}
	if b == 0 {
		return Roots{}, quadraticErrorf(opSolveLinear, fmt.Errorf("b=0, c=%v: %w", c, ErrDegenerateCoefficients))
	}

	return Roots{Count: 1, Values: [2]float64{-c / b}}, nil
}
