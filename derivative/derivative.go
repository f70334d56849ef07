// SPDX-License-Identifier: MIT

package derivative

import (
	"fmt"

	"github.com/katalvlaran/lvnum/fn"
)

const (
	opDerivative = "Derivative"
	opEstimate   = "Estimate"
	opSweep      = "Sweep"
)

// Derivative estimates f′(x) with scheme s and step h.
//
// Implementation:
//   - Stage 1 (Validate): f non-nil, x finite, h finite and > 0, s defined.
//   - Stage 2 (Execute): evaluate the stencil of s.
//
// Errors:
//   - fn.ErrNilFunction, fn.ErrNonFinite, ErrInvalidStep, ErrUnsupportedScheme.
//
// Complexity:
//   - Time O(1): s.Evaluations() calls of f. Space O(1).
func Derivative(f fn.Function, x float64, s Scheme, h float64) (float64, error) {
	if err := fn.Validate(f); err != nil {
		return 0, derivativeErrorf(opDerivative, err)
	}
	if err := fn.ValidateFinite(x); err != nil {
		return 0, derivativeErrorf(opDerivative, fmt.Errorf("x: %w", err))
	}
	if !validStep(h) {
		return 0, derivativeErrorf(opDerivative, fmt.Errorf("h=%v: %w", h, ErrInvalidStep))
	}

	switch s {
	case Forward:
		return (f.Eval(x+h) - f.Eval(x)) / h, nil
	case Central:
		return (f.Eval(x+h) - f.Eval(x-h)) / (2 * h), nil
	case FivePoint:
		return fivePoint(f, x, h), nil
	case Richardson:
		// Combining h and 2h cancels the h⁴ term of the five-point stencil.
		fine := fivePoint(f, x, h)
		coarse := fivePoint(f, x, 2*h)
		return (16*fine - coarse) / 15, nil
	default:
		return 0, derivativeErrorf(opDerivative, fmt.Errorf("%v: %w", s, ErrUnsupportedScheme))
	}
}

// Estimate is Derivative with functional options.
// Defaults: DefaultScheme, DefaultStep.
func Estimate(f fn.Function, x float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	d, err := Derivative(f, x, o.scheme, o.step)
	if err != nil {
		return 0, derivativeErrorf(opEstimate, err)
	}

	return d, nil
}

// fivePoint is the fourth-order stencil (8f(x+h) − 8f(x−h) − f(x+2h) + f(x−2h)) / 12h.
func fivePoint(f fn.Function, x, h float64) float64 {
	return (8*f.Eval(x+h) - 8*f.Eval(x-h) - f.Eval(x+2*h) + f.Eval(x-2*h)) / (12 * h)
}
