// SPDX-License-Identifier: MIT

package vector

import "fmt"

const (
	opDot   = "Dot"
	opDotTo = "DotTo"
)

// Dot returns Σ v[i]·w[i] for i in [0, dim).
//
// Errors: ErrInvalidDimension, ErrDimensionMismatch.
// Complexity: Time O(dim). Space O(1).
func Dot(v, w []float64, dim int) (float64, error) {
	if err := ValidateDim(v, w, dim); err != nil {
		return 0, vectorErrorf(opDot, fmt.Errorf("dim=%d len(v)=%d len(w)=%d: %w", dim, len(v), len(w), err))
	}

	return dot(v, w, dim), nil
}

// DotTo writes Σ v[i]·w[i] for i in [0, dim) into *out.
// *out is left untouched on error.
//
// Errors: ErrInvalidDimension, ErrDimensionMismatch, ErrNilOutput.
// Complexity: Time O(dim). Space O(1).
func DotTo(v, w []float64, dim int, out *float64) error {
	if err := ValidateDim(v, w, dim); err != nil {
		return vectorErrorf(opDotTo, fmt.Errorf("dim=%d len(v)=%d len(w)=%d: %w", dim, len(v), len(w), err))
	}
	if out == nil {
		return vectorErrorf(opDotTo, ErrNilOutput)
	}
	*out = dot(v, w, dim)

	return nil
}

// dot is the shared kernel; the fixed accumulation order keeps Dot and DotTo
// bit-identical. Callers must have validated dim.
func dot(v, w []float64, dim int) float64 {
	v, w = v[:dim], w[:dim]
	var acc float64
	for i := range v {
		acc += v[i] * w[i]
	}

	return acc
}
