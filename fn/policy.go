// SPDX-License-Identifier: MIT
// Package fn: numeric policy shared across lvnum.
//
// Defaults are the single source of truth for zero-value behavior of the
// option sets in derivative and integrate.

package fn

import "math"

const (
	// DefaultEpsilon is the absolute tolerance used by callers comparing results.
	DefaultEpsilon = 1e-9

	// DefaultStep is the finite-difference step used when none is supplied.
	DefaultStep = 1e-4

	// DefaultIntervals is the subinterval count used when none is supplied.
	DefaultIntervals = 10000

	// MachineEpsilon is the spacing between 1.0 and the next float64.
	MachineEpsilon = 0x1p-52
)

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidateFinite returns ErrNonFinite if any of xs is NaN or ±Inf.
// Time: O(len(xs)). Space: O(1).
func ValidateFinite(xs ...float64) error {
	for _, x := range xs {
		if !IsFinite(x) {
			return ErrNonFinite
		}
	}

	return nil
}
