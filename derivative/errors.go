// SPDX-License-Identifier: MIT
// Package derivative: sentinel error set.
//
// Every routine returns these sentinels wrapped with an operation tag
// ("Derivative: ...: %w"); callers match with errors.Is.

package derivative

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedScheme is returned for a Scheme (or integer mode) outside
	// {Forward, Central, FivePoint, Richardson}.
	ErrUnsupportedScheme = errors.New("derivative: unsupported scheme")

	// ErrInvalidStep is returned when h is not a finite, strictly positive value.
	ErrInvalidStep = errors.New("derivative: step must be finite and > 0")

	// ErrInvalidSweep is returned when Sweep is asked for a number of halvings
	// outside [0, MaxHalvings].
	ErrInvalidSweep = errors.New("derivative: halvings out of range")
)

// derivativeErrorf tags err with the operation name.
func derivativeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
