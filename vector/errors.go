// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
//
// ERROR PRIORITY (enforced in tests):
// negative dim -> dimension mismatch (v, then w) -> nil output.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when dim < 0.
	ErrInvalidDimension = errors.New("vector: dimension must be >= 0")

	// ErrDimensionMismatch is returned when dim exceeds the length of v or w.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilOutput is returned by DotTo when the output pointer is nil.
	ErrNilOutput = errors.New("vector: output is nil")
)

// vectorErrorf tags err with the operation name.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
