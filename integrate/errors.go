// SPDX-License-Identifier: MIT

package integrate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIntervalCount is returned when n ≤ 0.
	ErrInvalidIntervalCount = errors.New("integrate: interval count must be > 0")
)

// integrateErrorf tags err with the operation name.
func integrateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
