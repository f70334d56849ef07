// SPDX-License-Identifier: MIT

package quadratic

import (
	"errors"
	"fmt"
)

// ErrDegenerateCoefficients is returned when the leading coefficient is zero
// (or, under WithLinearFallback, when both a and b are zero).
var ErrDegenerateCoefficients = errors.New("quadratic: degenerate coefficients")

// quadraticErrorf tags err with the operation name.
func quadraticErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
