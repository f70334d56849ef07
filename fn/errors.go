// SPDX-License-Identifier: MIT
// Package fn: sentinel errors shared by every numeric package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers match with errors.Is.
//   - Numeric packages wrap these with their own operation tag via %w.

package fn

import "errors"

var (
	// ErrNilFunction is returned when a nil Function (or nil Func) is injected.
	ErrNilFunction = errors.New("fn: function is nil")

	// ErrNonFinite signals a NaN or ±Inf argument where finite values are required.
	ErrNonFinite = errors.New("fn: NaN or Inf encountered")
)
