// SPDX-License-Identifier: MIT

// Package vector computes the inner product of two float64 sequences,
// offered in two calling conventions:
//
//	Dot(v, w, dim)        (float64, error)  — returns the value
//	DotTo(v, w, dim, &r)  error             — writes the value into r
//
// Both share one kernel with a fixed i = 0..dim−1 accumulation order, so they
// agree bit for bit on identical inputs. dim is validated against both
// lengths; reading past either sequence is reported as ErrDimensionMismatch.
package vector
