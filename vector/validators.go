// SPDX-License-Identifier: MIT

package vector

// ValidateDim checks that dim is non-negative and that both v and w hold at
// least dim elements. nil slices are treated as length 0.
// Time: O(1). Space: O(1).
func ValidateDim(v, w []float64, dim int) error {
	if dim < 0 {
		return vectorErrorf("ValidateDim", ErrInvalidDimension)
	}
	if dim > len(v) {
		return vectorErrorf("ValidateDim: v", ErrDimensionMismatch)
	}
	if dim > len(w) {
		return vectorErrorf("ValidateDim: w", ErrDimensionMismatch)
	}

	return nil
}
