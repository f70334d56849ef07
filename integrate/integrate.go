// SPDX-License-Identifier: MIT

package integrate

import (
	"fmt"

	"github.com/katalvlaran/lvnum/fn"
)

const opIntegrate = "Integrate"

// Integrate estimates ∫_a^b f(x)dx with n rectangles.
//
// Implementation:
//   - Stage 1 (Validate): f non-nil, a and b finite, n > 0.
//   - Stage 2 (Execute): δ = (b−a)/n; sum f at a + (i+offset)·δ for i in [0,n).
//   - Stage 3 (Finalize): return δ·sum.
//
// Behavior highlights:
//   - a == b returns 0 without evaluating f.
//   - a > b gives a negative δ, hence the signed integral.
//   - b−a beyond float64 range is handled by splitting the width; a result
//     that itself overflows returns fn.ErrNonFinite.
//
// Errors:
//   - fn.ErrNilFunction, fn.ErrNonFinite, ErrInvalidIntervalCount.
//
// Complexity:
//   - Time O(n) calls of f. Space O(1).
func Integrate(f fn.Function, a, b float64, n int, opts ...Option) (float64, error) {
	if err := fn.Validate(f); err != nil {
		return 0, integrateErrorf(opIntegrate, err)
	}
	if err := fn.ValidateFinite(a, b); err != nil {
		return 0, integrateErrorf(opIntegrate, fmt.Errorf("bounds [%v, %v]: %w", a, b, err))
	}
	if n <= 0 {
		return 0, integrateErrorf(opIntegrate, fmt.Errorf("n=%d: %w", n, ErrInvalidIntervalCount))
	}
	o := gatherOptions(opts...)
	if a == b {
		return 0, nil
	}

	offset := ruleOffsets[o.rule]
	delta := (b - a) / float64(n)
	var sum float64
	if fn.IsFinite(delta) && fn.IsFinite(float64(n)*delta) {
		for i := 0; i < n; i++ {
			sum += f.Eval(a + (float64(i)+offset)*delta)
		}
	} else {
		// b−a overflows: split the width and place nodes by interpolation.
		delta = b/float64(n) - a/float64(n)
		for i := 0; i < n; i++ {
			t := (float64(i) + offset) / float64(n)
			sum += f.Eval(a*(1-t) + b*t)
		}
	}

	area := delta * sum
	if !fn.IsFinite(area) && fn.IsFinite(sum) {
		return 0, integrateErrorf(opIntegrate, fmt.Errorf("area over [%v, %v]: %w", a, b, fn.ErrNonFinite))
	}

	return area, nil
}
