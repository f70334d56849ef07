// SPDX-License-Identifier: MIT

package series

import (
	"fmt"

	"github.com/katalvlaran/lvnum/fn"
)

// Sum returns Σ f(i) for i = from..to, accumulated in increasing i.
func Sum(f fn.Function, from, to int) (float64, error) {
	if err := fn.Validate(f); err != nil {
		return 0, fmt.Errorf("Sum: %w", err)
	}

	var acc float64
	each(from, to, func(x float64) { acc += f.Eval(x) })

	return acc, nil
}

// Product returns Π f(i) for i = from..to, accumulated in increasing i.
func Product(f fn.Function, from, to int) (float64, error) {
	if err := fn.Validate(f); err != nil {
		return 0, fmt.Errorf("Product: %w", err)
	}

	acc := 1.0
	each(from, to, func(x float64) { acc *= f.Eval(x) })

	return acc, nil
}

// each calls visit for i = from..to inclusive. The loop stops on i == to
// rather than i > to, so to == math.MaxInt cannot wrap around.
func each(from, to int, visit func(x float64)) {
	if to < from {
		return
	}
	for i := from; ; i++ {
		visit(float64(i))
		if i == to {
			return
		}
	}
}
