// SPDX-License-Identifier: MIT

package demo

import (
	"math"

	"github.com/katalvlaran/lvnum/fn"
)

// xExpNegX is f(x) = x·e^(−x), the demo's reference callback.
var xExpNegX = fn.Func(func(x float64) float64 { return x * math.Exp(-x) })

// xExpNegXPrime is the exact derivative (1 − x)·e^(−x).
func xExpNegXPrime(x float64) float64 { return (1 - x) * math.Exp(-x) }

var identity = fn.Func(func(x float64) float64 { return x })
