// SPDX-License-Identifier: MIT

package derivative

import (
	"fmt"

	"github.com/katalvlaran/lvnum/fn"
)

// MaxHalvings bounds the halvings accepted by Sweep: any finite step
// (≤ 2^1024) reaches zero, the smallest subnormal being 2^-1074, within
// 2098 halvings.
const MaxHalvings = 2098

// Sweep evaluates scheme s at steps h, h/2, …, h/2^halvings and returns one
// Sample per step, largest step first.
//
// Useful to observe convergence: for a smooth f the error of scheme s shrinks
// by roughly 2^s.Order() per halving until cancellation error takes over.
//
// Errors: those of Derivative, plus ErrInvalidSweep for halvings outside
// [0, MaxHalvings].
// Complexity: O(halvings · s.Evaluations()) calls of f. Space O(halvings).
func Sweep(f fn.Function, x float64, s Scheme, h float64, halvings int) ([]Sample, error) {
	if halvings < 0 || halvings > MaxHalvings {
		return nil, derivativeErrorf(opSweep, fmt.Errorf("halvings=%d: %w", halvings, ErrInvalidSweep))
	}

	out := make([]Sample, 0, halvings+1)
	step := h
	for i := 0; i <= halvings; i++ {
		v, err := Derivative(f, x, s, step)
		if err != nil {
			return nil, derivativeErrorf(opSweep, err)
		}
		out = append(out, Sample{Step: step, Value: v})
		step /= 2
	}

	return out, nil
}
