// SPDX-License-Identifier: MIT

package quadratic

// Roots holds 0, 1 or 2 real roots.
// Only Values[:Count] is meaningful; when Count is 2, Values[0] comes from
// the +√Δ branch.
type Roots struct {
	Count  int
	Values [2]float64
}

// Slice returns a fresh slice with the Count valid roots.
func (r Roots) Slice() []float64 {
	out := make([]float64, r.Count)
	copy(out, r.Values[:r.Count])

	return out
}

// Option mutates options of Solve.
type Option func(*options)

type options struct {
	linearFallback bool
}

// WithLinearFallback makes Solve treat a = 0 as the linear equation
// b·x + c = 0 instead of failing.
func WithLinearFallback() Option {
	return func(o *options) { o.linearFallback = true }
}
