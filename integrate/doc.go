// SPDX-License-Identifier: MIT

// Package integrate estimates ∫_a^b f(x)dx of an injected real function with
// the composite rectangle rule.
//
// Rules:
//
//	LeftRectangle  δ·Σ f(a + iδ),        i = 0..n−1   (default)
//	RightRectangle δ·Σ f(a + (i+1)δ),    i = 0..n−1
//	Midpoint       δ·Σ f(a + (i+½)δ),    i = 0..n−1
//
// with δ = (b − a)/n. Left and right rules carry first-order truncation
// error O(δ); the midpoint rule is second order. Sample points are derived
// from the index i, so exactly n evaluations happen and no rounding drift
// can add or drop a sample near b.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvnum/integrate"
//
//	v, err := integrate.Integrate(fn.Func(math.Sin), 0, math.Pi, 10000)
//	v, err = integrate.Integrate(f, a, b, n, integrate.WithRule(integrate.Midpoint))
//
// Bounds may be given in either order; a > b yields the signed integral
// −∫_b^a f(x)dx.
package integrate
