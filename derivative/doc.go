// SPDX-License-Identifier: MIT

// Package derivative estimates f′(x) of an injected real function with
// finite-difference schemes of increasing accuracy order.
//
// 🚀 Schemes
//
//	Forward    (f(x+h) − f(x)) / h                                   O(h)
//	Central    (f(x+h) − f(x−h)) / 2h                                O(h²)
//	FivePoint  (8f(x+h) − 8f(x−h) − f(x+2h) + f(x−2h)) / 12h         O(h⁴)
//	Richardson (16·D₅(h) − D₅(2h)) / 15                              O(h⁶)
//
// ✨ Key features:
//   - explicit Scheme enumeration instead of an integer mode
//   - unsupported schemes and non-positive steps are reported as errors
//   - Sweep evaluates a scheme over successive step halvings, which makes
//     the truncation/cancellation trade-off of h easy to inspect
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvnum/derivative"
//
//	f := fn.Func(func(x float64) float64 { return x * math.Exp(-x) })
//	d, err := derivative.Derivative(f, 2.5, derivative.FivePoint, 1e-3)
//
//	// or with options
//	d, err = derivative.Estimate(f, 2.5, derivative.WithScheme(derivative.Richardson))
//
// There is no adaptive step selection: smaller h lowers truncation error but
// raises floating-point cancellation error, and choosing h stays with the
// caller.
package derivative
