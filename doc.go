// Package lvnum is a small toolbox of numeric routines parameterized by an
// injected real function: finite-difference derivatives, rectangle-rule
// integration, closed-form quadratic roots, dot products and finite series.
//
// 🚀 What is inside?
//
//	fn/          — Function capability, Func adapter, Counter, numeric policy
//	derivative/  — forward, central, five-point and Richardson schemes
//	integrate/   — composite rectangle rule (left, right, midpoint)
//	quadratic/   — real roots by discriminant sign
//	vector/      — dot product, by value (Dot) and by reference (DotTo)
//	series/      — Σ and Π of f over an integer range
//
// ✨ Why lvnum?
//
//   - Pure, stateless routines: safe to call from many goroutines as long
//     as the injected callback is reentrant
//   - Explicit sentinel errors instead of silent zeros or division by zero
//   - Deterministic evaluation order, so results are reproducible bit for bit
//
// Quick example:
//
//	f := fn.Func(func(x float64) float64 { return x * math.Exp(-x) })
//	d, _ := derivative.Derivative(f, 2.5, derivative.Richardson, 1e-3)
//	v, _ := integrate.Integrate(f, 2, 3, 10000)
//
// The demo driver in cmd/lvnum-demo prints a full report and can render a
// convergence plot (LVNUM_PLOT=conv.png).
//
//	go get github.com/katalvlaran/lvnum
package lvnum
