// SPDX-License-Identifier: MIT

// Package fn defines the callback shape shared by every numeric routine in
// lvnum: a real function of one real variable, injected by the caller.
//
// 🚀 What lives here?
//
//   - Function — the single-method capability routines accept.
//   - Func     — adapter turning a plain func(float64) float64 into a Function.
//   - Counter  — wraps a Function and counts evaluations (goroutine-safe).
//   - Numeric policy — shared defaults (step, interval count, epsilon) and
//     finiteness guards used by derivative, integrate, quadratic and series.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvnum/fn"
//
//	f := fn.Func(math.Sin)
//	c := fn.NewCounter(f)
//	_ = c.Eval(1.0)
//	fmt.Println(c.Calls()) // 1
//
// The core never caches or serializes callback invocations; callbacks are
// expected to be pure and reentrant.
package fn
