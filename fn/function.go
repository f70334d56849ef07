// SPDX-License-Identifier: MIT

package fn

import "sync/atomic"

// Function is a real function of one real variable.
// Implementations must be total over the sampled domain and free of
// caller-visible side effects.
type Function interface {
	Eval(x float64) float64
}

// Func adapts an ordinary function to the Function interface.
//
// Example:
//
//	f := fn.Func(func(x float64) float64 { return x * math.Exp(-x) })
type Func func(x float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 { return f(x) }

// Validate reports ErrNilFunction for a nil interface or a nil Func value.
func Validate(f Function) error {
	if f == nil {
		return ErrNilFunction
	}
	if ff, ok := f.(Func); ok && ff == nil {
		return ErrNilFunction
	}
	if c, ok := f.(*Counter); ok && (c == nil || c.inner == nil) {
		return ErrNilFunction
	}

	return nil
}

// Counter wraps a Function and counts how many times it was evaluated.
// The count is kept with atomic operations, so a Counter may be shared by
// concurrent callers.
type Counter struct {
	inner Function
	calls atomic.Int64
}

// NewCounter returns a Counter forwarding to f.
func NewCounter(f Function) *Counter {
	return &Counter{inner: f}
}

// Eval forwards to the wrapped function and increments the call count.
func (c *Counter) Eval(x float64) float64 {
	c.calls.Add(1)

	return c.inner.Eval(x)
}

// Calls returns the number of evaluations since creation or the last Reset.
func (c *Counter) Calls() int64 { return c.calls.Load() }

// Reset zeroes the evaluation count.
func (c *Counter) Reset() { c.calls.Store(0) }
