// SPDX-License-Identifier: MIT

// Package derivative: functional configuration for Estimate.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX constructors panic on nonsensical values
//     (programmer error); Estimate itself never panics.

package derivative

import "github.com/katalvlaran/lvnum/fn"

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultScheme is the second-order central difference.
	DefaultScheme = Central

	// DefaultStep mirrors fn.DefaultStep.
	DefaultStep = fn.DefaultStep
)

const (
	panicSchemeInvalid = "derivative: WithScheme: unsupported scheme"
	panicStepInvalid   = "derivative: WithStep: h must be finite and > 0"
)

// Option mutates Options. Safe to apply repeatedly; later options win.
type Option func(*Options)

// Options stores the effective configuration of Estimate.
type Options struct {
	scheme Scheme
	step   float64
}

// WithScheme selects the finite-difference scheme.
// Panics if s is not one of the defined schemes.
func WithScheme(s Scheme) Option {
	if !s.Valid() {
		panic(panicSchemeInvalid)
	}

	return func(o *Options) { o.scheme = s }
}

// WithStep sets the step h.
// Panics if h is NaN, ±Inf or not strictly positive.
func WithStep(h float64) Option {
	if !validStep(h) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// DefaultOptions returns Options populated with DefaultScheme and DefaultStep.
func DefaultOptions() Options {
	return Options{scheme: DefaultScheme, step: DefaultStep}
}

// Scheme returns the resolved scheme.
func (o Options) Scheme() Scheme { return o.scheme }

// Step returns the resolved step.
func (o Options) Step() float64 { return o.step }

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validStep reports whether h is usable as a finite-difference step.
func validStep(h float64) bool {
	return fn.IsFinite(h) && h > 0
}
