// SPDX-License-Identifier: MIT

package integrate

import "fmt"

// Rule selects where each rectangle samples f.
type Rule int

const (
	// LeftRectangle samples the left endpoint of each subinterval.
	LeftRectangle Rule = iota

	// RightRectangle samples the right endpoint of each subinterval.
	RightRectangle

	// Midpoint samples the center of each subinterval.
	Midpoint
)

// ruleOffsets is the sample position inside a subinterval, in units of δ.
var ruleOffsets = [...]float64{0, 1, 0.5}

var ruleNames = [...]string{"left", "right", "midpoint"}

// Valid reports whether r is a defined rule.
func (r Rule) Valid() bool { return r >= LeftRectangle && r <= Midpoint }

// String implements fmt.Stringer.
func (r Rule) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

// DefaultRule is the left-endpoint Riemann sum.
const DefaultRule = LeftRectangle

const panicRuleInvalid = "integrate: WithRule: unsupported rule"

// Option mutates Options; later options win.
type Option func(*Options)

// Options stores the effective configuration of Integrate.
type Options struct {
	rule Rule
}

// WithRule selects the rectangle rule. Panics if r is not a defined rule.
func WithRule(r Rule) Option {
	if !r.Valid() {
		panic(panicRuleInvalid)
	}

	return func(o *Options) { o.rule = r }
}

// Rule returns the resolved rule.
func (o Options) Rule() Rule { return o.rule }

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{rule: DefaultRule}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
