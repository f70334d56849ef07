// SPDX-License-Identifier: MIT

package derivative

import "fmt"

// Scheme selects the finite-difference formula.
type Scheme int

const (
	// Forward difference, first-order accurate. Cheapest, most biased.
	Forward Scheme = iota

	// Central difference, second-order accurate.
	Central

	// FivePoint stencil, fourth-order accurate.
	FivePoint

	// Richardson extrapolation of two FivePoint estimates (h and 2h),
	// sixth-order accurate.
	Richardson
)

// schemeNames is indexed by Scheme.
var schemeNames = [...]string{"forward", "central", "five-point", "richardson"}

// schemeOrders holds the accuracy order of each Scheme.
var schemeOrders = [...]int{1, 2, 4, 6}

// schemeEvals holds the number of callback evaluations of each Scheme.
var schemeEvals = [...]int{2, 2, 4, 8}

// Valid reports whether s is one of the four defined schemes.
func (s Scheme) Valid() bool { return s >= Forward && s <= Richardson }

// String implements fmt.Stringer.
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}

	return schemeNames[s]
}

// Order returns the truncation-error order p (error ∝ h^p), or 0 if s is invalid.
func (s Scheme) Order() int {
	if !s.Valid() {
		return 0
	}

	return schemeOrders[s]
}

// Evaluations returns how many times one estimate calls the function,
// or 0 if s is invalid.
func (s Scheme) Evaluations() int {
	if !s.Valid() {
		return 0
	}

	return schemeEvals[s]
}

// Schemes lists every supported Scheme in increasing accuracy order.
func Schemes() []Scheme {
	return []Scheme{Forward, Central, FivePoint, Richardson}
}

// SchemeFromMode maps the integer mode convention (0..3) to a Scheme.
// Any other mode yields ErrUnsupportedScheme.
func SchemeFromMode(mode int) (Scheme, error) {
	s := Scheme(mode)
	if !s.Valid() {
		return 0, derivativeErrorf("SchemeFromMode", fmt.Errorf("mode %d: %w", mode, ErrUnsupportedScheme))
	}

	return s, nil
}

// ParseScheme resolves a scheme by its String name ("forward", "central",
// "five-point", "richardson").
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}

	return 0, derivativeErrorf("ParseScheme", fmt.Errorf("%q: %w", name, ErrUnsupportedScheme))
}

// Sample is one point of a Sweep: the step used and the estimate obtained.
type Sample struct {
	Step  float64
	Value float64
}
