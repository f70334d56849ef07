// SPDX-License-Identifier: MIT

// Package quadratic finds the real roots of a·x² + b·x + c = 0 with the
// closed-form formula, branching on the sign of the discriminant Δ = b² − 4ac:
//
//	Δ > 0  two roots, (−b + √Δ)/2a then (−b − √Δ)/2a
//	Δ = 0  one root,  −b/2a
//	Δ < 0  no real roots
//
// a = 0 is rejected with ErrDegenerateCoefficients unless WithLinearFallback
// is given, in which case b·x + c = 0 is solved instead.
package quadratic
