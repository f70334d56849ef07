// SPDX-License-Identifier: MIT

// Package series evaluates finite sums and products of an injected real
// function over an inclusive integer index range:
//
//	Sum(f, from, to)     = Σ_{i=from}^{to} f(i)
//	Product(f, from, to) = Π_{i=from}^{to} f(i)
//
// Empty ranges (to < from) yield the neutral element: 0 for Sum, 1 for Product.
package series
