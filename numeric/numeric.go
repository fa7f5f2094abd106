// Package numeric holds the small integer helpers and type constraints shared
// by the matrix and search packages.
//
// ExactSqrt validates square shapes without going through float64, so very
// large lengths never suffer rounding. Signed and Number are the constraint
// sets used for sign negation (matrix.Neg) and accumulated path costs
// (dijkstra).
package numeric

import "golang.org/x/exp/constraints"

// Signed admits every type whose values can be negated: signed integers and floats.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Number admits every integer or float type usable as an additive cost.
type Number interface {
	constraints.Integer | constraints.Float
}

// ExactSqrt returns the non-negative integer root of n when n is a perfect
// square, and (0, false) otherwise. Negative inputs are never squares.
// Newton iteration on integers; no floating point involved.
// Complexity: O(log n).
func ExactSqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	if n < 2 {
		return n, true
	}
	root := isqrt(n)
	if root*root != n {
		return 0, false
	}

	return root, true
}

// isqrt computes floor(sqrt(n)) for n >= 2.
func isqrt(n int) int {
	x := n
	y := n/2 + n%2 // (n+1)/2 without overflowing at MaxInt
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}
