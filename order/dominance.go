// SPDX-License-Identifier: MIT
// Package: order

package order

import "gonum.org/v1/gonum/mat"

// Dominance returns the coordinatewise order of the rows of eta:
// i ≺ j iff eta[i][k] > eta[j][k] for every column k.
//
// Behavior highlights:
//   - Strict, hence irreflexive and antisymmetric; transitive by construction.
//   - Monotone: moving row i up (or row j down) in any column never removes i ≺ j.
//   - A matrix with zero columns yields the empty relation.
//
// Complexity: O(n²·K).
func Dominance(eta mat.Matrix) *Relation {
	n, k := eta.Dims()
	r := New(n)
	if k == 0 {
		return r
	}
	var i, j, c int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			for c = 0; c < k; c++ {
				if !(eta.At(i, c) > eta.At(j, c)) {
					break
				}
			}
			if c == k {
				r.rows[i].Set(uint(j))
			}
		}
	}

	return r
}
