// SPDX-License-Identifier: MIT
// Package: order
//
// Purpose:
//   - Transitive closure (reachability) and transitive reduction of relations.
//   - Bitset Warshall: row i absorbs row k whenever i ≺ k, for k in fixed order.
//   - matrix.Reachability is the dense reference; both agree cell-for-cell.
//
// Contract:
//   - Closure is total: cyclic input yields a relation with diagonal cells
//     set for every item on a cycle.
//   - Reduction requires an acyclic input and returns ErrCycle otherwise.

package order

import "fmt"

// Closure returns the smallest transitive relation containing r.
//
// Implementation:
//   - Stage 1: clone r (input never mutated).
//   - Stage 2: for k = 0..n-1, for each i with i ≺ k, row[i] |= row[k].
//
// Behavior highlights:
//   - Idempotent: Closure(Closure(r)) equals Closure(r).
//   - Superset: every pair of r is kept.
//
// Complexity: Time O(n³/w), Space O(n²/w).
func Closure(r *Relation) *Relation {
	c := r.Clone()
	var k, i int
	for k = 0; k < c.n; k++ { // outer: intermediate item
		for i = 0; i < c.n; i++ { // inner: source item
			if c.rows[i].Test(uint(k)) {
				c.rows[i].InPlaceUnion(c.rows[k])
			}
		}
	}

	return c
}

// IsTransitive reports whether r equals its closure.
// Complexity: O(n³/w).
func IsTransitive(r *Relation) bool {
	return Closure(r).Equal(r)
}

// Reduction returns the unique minimal relation whose closure equals Closure(r).
//
// Implementation:
//   - Stage 1: reject cycles (TopologicalSort).
//   - Stage 2: close r.
//   - Stage 3: for every i, drop the successors reachable through another
//     successor: red[i] = c[i] \ ⋃_{k ∈ c[i]} c[k].
//
// Errors:
//   - ErrCycle when r is cyclic.
//
// Complexity: Time O(n³/w), Space O(n²/w).
func Reduction(r *Relation) (*Relation, error) {
	if _, err := TopologicalSort(r); err != nil {
		return nil, fmt.Errorf("Reduction: %w", err)
	}
	c := Closure(r)
	red := c.Clone()
	for i, row := range c.rows {
		for k, ok := row.NextSet(0); ok; k, ok = row.NextSet(k + 1) {
			red.rows[i].InPlaceDifference(c.rows[k])
		}
	}

	return red, nil
}
