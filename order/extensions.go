// SPDX-License-Identifier: MIT
// Package: order
//
// Purpose:
//   - Enumerate and count linear extensions of a relation restricted to items.
//
// Behavior highlights:
//   - LinearExtensions is lazy: extensions are produced by backtracking as the
//     consumer pulls them, and breaking out of the range loop stops the search.
//   - The sequence is restartable: every range over it starts from scratch.
//   - Order is lexicographic in the positions of items.

package order

import (
	"fmt"
	"iter"
	"slices"
)

// LinearExtensions returns every permutation of items consistent with r.
// r is closed once up front, so non-transitive input is handled. Items are
// expected distinct and in range; out-of-range items are treated as
// incomparable to every other item.
//
// Complexity: O(m²) per produced extension plus backtracking dead ends.
func LinearExtensions(r *Relation, items []int) iter.Seq[[]int] {
	c := Closure(r)
	list := append([]int(nil), items...)

	return func(yield func([]int) bool) {
		m := len(list)
		placed := make([]bool, m)
		perm := make([]int, 0, m)

		// ready reports whether position a has no unplaced predecessor.
		ready := func(a int) bool {
			for b := 0; b < m; b++ {
				if !placed[b] && b != a && c.Has(list[b], list[a]) {
					return false
				}
			}

			return true
		}

		var walk func() bool
		walk = func() bool {
			if len(perm) == m {
				return yield(slices.Clone(perm))
			}
			for a := 0; a < m; a++ {
				if placed[a] || !ready(a) {
					continue
				}
				placed[a] = true
				perm = append(perm, list[a])
				if !walk() {
					return false
				}
				perm = perm[:len(perm)-1]
				placed[a] = false
			}

			return true
		}
		walk()
	}
}

// CountLinearExtensions returns the exact number of linear extensions of r
// restricted to items, by the downset DP of Suborder.CountExtensions.
// The count is a float64 so that large antichains do not overflow.
//
// Errors:
//   - ErrTooManyItems, ErrOutOfRange, ErrDuplicateItem from NewSuborder.
func CountLinearExtensions(r *Relation, items []int) (float64, error) {
	s, err := NewSuborder(Closure(r), items)
	if err != nil {
		return 0, fmt.Errorf("CountLinearExtensions: %w", err)
	}

	return s.CountExtensions(s.Full(), nil), nil
}
