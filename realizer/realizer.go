// SPDX-License-Identifier: MIT
// Package: realizer
//
// Purpose:
//   - Minimal realizer search by increasing size over all combinations of
//     linear extensions.
//   - Intersections are computed over local positions of the item list, so a
//     realizer of a sub-poset is compared against the closure restricted to it.

package realizer

import (
	"fmt"

	"github.com/katalvlaran/porder/order"
)

// Realizer is a set of linear extensions whose intersection is the closed order.
type Realizer struct {
	Extensions [][]int
}

// Size returns the number of extensions (the order dimension for a minimum realizer).
func (r Realizer) Size() int { return len(r.Extensions) }

// Restrict returns h restricted to items, re-indexed by position in items:
// local a ≺ b iff items[a] ≺ items[b].
func Restrict(h *order.Relation, items []int) *order.Relation {
	out := order.New(len(items))
	for a, ia := range items {
		for b, ib := range items {
			if h.Has(ia, ib) {
				_ = out.Add(a, b) // local indices in range
			}
		}
	}

	return out
}

// Intersection returns the relation on local positions of items in which
// a ≺ b iff every extension places items[a] before items[b].
// An empty extension list yields the empty relation.
//
// Errors:
//   - ErrBadExtension when an extension is not a permutation of items.
//
// Complexity: O(|exts|·m²).
func Intersection(exts [][]int, items []int) (*order.Relation, error) {
	m := len(items)
	out := order.New(m)
	if len(exts) == 0 {
		return out, nil
	}
	local := make(map[int]int, m)
	for a, it := range items {
		local[it] = a
	}
	positions := make([][]int, len(exts))
	for e, ext := range exts {
		pos, err := positionsOf(ext, local, m)
		if err != nil {
			return nil, fmt.Errorf("Intersection: extension %d: %w", e, err)
		}
		positions[e] = pos
	}
	intersectInto(out, positions)

	return out, nil
}

// positionsOf maps each local index to its place in ext.
func positionsOf(ext []int, local map[int]int, m int) ([]int, error) {
	if len(ext) != m {
		return nil, ErrBadExtension
	}
	pos := make([]int, m)
	for a := range pos {
		pos[a] = -1
	}
	for p, it := range ext {
		a, ok := local[it]
		if !ok || pos[a] >= 0 {
			return nil, ErrBadExtension
		}
		pos[a] = p
	}

	return pos, nil
}

// intersectInto adds a ≺ b to out for every pair ordered the same way by all positions.
func intersectInto(out *order.Relation, positions [][]int) {
	m := out.Size()
	for a := 0; a < m; a++ {
		for b := 0; b < m; b++ {
			if a == b {
				continue
			}
			all := true
			for _, pos := range positions {
				if pos[a] > pos[b] {
					all = false
					break
				}
			}
			if all {
				_ = out.Add(a, b)
			}
		}
	}
}

// FindMin returns a minimum-size realizer of h restricted to items.
//
// Implementation:
//   - Stage 1: enforce the item limit and collect all linear extensions.
//   - Stage 2: for size = 1, 2, ..., walk every combination of that many
//     extensions in lexicographic order and return the first whose
//     intersection equals Closure(h) restricted to items.
//
// Errors:
//   - ErrTooLarge above the item limit.
//   - ErrNoExtension when h is cyclic on items.
//   - order.ErrOutOfRange, order.ErrDuplicateItem for invalid item lists.
//
// Complexity: exponential; O(C(E, d)·d·m²) with E extensions and dimension d.
func FindMin(h *order.Relation, items []int, opts ...Option) (Realizer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(items) > o.MaxItems {
		return Realizer{}, fmt.Errorf("FindMin: %d items > %d: %w", len(items), o.MaxItems, ErrTooLarge)
	}
	if _, err := order.NewSuborder(h, items); err != nil {
		return Realizer{}, fmt.Errorf("FindMin: %w", err)
	}

	target := Restrict(order.Closure(h), items)
	if !order.IsAcyclic(target) {
		return Realizer{}, fmt.Errorf("FindMin: %w", ErrNoExtension)
	}

	local := make(map[int]int, len(items))
	for a, it := range items {
		local[it] = a
	}
	var (
		exts      [][]int
		positions [][]int
	)
	for ext := range order.LinearExtensions(h, items) {
		pos, _ := positionsOf(ext, local, len(items)) // extensions are permutations of items
		exts = append(exts, ext)
		positions = append(positions, pos)
	}

	for size := 1; size <= len(exts); size++ {
		combo := make([]int, size)
		for k := range combo {
			combo[k] = k
		}
		chosen := make([][]int, size)
		for {
			for k, idx := range combo {
				chosen[k] = positions[idx]
			}
			inter := order.New(len(items))
			intersectInto(inter, chosen)
			if inter.Equal(target) {
				out := make([][]int, size)
				for k, idx := range combo {
					out[k] = exts[idx]
				}

				return Realizer{Extensions: out}, nil
			}
			if !nextCombination(combo, len(exts)) {
				break
			}
		}
	}

	// Unreachable for acyclic input: the set of all extensions realizes h.
	return Realizer{}, fmt.Errorf("FindMin: %w", ErrNoExtension)
}

// nextCombination advances combo to the next k-subset of [0,n) in
// lexicographic order, reporting false after the last one.
func nextCombination(combo []int, n int) bool {
	k := len(combo)
	i := k - 1
	for i >= 0 && combo[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < k; j++ {
		combo[j] = combo[j-1] + 1
	}

	return true
}

// CriticalPairs returns the incomparable pairs of items under h, as
// (items[a], items[b]) with a < b in list order.
//
// Complexity: O(m²).
func CriticalPairs(items []int, h *order.Relation) []order.Edge {
	var out []order.Edge
	for a := 0; a < len(items); a++ {
		for b := a + 1; b < len(items); b++ {
			if !h.Comparable(items[a], items[b]) {
				out = append(out, order.Edge{From: items[a], To: items[b]})
			}
		}
	}

	return out
}
