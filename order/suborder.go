// SPDX-License-Identifier: MIT
// Package: order
//
// Purpose:
//   - Suborder: a relation restricted to an ordered item list, encoded as one
//     predecessor mask per local position. Noise models and extension counting
//     run their subset DPs on these masks.
//
// Contract:
//   - The source relation must be transitively closed; restricting a
//     non-closed relation drops precedences implied through outside items.
//   - Local position a refers to Items[a]; masks use bit a for position a.

package order

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// MaxMaskItems is the largest item list a Suborder can encode.
const MaxMaskItems = 64

// Suborder is a closed relation restricted to Items.
// Pred[a] has bit b set iff Items[b] ≺ Items[a].
type Suborder struct {
	Items []int
	Pred  []uint64
}

// NewSuborder restricts the closed relation r to items (in the given order).
//
// Errors:
//   - ErrTooManyItems when len(items) > MaxMaskItems.
//   - ErrOutOfRange, ErrDuplicateItem for invalid item lists.
//
// Complexity: O(m²).
func NewSuborder(r *Relation, items []int) (*Suborder, error) {
	m := len(items)
	if m > MaxMaskItems {
		return nil, fmt.Errorf("NewSuborder: %d items: %w", m, ErrTooManyItems)
	}
	seen := make(map[int]struct{}, m)
	for _, it := range items {
		if it < 0 || it >= r.n {
			return nil, fmt.Errorf("NewSuborder: item %d: %w", it, ErrOutOfRange)
		}
		if _, dup := seen[it]; dup {
			return nil, fmt.Errorf("NewSuborder: item %d: %w", it, ErrDuplicateItem)
		}
		seen[it] = struct{}{}
	}

	s := &Suborder{Items: append([]int(nil), items...), Pred: make([]uint64, m)}
	for a, ia := range items {
		for b, ib := range items {
			if a != b && r.rows[ib].Test(uint(ia)) {
				s.Pred[a] |= 1 << uint(b)
			}
		}
	}

	return s, nil
}

// Len returns the number of local positions.
func (s *Suborder) Len() int { return len(s.Items) }

// Full returns the mask of all local positions.
func (s *Suborder) Full() uint64 {
	if len(s.Items) == MaxMaskItems {
		return ^uint64(0)
	}

	return 1<<uint(len(s.Items)) - 1
}

// Minimal returns the positions of set that have no predecessor inside set.
func (s *Suborder) Minimal(set uint64) uint64 {
	var out uint64
	for rest := set; rest != 0; rest &= rest - 1 {
		a := bits.TrailingZeros64(rest)
		if s.Pred[a]&set == 0 {
			out |= 1 << uint(a)
		}
	}

	return out
}

// CountExtensions returns the number of linear extensions of the suborder
// restricted to set: e(∅) = 1, e(S) = Σ_{a minimal in S} e(S \ {a}).
// memo may be nil; when given it is read and filled, so repeated calls over
// subsets of one suborder share work.
//
// Complexity: O(D·m) with D the number of reachable up-sets (≤ 2^m).
func (s *Suborder) CountExtensions(set uint64, memo map[uint64]float64) float64 {
	if memo == nil {
		memo = make(map[uint64]float64)
	}

	return s.countExt(set, memo)
}

func (s *Suborder) countExt(set uint64, memo map[uint64]float64) float64 {
	if set == 0 {
		return 1
	}
	if v, ok := memo[set]; ok {
		return v
	}
	var total float64
	for mins := s.Minimal(set); mins != 0; mins &= mins - 1 {
		a := bits.TrailingZeros64(mins)
		total += s.countExt(set&^(1<<uint(a)), memo)
	}
	memo[set] = total

	return total
}

// Key returns a compact fingerprint of the predecessor masks. Two suborders
// over the same item list are equal iff their keys are equal.
func (s *Suborder) Key() string {
	buf := make([]byte, 8*len(s.Pred))
	for a, p := range s.Pred {
		binary.LittleEndian.PutUint64(buf[8*a:], p)
	}

	return string(buf)
}
