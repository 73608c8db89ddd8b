// SPDX-License-Identifier: MIT
// Package: order

package order

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ChangedItems returns the set of items whose row or column differs between a
// and b. An observation whose items avoid this set sees the same restricted
// order under both relations.
//
// Errors:
//   - ErrSizeMismatch when a and b have different sizes.
//
// Complexity: O(n²/w).
func ChangedItems(a, b *Relation) (*bitset.BitSet, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("ChangedItems: %d vs %d: %w", a.n, b.n, ErrSizeMismatch)
	}
	changed := bitset.New(uint(a.n))
	for i := range a.rows {
		diff := a.rows[i].SymmetricDifference(b.rows[i])
		if !diff.Any() {
			continue
		}
		changed.Set(uint(i))
		changed.InPlaceUnion(diff)
	}

	return changed, nil
}

// Missing returns the cover relations of truth that inferred does not imply:
// edges of Reduction(truth) absent from Closure(inferred).
//
// Errors:
//   - ErrSizeMismatch, ErrCycle (truth cyclic).
func Missing(truth, inferred *Relation) ([]Edge, error) {
	out, err := uncovered(truth, inferred)
	if err != nil {
		return nil, fmt.Errorf("Missing: %w", err)
	}

	return out, nil
}

// Redundant returns the cover relations of inferred that truth does not imply:
// edges of Reduction(inferred) absent from Closure(truth).
//
// Errors:
//   - ErrSizeMismatch, ErrCycle (inferred cyclic).
func Redundant(truth, inferred *Relation) ([]Edge, error) {
	out, err := uncovered(inferred, truth)
	if err != nil {
		return nil, fmt.Errorf("Redundant: %w", err)
	}

	return out, nil
}

// uncovered lists edges of Reduction(src) not present in Closure(ref).
func uncovered(src, ref *Relation) ([]Edge, error) {
	if src.n != ref.n {
		return nil, ErrSizeMismatch
	}
	red, err := Reduction(src)
	if err != nil {
		return nil, err
	}
	c := Closure(ref)
	var out []Edge
	for _, e := range red.Edges() {
		if !c.Has(e.From, e.To) {
			out = append(out, e)
		}
	}

	return out, nil
}
