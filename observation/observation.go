// SPDX-License-Identifier: MIT
// Package: observation

package observation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Kind distinguishes total orders from partial rankings.
type Kind int

const (
	// KindTotal is a permutation of a subset of items (singleton groups).
	KindTotal Kind = iota
	// KindPartial is an ordered sequence of groups of tied items.
	KindPartial
)

// String returns "total" or "partial".
func (k Kind) String() string {
	if k == KindTotal {
		return "total"
	}

	return "partial"
}

// Observation is one observed ranking.
type Observation struct {
	id     int
	kind   Kind
	groups [][]int
	items  []int
	set    *bitset.BitSet
}

// NewTotal builds a total order observation from a ranking, top first.
//
// Errors:
//   - ErrEmpty, ErrDuplicateItem, ErrOutOfRange (negative index).
func NewTotal(id int, ranking []int) (*Observation, error) {
	groups := make([][]int, len(ranking))
	for k, it := range ranking {
		groups[k] = []int{it}
	}
	o, err := build(id, KindTotal, groups)
	if err != nil {
		return nil, fmt.Errorf("NewTotal(%d): %w", id, err)
	}

	return o, nil
}

// NewPartial builds a partial ranking from ordered groups, top group first.
// Groups are copied; the order of items inside a group is irrelevant.
//
// Errors:
//   - ErrEmpty, ErrEmptyGroup, ErrDuplicateItem, ErrOutOfRange (negative index).
func NewPartial(id int, groups [][]int) (*Observation, error) {
	cp := make([][]int, len(groups))
	for g, grp := range groups {
		cp[g] = slices.Clone(grp)
	}
	o, err := build(id, KindPartial, cp)
	if err != nil {
		return nil, fmt.Errorf("NewPartial(%d): %w", id, err)
	}

	return o, nil
}

func build(id int, kind Kind, groups [][]int) (*Observation, error) {
	if len(groups) == 0 {
		return nil, ErrEmpty
	}
	o := &Observation{id: id, kind: kind, groups: groups, set: bitset.New(0)}
	for g, grp := range groups {
		if len(grp) == 0 {
			return nil, fmt.Errorf("group %d: %w", g, ErrEmptyGroup)
		}
		for _, it := range grp {
			if it < 0 {
				return nil, fmt.Errorf("item %d: %w", it, ErrOutOfRange)
			}
			if o.set.Test(uint(it)) {
				return nil, fmt.Errorf("item %d: %w", it, ErrDuplicateItem)
			}
			o.set.Set(uint(it))
			o.items = append(o.items, it)
		}
	}

	return o, nil
}

// ID returns the stable observation identity.
func (o *Observation) ID() int { return o.id }

// Kind returns KindTotal or KindPartial.
func (o *Observation) Kind() Kind { return o.kind }

// Groups returns a copy of the ordered groups.
func (o *Observation) Groups() [][]int {
	out := make([][]int, len(o.groups))
	for g, grp := range o.groups {
		out[g] = slices.Clone(grp)
	}

	return out
}

// NumGroups returns the number of groups.
func (o *Observation) NumGroups() int { return len(o.groups) }

// GroupSizes returns the size of each group in order.
func (o *Observation) GroupSizes() []int {
	out := make([]int, len(o.groups))
	for g, grp := range o.groups {
		out[g] = len(grp)
	}

	return out
}

// Items returns the mentioned items flattened group by group (a copy).
// Position p in this list is the local index used by the noise models.
func (o *Observation) Items() []int { return slices.Clone(o.items) }

// Len returns the number of mentioned items.
func (o *Observation) Len() int { return len(o.items) }

// ItemSet returns the bitset of mentioned items. Callers must not modify it.
func (o *Observation) ItemSet() *bitset.BitSet { return o.set }

// Touches reports whether any mentioned item is in changed.
func (o *Observation) Touches(changed *bitset.BitSet) bool {
	if changed == nil {
		return false
	}

	return o.set.IntersectionCardinality(changed) > 0
}

// Validate checks that every item lies in [0, n).
func (o *Observation) Validate(n int) error {
	for _, it := range o.items {
		if it >= n {
			return fmt.Errorf("Validate: observation %d item %d (n=%d): %w", o.id, it, n, ErrOutOfRange)
		}
	}

	return nil
}

// String renders groups as "0 > {1 2} > 3".
func (o *Observation) String() string {
	var b strings.Builder
	for g, grp := range o.groups {
		if g > 0 {
			b.WriteString(" > ")
		}
		if len(grp) == 1 {
			fmt.Fprintf(&b, "%d", grp[0])
			continue
		}
		b.WriteByte('{')
		for k, it := range grp {
			if k > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", it)
		}
		b.WriteByte('}')
	}

	return b.String()
}
