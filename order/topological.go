// SPDX-License-Identifier: MIT
// Package: order
//
// TopologicalSort computes a linear ordering of items such that for every
// pair i ≺ j, i appears before j. If the relation contains a cycle,
// ErrCycle is returned.
//
// Complexity:
//
//   - Time:   O(n + E) (each item and pair visited once)
//   - Memory: O(n)     (recursion stack and colour slice)

package order

// Visitation colours for the DFS.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // item and all its successors fully explored
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	rel   *Relation
	state []int // visitation colour per item
	order []int // recorded post-order sequence
}

// TopologicalSort returns a linear extension of r over all items, or ErrCycle.
// Roots are visited in ascending index order and successors in ascending
// order, so the result is deterministic.
func TopologicalSort(r *Relation) ([]int, error) {
	s := &topoSorter{
		rel:   r,
		state: make([]int, r.n),
		order: make([]int, 0, r.n),
	}
	// Drive DFS from every unvisited item, highest index first, so that the
	// reversed post-order prefers low indices among incomparable items.
	for v := r.n - 1; v >= 0; v-- {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (s *topoSorter) visit(id int) error {
	switch s.state[id] {
	case gray:
		return ErrCycle
	case black:
		return nil
	}
	s.state[id] = gray

	row := s.rel.rows[id]
	// Successors in descending order mirror the root order above.
	succ := make([]int, 0, row.Count())
	for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
		succ = append(succ, int(j))
	}
	for k := len(succ) - 1; k >= 0; k-- {
		if err := s.visit(succ[k]); err != nil {
			return err
		}
	}

	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}

// IsAcyclic reports whether r has no directed cycle (self-loops included).
func IsAcyclic(r *Relation) bool {
	_, err := TopologicalSort(r)

	return err == nil
}
