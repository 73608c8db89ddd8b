// SPDX-License-Identifier: MIT
//
// File: relation.go
// Role: Relation type, constructors and read-only queries.
// Policy:
//   - Rows are bitsets; rows[i].Test(j) ⇔ i ≺ j.
//   - Constructors validate shape and values and return sentinel errors.
//   - Add is the only mutator; relations published by the sampler are never
//     mutated afterwards, only replaced.

package order

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/porder/matrix"
)

// Edge is one precedence From ≺ To.
type Edge struct {
	From int
	To   int
}

// Relation is a binary precedence relation over items 0..n-1.
type Relation struct {
	n    int
	rows []*bitset.BitSet
}

// New returns the empty relation over n items.
// A negative n is a programmer error and panics.
//
// Complexity: O(n²/w).
func New(n int) *Relation {
	if n < 0 {
		panic("order: New: negative size")
	}
	rows := make([]*bitset.BitSet, n)
	for i := range rows {
		rows[i] = bitset.New(uint(n))
	}

	return &Relation{n: n, rows: rows}
}

// FromRows builds a relation from a square 0/1 integer matrix.
//
// Implementation:
//   - Stage 1: validate squareness.
//   - Stage 2: copy cells, rejecting values outside {0,1}.
//
// Errors:
//   - ErrNotSquare, ErrNonBinary.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Relation, error) {
	n := len(rows)
	r := New(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				r.rows[i].Set(uint(j))
			default:
				return nil, fmt.Errorf("FromRows: cell (%d,%d)=%d: %w", i, j, v, ErrNonBinary)
			}
		}
	}

	return r, nil
}

// FromMatrix builds a relation from a square 0/1 matrix.Matrix.
//
// Errors:
//   - ErrNotSquare, ErrNonBinary (wrapping the matrix validator error).
//
// Complexity: O(n²).
func FromMatrix(m matrix.Matrix) (*Relation, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("FromMatrix: %v: %w", err, ErrNotSquare)
	}
	if err := matrix.ValidateBinary(m); err != nil {
		return nil, fmt.Errorf("FromMatrix: %v: %w", err, ErrNonBinary)
	}
	n := m.Rows()
	r := New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j) // safe after shape validation
			if v == 1 {
				r.rows[i].Set(uint(j))
			}
		}
	}

	return r, nil
}

// FromEdges builds a relation over n items from an edge list.
//
// Errors:
//   - ErrOutOfRange for endpoints outside [0,n).
//
// Complexity: O(n²/w + len(edges)).
func FromEdges(n int, edges []Edge) (*Relation, error) {
	r := New(n)
	for _, e := range edges {
		if err := r.Add(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Size returns the number of items n.
// Complexity: O(1).
func (r *Relation) Size() int { return r.n }

// Has reports whether i ≺ j. Out-of-range indices report false.
// Complexity: O(1).
func (r *Relation) Has(i, j int) bool {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return false
	}

	return r.rows[i].Test(uint(j))
}

// Add records i ≺ j.
//
// Errors:
//   - ErrOutOfRange for indices outside [0,n).
//
// Complexity: O(1).
func (r *Relation) Add(i, j int) error {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return fmt.Errorf("Add(%d,%d): %w", i, j, ErrOutOfRange)
	}
	r.rows[i].Set(uint(j))

	return nil
}

// Clone returns an independent deep copy.
// Complexity: O(n²/w).
func (r *Relation) Clone() *Relation {
	rows := make([]*bitset.BitSet, r.n)
	for i, row := range r.rows {
		rows[i] = row.Clone()
	}

	return &Relation{n: r.n, rows: rows}
}

// Equal reports whether r and o hold exactly the same pairs over the same item count.
// Complexity: O(n²/w).
func (r *Relation) Equal(o *Relation) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.n != o.n {
		return false
	}
	for i := range r.rows {
		if !r.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// EdgeCount returns the number of ordered pairs in the relation.
// Complexity: O(n²/w).
func (r *Relation) EdgeCount() int {
	var total uint
	for _, row := range r.rows {
		total += row.Count()
	}

	return int(total)
}

// Edges lists all pairs in row-major order (From asc, then To asc).
// Complexity: O(n + E).
func (r *Relation) Edges() []Edge {
	out := make([]Edge, 0, r.EdgeCount())
	for i, row := range r.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out = append(out, Edge{From: i, To: int(j)})
		}
	}

	return out
}

// Successors returns the items j with i ≺ j in ascending order.
func (r *Relation) Successors(i int) []int {
	if i < 0 || i >= r.n {
		return nil
	}
	var out []int
	row := r.rows[i]
	for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}

// Comparable reports whether i ≺ j or j ≺ i.
func (r *Relation) Comparable(i, j int) bool {
	return r.Has(i, j) || r.Has(j, i)
}

// Validate checks the strict-order shape invariants: zero diagonal and
// antisymmetry. Transitivity is not checked (see IsTransitive).
//
// Errors:
//   - ErrReflexive, ErrNotAntisymmetric.
//
// Complexity: O(n²).
func (r *Relation) Validate() error {
	for i, row := range r.rows {
		if row.Test(uint(i)) {
			return fmt.Errorf("Validate: item %d: %w", i, ErrReflexive)
		}
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if r.rows[j].Test(uint(i)) {
				return fmt.Errorf("Validate: pair (%d,%d): %w", i, j, ErrNotAntisymmetric)
			}
		}
	}

	return nil
}

// Ints returns the relation as a freshly allocated 0/1 integer matrix.
// Complexity: O(n²).
func (r *Relation) Ints() [][]int {
	out := make([][]int, r.n)
	for i, row := range r.rows {
		out[i] = make([]int, r.n)
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out[i][j] = 1
		}
	}

	return out
}

// Dense returns the relation as a 0/1 *matrix.Dense.
// An empty relation over zero items has no Dense form and returns nil.
// Complexity: O(n²).
func (r *Relation) Dense() *matrix.Dense {
	if r.n == 0 {
		return nil
	}
	d, _ := matrix.NewDense(r.n, r.n) // n > 0 checked above
	data := make([]float64, r.n*r.n)
	for i, row := range r.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			data[i*r.n+int(j)] = 1
		}
	}
	_ = d.Fill(data) // finite by construction

	return d
}

// String renders the pairs as "0<1 1<2".
func (r *Relation) String() string {
	var b strings.Builder
	for k, e := range r.Edges() {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d<%d", e.From, e.To)
	}

	return b.String()
}
