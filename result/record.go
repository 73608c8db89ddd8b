// SPDX-License-Identifier: MIT
// Package: result
//
// Purpose:
//   - Record: the JSON document of one run.
//   - Conversions between the in-memory trace/relations and their JSON shapes.

package result

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/matrix"
	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/summary"
	"github.com/katalvlaran/porder/trace"
)

// TraceRecord is the JSON form of trace.Trace.
type TraceRecord struct {
	Z         [][][]Float `json:"Z_trace"`
	H         [][][]Float `json:"h_trace"`
	Rho       []Float     `json:"rho_trace"`
	ProbNoise []Float     `json:"prob_noise_trace"`
	Theta     []Float     `json:"mallow_theta_trace"`
	LogLik    []Float     `json:"log_likelihood_trace"`
	Thinning  int         `json:"thinning"`
}

// Acceptance reports the move counters of one move kind.
type Acceptance struct {
	Proposed int   `json:"proposed"`
	Accepted int   `json:"accepted"`
	Rate     Float `json:"rate"`
}

// Statistics is the JSON form of summary.Description.
type Statistics struct {
	N      int   `json:"n"`
	Mean   Float `json:"mean"`
	StdDev Float `json:"std_dev"`
	Median Float `json:"median"`
	Q05    Float `json:"q05"`
	Q95    Float `json:"q95"`
	Min    Float `json:"min"`
	Max    Float `json:"max"`
}

// Relationship is one pair From < To, with the item names.
type Relationship struct {
	From     int    `json:"from"`
	To       int    `json:"to"`
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
}

// String renders "a < b".
func (r Relationship) String() string { return r.FromName + " < " + r.ToName }

// Record is the persisted outcome of one run.
type Record struct {
	RunID       string `json:"run_id"`
	NoiseOption string `json:"noise_option"`
	Seed        uint64 `json:"seed"`
	BurnIn      int    `json:"burn_in"`

	Trace TraceRecord `json:"trace"`

	// H is the reported (reduced) partial order.
	H           [][]int   `json:"h"`
	Z           [][]Float `json:"Z"`
	Rho         Float     `json:"rho"`
	ProbNoise   Float     `json:"prob_noise"`
	MallowTheta Float     `json:"mallow_theta"`
	Beta        []Float   `json:"beta"`

	Acceptance map[string]Acceptance `json:"acceptance"`
	Statistics map[string]Statistics `json:"statistics,omitempty"`
	Warnings   []string              `json:"warnings"`
	Items      []string              `json:"items"`

	Missing   []Relationship `json:"missing_relationships,omitempty"`
	Redundant []Relationship `json:"redundant_relationships,omitempty"`
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// FromTrace converts tr into its JSON form.
func FromTrace(tr *trace.Trace) TraceRecord {
	rec := TraceRecord{
		Z:         make([][][]Float, tr.Len()),
		H:         make([][][]Float, tr.Len()),
		Rho:       floats(tr.Rho),
		ProbNoise: floats(tr.ProbNoise),
		Theta:     floats(tr.Theta),
		LogLik:    floats(tr.LogLik),
		Thinning:  tr.Thinning,
	}
	for i := range tr.Len() {
		rec.Z[i] = FromDense(tr.Z[i])
		rec.H[i] = fromRows(tr.H[i].RawRows())
	}

	return rec
}

// ToTrace rebuilds the trace.
//
// Errors:
//   - ErrDecode when the component slices disagree in length, or a matrix
//     is ragged or changes shape between samples.
func (r TraceRecord) ToTrace() (*trace.Trace, error) {
	n := len(r.Z)
	if len(r.H) != n || len(r.Rho) != n || len(r.ProbNoise) != n || len(r.Theta) != n || len(r.LogLik) != n {
		return nil, fmt.Errorf("ToTrace: component lengths differ: %w", ErrDecode)
	}
	tr := trace.New(r.Thinning)
	for i := range n {
		z, err := ToDense(r.Z[i])
		if err != nil {
			return nil, fmt.Errorf("ToTrace: Z[%d]: %w", i, err)
		}
		h, err := matrix.FromRows(unfloatRows(r.H[i]), matrix.WithAllowNaN())
		if err != nil {
			return nil, fmt.Errorf("ToTrace: h[%d]: %v: %w", i, err, ErrDecode)
		}
		err = tr.Append(trace.Sample{
			Z:         z,
			H:         h,
			Rho:       float64(r.Rho[i]),
			ProbNoise: float64(r.ProbNoise[i]),
			Theta:     float64(r.Theta[i]),
			LogLik:    float64(r.LogLik[i]),
		})
		if err != nil {
			return nil, fmt.Errorf("ToTrace: sample %d: %v: %w", i, err, ErrDecode)
		}
	}

	return tr, nil
}

// FromDense converts a gonum matrix into rows. A nil matrix yields nil.
func FromDense(m *mat.Dense) [][]Float {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := make([][]Float, r)
	for i := range r {
		out[i] = make([]Float, c)
		for j := range c {
			out[i][j] = Float(m.At(i, j))
		}
	}

	return out
}

// ToDense converts rows back into a gonum matrix.
//
// Errors:
//   - ErrDecode for empty or ragged rows.
func ToDense(rows [][]Float) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("ToDense: no cells: %w", ErrDecode)
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("ToDense: row %d has %d cols, want %d: %w", i, len(row), c, ErrDecode)
		}
		data = append(data, unfloats(row)...)
	}

	return mat.NewDense(len(rows), c, data), nil
}

// Relationships names the edges with the given item names.
func Relationships(edges []order.Edge, names []string) []Relationship {
	name := func(i int) string {
		if i < len(names) {
			return names[i]
		}

		return fmt.Sprintf("Item %d", i)
	}
	out := make([]Relationship, len(edges))
	for k, e := range edges {
		out[k] = Relationship{From: e.From, To: e.To, FromName: name(e.From), ToName: name(e.To)}
	}

	return out
}

// FromDescriptions converts summary statistics into their JSON form.
func FromDescriptions(ds map[string]summary.Description) map[string]Statistics {
	out := make(map[string]Statistics, len(ds))
	for k, d := range ds {
		out[k] = Statistics{
			N:      d.N,
			Mean:   Float(d.Mean),
			StdDev: Float(d.StdDev),
			Median: Float(d.Median),
			Q05:    Float(d.Q05),
			Q95:    Float(d.Q95),
			Min:    Float(d.Min),
			Max:    Float(d.Max),
		}
	}

	return out
}

// Relation returns the reported order H as a relation.
//
// Errors:
//   - ErrDecode when H is not a square 0/1 matrix.
func (r *Record) Relation() (*order.Relation, error) {
	h, err := order.FromRows(r.H)
	if err != nil {
		return nil, fmt.Errorf("Record.Relation: %v: %w", err, ErrDecode)
	}

	return h, nil
}

func fromRows(rows [][]float64) [][]Float {
	out := make([][]Float, len(rows))
	for i, row := range rows {
		out[i] = floats(row)
	}

	return out
}

func unfloatRows(rows [][]Float) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = unfloats(row)
	}

	return out
}
