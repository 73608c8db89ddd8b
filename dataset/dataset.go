// SPDX-License-Identifier: MIT
// Package: dataset
//
// Purpose:
//   - JSON shapes of the input file (Dataset, Parameters, Group).
//   - Item count resolution and index validation.
//   - Conversion into observation.Observation values and order.Relation.

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/latent"
	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

// Group is one tied group of a partial ranking.
type Group []int

// UnmarshalJSON accepts either an array of indices or a single index.
func (g *Group) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var items []int
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*g = items

		return nil
	}
	var it int
	if err := json.Unmarshal(b, &it); err != nil {
		return err
	}
	*g = Group{it}

	return nil
}

// Parameters carries the generating parameters of synthetic data, when known.
type Parameters struct {
	RhoTrue         *float64    `json:"rho_true,omitempty"`
	ProbNoiseTrue   *float64    `json:"prob_noise_true,omitempty"`
	MallowThetaTrue *float64    `json:"mallow_theta_true,omitempty"`
	BetaTrue        []float64   `json:"beta_true,omitempty"`
	X               [][]float64 `json:"X,omitempty"`
	N               *int        `json:"n,omitempty"`
}

// Items holds display metadata.
type Items struct {
	Names []string `json:"names,omitempty"`
}

// Dataset is the decoded input file.
type Dataset struct {
	TotalOrders      [][]int    `json:"total_orders"`
	Subsets          [][]Group  `json:"subsets"`
	Parameters       Parameters `json:"parameters"`
	Items            Items      `json:"items"`
	TruePartialOrder [][]int    `json:"true_partial_order,omitempty"`

	n int
}

// Load reads and validates the dataset file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load(%s): %w", path, err)
	}

	return ds, nil
}

// Decode reads one JSON dataset from r and validates it.
//
// Errors:
//   - ErrMalformed (wrapped) for syntax errors, negative or out-of-range
//     indices, duplicates, empty groups and inconsistent metadata.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// NumItems returns the resolved item count n.
func (d *Dataset) NumItems() int { return d.n }

// Names returns the item names, defaulting to "Item i".
func (d *Dataset) Names() []string {
	if len(d.Items.Names) == d.n {
		return append([]string(nil), d.Items.Names...)
	}
	out := make([]string, d.n)
	for i := range out {
		out[i] = fmt.Sprintf("Item %d", i)
	}

	return out
}

// resolveN picks n from, in order: parameters.n, item names, the true order,
// and finally the largest index mentioned plus one.
func (d *Dataset) resolveN() int {
	switch {
	case d.Parameters.N != nil:
		return *d.Parameters.N
	case len(d.Items.Names) > 0:
		return len(d.Items.Names)
	case len(d.TruePartialOrder) > 0:
		return len(d.TruePartialOrder)
	}
	n := 0
	bump := func(it int) {
		if it+1 > n {
			n = it + 1
		}
	}
	for _, t := range d.TotalOrders {
		for _, it := range t {
			bump(it)
		}
	}
	for _, s := range d.Subsets {
		for _, g := range s {
			for _, it := range g {
				bump(it)
			}
		}
	}

	return n
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformed)
}

func (d *Dataset) validate() error {
	d.n = d.resolveN()
	if d.n <= 0 {
		return malformed("no items")
	}
	if len(d.Items.Names) > 0 && len(d.Items.Names) != d.n {
		return malformed("items.names has %d entries, want %d", len(d.Items.Names), d.n)
	}
	obs, err := d.Observations()
	if err != nil {
		return err
	}
	for _, o := range obs {
		if err = o.Validate(d.n); err != nil {
			return malformed("observation %d: %v", o.ID(), err)
		}
		if o.Len() > order.MaxMaskItems {
			return malformed("observation %d ranks %d items, limit %d", o.ID(), o.Len(), order.MaxMaskItems)
		}
	}
	if _, _, err = d.TrueOrder(); err != nil {
		return err
	}
	if len(d.Parameters.X) > 0 {
		if _, err = d.Alpha(); err != nil {
			return err
		}
	}

	return nil
}

// Observations converts the stored rankings into observations. Total orders
// come first, then subsets; IDs are positions in that sequence.
//
// Errors:
//   - ErrMalformed wrapping the observation constructor error.
func (d *Dataset) Observations() ([]*observation.Observation, error) {
	out := make([]*observation.Observation, 0, len(d.TotalOrders)+len(d.Subsets))
	for k, t := range d.TotalOrders {
		o, err := observation.NewTotal(len(out), t)
		if err != nil {
			return nil, malformed("total_orders[%d]: %v", k, err)
		}
		out = append(out, o)
	}
	for k, s := range d.Subsets {
		groups := make([][]int, len(s))
		for g, grp := range s {
			groups[g] = grp
		}
		o, err := observation.NewPartial(len(out), groups)
		if err != nil {
			return nil, malformed("subsets[%d]: %v", k, err)
		}
		out = append(out, o)
	}

	return out, nil
}

// TrueOrder returns the ground-truth relation when the dataset carries one.
//
// Errors:
//   - ErrMalformed for a non-square, non-binary, reflexive or symmetric matrix.
func (d *Dataset) TrueOrder() (*order.Relation, bool, error) {
	if len(d.TruePartialOrder) == 0 {
		return nil, false, nil
	}
	if len(d.TruePartialOrder) != d.n {
		return nil, false, malformed("true_partial_order has %d rows, want %d", len(d.TruePartialOrder), d.n)
	}
	r, err := order.FromRows(d.TruePartialOrder)
	if err != nil {
		return nil, false, malformed("true_partial_order: %v", err)
	}
	if err = r.Validate(); err != nil {
		return nil, false, malformed("true_partial_order: %v", err)
	}

	return r, true, nil
}

// Alpha returns the covariate shift Xβ; zeros when either is absent.
//
// Errors:
//   - ErrMalformed when X is ragged or not n×len(beta_true).
func (d *Dataset) Alpha() ([]float64, error) {
	if len(d.Parameters.X) == 0 || len(d.Parameters.BetaTrue) == 0 {
		return make([]float64, d.n), nil
	}
	p := len(d.Parameters.X[0])
	data := make([]float64, 0, len(d.Parameters.X)*p)
	for i, row := range d.Parameters.X {
		if len(row) != p || p == 0 {
			return nil, malformed("parameters.X row %d has %d cols, want %d", i, len(row), p)
		}
		data = append(data, row...)
	}
	x := mat.NewDense(len(d.Parameters.X), p, data)
	alpha, err := latent.CovariateShift(x, d.Parameters.BetaTrue, d.n)
	if err != nil {
		return nil, malformed("parameters: %v", err)
	}

	return alpha, nil
}
