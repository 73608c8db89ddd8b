// SPDX-License-Identifier: MIT
// Package: likelihood
//
// Purpose:
//   - Cache: committed partial order, noise parameters and per-observation
//     contributions.
//   - Proposal: candidate contributions against one cache generation.
//
// Contract:
//   - Totals are recomputed as plain sums over contributions, never patched.
//   - Two equal totals (including -Inf) have a zero delta.

package likelihood

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/porder/noise"
	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

// Cache holds the committed likelihood state of one chain.
type Cache struct {
	model  noise.Model
	obs    []*observation.Observation
	index  map[int]int // observation ID → position
	h      *order.Relation
	params noise.Params
	values []float64
	total  float64
	gen    uint64
	evals  int
}

// Proposal is a candidate state with its recomputed contributions.
type Proposal struct {
	owner   *Cache
	gen     uint64
	h       *order.Relation
	params  noise.Params
	updates map[int]float64 // position → new contribution
	total   float64
	delta   float64
}

// Delta returns the proposed total minus the committed total.
func (p *Proposal) Delta() float64 { return p.delta }

// Total returns the proposed total log-likelihood.
func (p *Proposal) Total() float64 { return p.total }

// Recomputed returns how many observations were re-evaluated.
func (p *Proposal) Recomputed() int { return len(p.updates) }

// New evaluates every observation under (h, params) and returns the cache.
// h must be transitively closed.
//
// Errors:
//   - errors from model.LogLikelihood, wrapped.
func New(model noise.Model, obs []*observation.Observation, h *order.Relation, params noise.Params) (*Cache, error) {
	c := &Cache{
		model:  model,
		obs:    obs,
		index:  make(map[int]int, len(obs)),
		h:      h,
		params: params,
		values: make([]float64, len(obs)),
	}
	for k, o := range obs {
		c.index[o.ID()] = k
		v, err := c.eval(h, o, params)
		if err != nil {
			return nil, fmt.Errorf("likelihood.New: %w", err)
		}
		c.values[k] = v
	}
	c.total = sum(c.values, nil)

	return c, nil
}

func (c *Cache) eval(h *order.Relation, o *observation.Observation, params noise.Params) (float64, error) {
	c.evals++

	return c.model.LogLikelihood(h, o, params)
}

// Total returns the committed total log-likelihood.
func (c *Cache) Total() float64 { return c.total }

// Relation returns the committed partial order. Callers must not modify it.
func (c *Cache) Relation() *order.Relation { return c.h }

// Params returns the committed noise parameters.
func (c *Cache) Params() noise.Params { return c.params }

// Len returns the number of observations.
func (c *Cache) Len() int { return len(c.obs) }

// Evaluations returns the number of noise-model calls made so far.
func (c *Cache) Evaluations() int { return c.evals }

// Generation returns the number of commits.
func (c *Cache) Generation() uint64 { return c.gen }

// Contribution returns the committed contribution of observation id.
//
// Errors:
//   - ErrUnknownObservation.
func (c *Cache) Contribution(id int) (float64, error) {
	k, ok := c.index[id]
	if !ok {
		return 0, fmt.Errorf("Contribution(%d): %w", id, ErrUnknownObservation)
	}

	return c.values[k], nil
}

// RecomputeAffected proposes newH under the committed parameters,
// re-evaluating only observations that touch changed. A nil or empty changed
// set yields a zero-delta proposal.
func (c *Cache) RecomputeAffected(newH *order.Relation, changed *bitset.BitSet) (*Proposal, error) {
	p := c.proposal(newH, c.params)
	if changed == nil || !changed.Any() {
		p.total, p.delta = c.total, 0
		return p, nil
	}
	for k, o := range c.obs {
		if !o.Touches(changed) {
			continue
		}
		v, err := c.eval(newH, o, c.params)
		if err != nil {
			return nil, fmt.Errorf("RecomputeAffected: %w", err)
		}
		p.updates[k] = v
	}
	c.finish(p)

	return p, nil
}

// RecomputeAll proposes (newH, params), re-evaluating every observation.
func (c *Cache) RecomputeAll(newH *order.Relation, params noise.Params) (*Proposal, error) {
	p := c.proposal(newH, params)
	for k, o := range c.obs {
		v, err := c.eval(newH, o, params)
		if err != nil {
			return nil, fmt.Errorf("RecomputeAll: %w", err)
		}
		p.updates[k] = v
	}
	c.finish(p)

	return p, nil
}

func (c *Cache) proposal(h *order.Relation, params noise.Params) *Proposal {
	return &Proposal{owner: c, gen: c.gen, h: h, params: params, updates: make(map[int]float64)}
}

func (c *Cache) finish(p *Proposal) {
	p.total = sum(c.values, p.updates)
	p.delta = p.total - c.total
	if p.total == c.total { // also covers -Inf == -Inf
		p.delta = 0
	}
}

// Commit makes p the committed state.
//
// Errors:
//   - ErrForeignProposal, ErrStaleProposal.
func (c *Cache) Commit(p *Proposal) error {
	if p.owner != c {
		return ErrForeignProposal
	}
	if p.gen != c.gen {
		return fmt.Errorf("Commit: proposal gen %d, cache gen %d: %w", p.gen, c.gen, ErrStaleProposal)
	}
	for k, v := range p.updates {
		c.values[k] = v
	}
	c.h, c.params, c.total = p.h, p.params, p.total
	c.gen++

	return nil
}

// sum adds values, taking overrides by position.
func sum(values []float64, overrides map[int]float64) float64 {
	var total float64
	for k, v := range values {
		if o, ok := overrides[k]; ok {
			v = o
		}
		total += v
	}

	return total
}
