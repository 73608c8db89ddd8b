// SPDX-License-Identifier: MIT
// Package: noise
//
// Purpose:
//   - Model interface, kinds, parameters and the factory.
//   - Shared plumbing: restriction of h to an observation, group masks and
//     the LRU memo of evaluations.

package noise

import (
	"encoding/binary"
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

// Kind names a noise model as written in configuration files.
type Kind string

const (
	// KindQueueJump selects the queue-jump model (parameter ProbNoise).
	KindQueueJump Kind = "queue_jump"
	// KindMallows selects the Mallows model (parameter Theta).
	KindMallows Kind = "mallows_noise"
)

// ParseKind maps a configuration string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindQueueJump, KindMallows:
		return k, nil
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Params carries both noise parameters; each model reads only its own.
type Params struct {
	ProbNoise float64 // queue-jump, in [0,1]
	Theta     float64 // Mallows dispersion, > 0
}

// Model evaluates observations against a closed partial order.
type Model interface {
	// Kind returns the model kind.
	Kind() Kind
	// LogLikelihood returns log P(obs | h, params). h must be transitively closed.
	LogLikelihood(h *order.Relation, obs *observation.Observation, params Params) (float64, error)
	// ValidateParams checks the model's own parameter.
	ValidateParams(params Params) error
}

// New returns the model for kind.
//
// Errors:
//   - ErrUnknownKind.
func New(kind Kind, opts ...Option) (Model, error) {
	switch kind {
	case KindQueueJump:
		return NewQueueJump(opts...), nil
	case KindMallows:
		return NewMallows(opts...), nil
	}

	return nil, fmt.Errorf("New(%q): %w", kind, ErrUnknownKind)
}

// memo is a bounded cache of evaluations; a nil *memo caches nothing.
type memo struct {
	cache *lru.Cache[string, float64]
}

func newMemo(size int) *memo {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[string, float64](size)
	if err != nil { // only for size <= 0, excluded above
		return nil
	}

	return &memo{cache: c}
}

func (m *memo) get(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}

	return m.cache.Get(key)
}

func (m *memo) add(key string, v float64) {
	if m != nil {
		m.cache.Add(key, v)
	}
}

// Len returns the number of memoised evaluations.
func (m *memo) Len() int {
	if m == nil {
		return 0
	}

	return m.cache.Len()
}

// restricted is h seen through one observation.
type restricted struct {
	sub    *order.Suborder
	groups []uint64 // local position masks, top group first
	group  []int    // group index per local position
}

// restrict builds the suborder of h on obs.Items() and the group masks.
func restrict(h *order.Relation, obs *observation.Observation) (*restricted, error) {
	sub, err := order.NewSuborder(h, obs.Items())
	if err != nil {
		return nil, fmt.Errorf("observation %d: %v: %w", obs.ID(), err, ErrObservation)
	}
	sizes := obs.GroupSizes()
	r := &restricted{sub: sub, groups: make([]uint64, len(sizes)), group: make([]int, 0, sub.Len())}
	pos := 0
	for g, size := range sizes {
		for k := 0; k < size; k++ {
			r.groups[g] |= 1 << uint(pos)
			r.group = append(r.group, g)
			pos++
		}
	}

	return r, nil
}

// key fingerprints (items, sub-order, group layout, parameter) for the memo.
func (r *restricted) key(param float64) string {
	buf := make([]byte, 0, 8*(len(r.sub.Items)+len(r.groups)+1)+8*len(r.sub.Pred))
	for _, it := range r.sub.Items {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(it))
	}
	for _, g := range r.groups {
		buf = binary.LittleEndian.AppendUint64(buf, g)
	}
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(param))

	return string(buf) + r.sub.Key()
}

// logSumExp of terms; an empty list is log 0.
func logSumExp(terms []float64) float64 {
	if len(terms) == 0 {
		return math.Inf(-1)
	}

	return floats.LogSumExp(terms)
}
