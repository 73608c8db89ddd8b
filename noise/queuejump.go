// SPDX-License-Identifier: MIT
// Package: noise
//
// Queue-jump model. With S the items not placed yet, the next item x is
// placed with probability
//
//	P(x | S) = p/|S| + (1-p)·[x minimal in h|S]·e(S\{x})/e(S)
//
// where e counts linear extensions. A tied group G starting at remaining set
// R is marginalised over all orders of G by a DP over subsets T ⊆ G:
//
//	F(∅) = 1,  F(T) = Σ_{x∈T} F(T\{x})·P(x | R \ (T\{x}))
//
// and the observation likelihood is the product of F(G) over groups.

package noise

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

// QueueJump is the queue-jump noise model.
type QueueJump struct {
	memo *memo
}

// NewQueueJump returns a queue-jump model.
func NewQueueJump(opts ...Option) *QueueJump {
	o := gatherOptions(opts...)

	return &QueueJump{memo: newMemo(o.MemoSize)}
}

// Kind returns KindQueueJump.
func (q *QueueJump) Kind() Kind { return KindQueueJump }

// MemoLen returns the number of memoised evaluations.
func (q *QueueJump) MemoLen() int { return q.memo.Len() }

// ValidateParams requires ProbNoise in [0,1].
func (q *QueueJump) ValidateParams(params Params) error {
	p := params.ProbNoise
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("queue_jump prob_noise=%g: %w", p, ErrParams)
	}

	return nil
}

// LogLikelihood returns log P(obs | h, p).
//
// Errors:
//   - ErrParams for p outside [0,1].
//   - ErrObservation when obs does not fit h.
func (q *QueueJump) LogLikelihood(h *order.Relation, obs *observation.Observation, params Params) (float64, error) {
	if err := q.ValidateParams(params); err != nil {
		return 0, fmt.Errorf("QueueJump.LogLikelihood: %w", err)
	}
	r, err := restrict(h, obs)
	if err != nil {
		return 0, fmt.Errorf("QueueJump.LogLikelihood: %w", err)
	}
	key := r.key(params.ProbNoise)
	if v, ok := q.memo.get(key); ok {
		return v, nil
	}
	v := queueJumpLog(r, params.ProbNoise)
	q.memo.add(key, v)

	return v, nil
}

// queueJumpLog evaluates the group DP in log space.
func queueJumpLog(r *restricted, p float64) float64 {
	s := r.sub
	ext := make(map[uint64]float64)

	// logStep is log P(x | set).
	logStep := func(x int, set uint64) float64 {
		prob := p / float64(bits.OnesCount64(set))
		if s.Pred[x]&set == 0 {
			if eS := s.CountExtensions(set, ext); eS > 0 {
				prob += (1 - p) * s.CountExtensions(set&^(1<<uint(x)), ext) / eS
			}
		}

		return math.Log(prob)
	}

	remaining := s.Full()
	var total float64
	for _, g := range r.groups {
		start := remaining
		f := map[uint64]float64{0: 0}
		var solve func(t uint64) float64
		solve = func(t uint64) float64 {
			if v, ok := f[t]; ok {
				return v
			}
			terms := make([]float64, 0, bits.OnesCount64(t))
			for rest := t; rest != 0; rest &= rest - 1 {
				x := bits.TrailingZeros64(rest)
				prev := t &^ (1 << uint(x))
				terms = append(terms, solve(prev)+logStep(x, start&^prev))
			}
			v := logSumExp(terms)
			f[t] = v

			return v
		}
		total += solve(g)
		if math.IsInf(total, -1) {
			return total
		}
		remaining &^= g
	}

	return total
}
