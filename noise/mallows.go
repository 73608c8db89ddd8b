// SPDX-License-Identifier: MIT
// Package: noise
//
// Mallows model. For an observed ranking y over item set A (|A| = m):
//
//	P(y | h, θ) = |L(h|A)|⁻¹ Σ_{l ∈ L(h|A)} exp(-θ·d_K(y, l)) / Z_m(θ)
//	Z_m(θ)      = Π_{j=1..m} (1 - e^{-jθ}) / (1 - e^{-θ})
//
// The sum over extensions is a DP over the remaining set S, placing a
// minimal x next and paying one discordance per remaining item ranked above
// x by the observation:
//
//	W_θ(∅) = 1,  W_θ(S) = Σ_{x minimal in S} e^{-θ·#{u ∈ S\{x}: g(u) < g(x)}} W_θ(S\{x})
//
// With g the group index, pairs inside one group never count, and summing the
// total orders compatible with the groups multiplies by Π_G Z_|G|(θ):
//
//	log P = log W_θ(A) - log W_0(A) - log Z_m(θ) + Σ_G log Z_|G|(θ)

package noise

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/order"
)

// Mallows is the Kendall-tau Mallows noise model over linear extensions.
type Mallows struct {
	memo *memo
}

// NewMallows returns a Mallows model.
func NewMallows(opts ...Option) *Mallows {
	o := gatherOptions(opts...)

	return &Mallows{memo: newMemo(o.MemoSize)}
}

// Kind returns KindMallows.
func (m *Mallows) Kind() Kind { return KindMallows }

// MemoLen returns the number of memoised evaluations.
func (m *Mallows) MemoLen() int { return m.memo.Len() }

// ValidateParams requires a finite Theta > 0.
func (m *Mallows) ValidateParams(params Params) error {
	th := params.Theta
	if math.IsNaN(th) || math.IsInf(th, 0) || th <= 0 {
		return fmt.Errorf("mallows theta=%g: %w", th, ErrParams)
	}

	return nil
}

// LogLikelihood returns log P(obs | h, θ).
//
// Errors:
//   - ErrParams for θ outside (0, ∞).
//   - ErrObservation when obs does not fit h.
func (m *Mallows) LogLikelihood(h *order.Relation, obs *observation.Observation, params Params) (float64, error) {
	if err := m.ValidateParams(params); err != nil {
		return 0, fmt.Errorf("Mallows.LogLikelihood: %w", err)
	}
	r, err := restrict(h, obs)
	if err != nil {
		return 0, fmt.Errorf("Mallows.LogLikelihood: %w", err)
	}
	key := r.key(params.Theta)
	if v, ok := m.memo.get(key); ok {
		return v, nil
	}
	v := mallowsLog(r, params.Theta)
	m.memo.add(key, v)

	return v, nil
}

func mallowsLog(r *restricted, theta float64) float64 {
	s := r.sub
	n := s.Len()

	// above[x] masks the positions of earlier groups than x's.
	above := make([]uint64, n)
	for x := 0; x < n; x++ {
		for g := 0; g < r.group[x]; g++ {
			above[x] |= r.groups[g]
		}
	}

	w := make(map[uint64]float64)
	var logW func(set uint64) float64
	logW = func(set uint64) float64 {
		if set == 0 {
			return 0
		}
		if v, ok := w[set]; ok {
			return v
		}
		mins := s.Minimal(set)
		terms := make([]float64, 0, bits.OnesCount64(mins))
		for ; mins != 0; mins &= mins - 1 {
			x := bits.TrailingZeros64(mins)
			rest := set &^ (1 << uint(x))
			disc := float64(bits.OnesCount64(above[x] & rest))
			terms = append(terms, -theta*disc+logW(rest))
		}
		v := logSumExp(terms)
		w[set] = v

		return v
	}

	full := s.Full()
	v := logW(full) - math.Log(s.CountExtensions(full, nil)) - LogMallowsNorm(n, theta)
	for _, g := range r.groups {
		v += LogMallowsNorm(bits.OnesCount64(g), theta)
	}

	return v
}

// LogMallowsNorm returns log Z_m(θ), the Kendall-tau normaliser
// Σ_{σ ∈ S_m} e^{-θ·inv(σ)}. For θ <= 0 it returns log m!.
func LogMallowsNorm(m int, theta float64) float64 {
	if m <= 1 {
		return 0
	}
	if theta <= 0 {
		lg, _ := math.Lgamma(float64(m + 1))
		return lg
	}
	base := math.Log(-math.Expm1(-theta))
	var out float64
	for j := 2; j <= m; j++ {
		out += math.Log(-math.Expm1(-float64(j)*theta)) - base
	}

	return out
}
