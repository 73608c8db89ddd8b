// SPDX-License-Identifier: MIT
// Package: mcmc
//
// Purpose:
//   - Sampler construction (initial state, cache, priors) and the Run loop.
//
// Determinism:
//   - One PCG stream seeded from Options.Seed drives every draw (move choice,
//     proposals, acceptance, latent prior), so a seed fixes the chain.

package mcmc

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/porder/latent"
	"github.com/katalvlaran/porder/likelihood"
	"github.com/katalvlaran/porder/noise"
	"github.com/katalvlaran/porder/observation"
	"github.com/katalvlaran/porder/trace"
)

var negInf = math.Inf(-1)

// Sampler is one Markov chain.
type Sampler struct {
	cfg  Config
	opts Options
	n    int
	log  *slog.Logger

	src    rand.Source
	rng    *rand.Rand
	moves  distuv.Categorical
	priors Priors

	noise  noise.Model
	latent *latent.Model
	prior  *latent.Prior // row prior at state.Rho
	cache  *likelihood.Cache

	phase Phase
	state State
	stats Stats
	trace *trace.Trace
}

// NewSampler validates cfg and builds the initial state over n items.
//
// Implementation:
//   - Stage 1: validate configuration, items and observations.
//   - Stage 2: seed the stream, draw (or take) the initial rho, noise
//     parameter and Z.
//   - Stage 3: derive h and fill the likelihood cache.
//
// Errors:
//   - ErrInvalidConfig, ErrNoItems, observation.ErrOutOfRange, and errors
//     from the noise model, all wrapped.
func NewSampler(cfg Config, obs []*observation.Observation, n int, opts ...Option) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewSampler: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("NewSampler: n=%d: %w", n, ErrNoItems)
	}
	if len(cfg.Alpha) != 0 && len(cfg.Alpha) != n {
		return nil, fmt.Errorf("NewSampler: alpha has %d entries, want %d: %w", len(cfg.Alpha), n, ErrInvalidConfig)
	}
	for _, o := range obs {
		if err := o.Validate(n); err != nil {
			return nil, fmt.Errorf("NewSampler: %w", err)
		}
	}
	o := gatherOptions(opts...)

	src := rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15)
	s := &Sampler{
		cfg:    cfg,
		opts:   o,
		n:      n,
		log:    o.Logger,
		src:    src,
		rng:    rand.New(src),
		moves:  distuv.NewCategorical([]float64{cfg.Updates.Rho, cfg.Updates.Noise, cfg.Updates.U}, src),
		priors: NewPriors(cfg, src),
		latent: latent.NewModel(o.Policy, cfg.Alpha),
		phase:  PhaseInit,
		trace:  trace.New(cfg.Thinning),
	}

	var memoOpts []noise.Option
	if o.MemoSize >= 0 {
		memoOpts = append(memoOpts, noise.WithMemoSize(o.MemoSize))
	}
	var err error
	if s.noise, err = noise.New(cfg.NoiseKind, memoOpts...); err != nil {
		return nil, fmt.Errorf("NewSampler: %w", err)
	}

	if err = s.initState(obs); err != nil {
		return nil, fmt.Errorf("NewSampler: %w", err)
	}

	return s, nil
}

func (s *Sampler) initState(obs []*observation.Observation) error {
	st := State{}
	if s.cfg.InitialRho != nil {
		st.Rho = *s.cfg.InitialRho
	} else {
		st.Rho = s.priors.drawRho()
	}
	switch s.cfg.NoiseKind {
	case noise.KindQueueJump:
		if s.cfg.InitialProbNoise != nil {
			st.Params.ProbNoise = *s.cfg.InitialProbNoise
		} else {
			st.Params.ProbNoise = s.priors.Noise.Rand()
		}
	case noise.KindMallows:
		if s.cfg.InitialTheta != nil {
			st.Params.Theta = *s.cfg.InitialTheta
		} else {
			st.Params.Theta = s.priors.Theta.Rand()
		}
	}

	prior, err := latent.NewPrior(s.cfg.K, st.Rho, s.src)
	if err != nil {
		return err
	}
	s.prior = prior

	if z := s.opts.InitialZ; z != nil {
		r, c := z.Dims()
		if r != s.n || c != s.cfg.K {
			return fmt.Errorf("initial Z is %dx%d, want %dx%d: %w", r, c, s.n, s.cfg.K, ErrInvalidConfig)
		}
		st.Z = mat.DenseCopyOf(z)
	} else {
		st.Z = prior.Sample(s.n)
	}

	st.H = s.latent.DeriveOrder(st.Z, st.Rho)
	st.HDense = st.H.Dense()

	if s.cache, err = likelihood.New(s.noise, obs, st.H, st.Params); err != nil {
		return err
	}
	st.LogLik = s.cache.Total()
	s.state = st

	return nil
}

// Phase returns the lifecycle state.
func (s *Sampler) Phase() Phase { return s.phase }

// State returns the committed state.
func (s *Sampler) State() State { return s.state }

// Stats returns the move counters.
func (s *Sampler) Stats() Stats { return s.stats }

// Trace returns the trace recorded so far.
func (s *Sampler) Trace() *trace.Trace { return s.trace }

// Run iterates the chain for cfg.Iterations and returns the trace.
// On context cancellation the chain stops between iterations, moves to
// PhaseDone and returns the partial trace with the context error.
//
// Errors:
//   - ErrAlreadyRun, ctx.Err(), likelihood evaluation errors (wrapped).
func (s *Sampler) Run(ctx context.Context) (*trace.Trace, error) {
	if s.phase != PhaseInit {
		return nil, fmt.Errorf("Run: phase %s: %w", s.phase, ErrAlreadyRun)
	}
	s.phase = PhaseIterating
	defer func() { s.phase = PhaseDone }()

	s.log.Info("mcmc: start",
		slog.Int("iterations", s.cfg.Iterations),
		slog.Int("items", s.n),
		slog.Int("observations", s.cache.Len()),
		slog.Int("K", s.cfg.K),
		slog.String("noise", string(s.cfg.NoiseKind)),
		slog.Float64("log_likelihood", s.state.LogLik),
	)

	for it := 0; it < s.cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			s.log.Warn("mcmc: cancelled", slog.Int("iteration", it), slog.Any("err", err))
			return s.trace, fmt.Errorf("Run: iteration %d: %w", it, err)
		}
		if err := s.step(); err != nil {
			s.log.Error("mcmc: step failed", slog.Int("iteration", it), slog.Any("err", err))
			return s.trace, fmt.Errorf("Run: iteration %d: %w", it, err)
		}
		if s.trace.Records(it) {
			if err := s.record(); err != nil {
				return s.trace, fmt.Errorf("Run: iteration %d: %w", it, err)
			}
		}
		if s.opts.ProgressEvery > 0 && (it+1)%s.opts.ProgressEvery == 0 {
			s.log.Debug("mcmc: progress",
				slog.Int("iteration", it+1),
				slog.Float64("log_likelihood", s.state.LogLik),
				slog.Float64("rho", s.state.Rho),
				slog.Int("edges", s.state.H.EdgeCount()),
			)
		}
	}

	s.log.Info("mcmc: done",
		slog.Int("samples", s.trace.Len()),
		slog.Float64("accept_rho", s.stats.Rho.Rate()),
		slog.Float64("accept_noise", s.stats.Noise.Rate()),
		slog.Float64("accept_U", s.stats.Latent.Rate()),
	)

	return s.trace, nil
}

func (s *Sampler) record() error {
	st := s.state

	return s.trace.Append(trace.Sample{
		Z:         st.Z,
		H:         st.HDense,
		Rho:       st.Rho,
		ProbNoise: st.Params.ProbNoise,
		Theta:     st.Params.Theta,
		LogLik:    st.LogLik,
	})
}
