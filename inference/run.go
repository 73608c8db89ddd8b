// SPDX-License-Identifier: MIT
// Package: inference
//
// Purpose:
//   - Run: dataset + config → sampler → trace → summary → result.Record.
//   - Resummarize: recompute the summary of a saved record with a new burn-in.

package inference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/porder/config"
	"github.com/katalvlaran/porder/dataset"
	"github.com/katalvlaran/porder/mcmc"
	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/result"
	"github.com/katalvlaran/porder/summary"
	"github.com/katalvlaran/porder/trace"
)

// Output is everything one run produced.
type Output struct {
	Record  *result.Record
	Summary *summary.Result
	Trace   *trace.Trace
	Stats   mcmc.Stats
}

// Run samples the posterior of ds under cfg and summarises it.
//
// Implementation:
//   - Stage 1: observations and covariate shift from the dataset.
//   - Stage 2: run the chain with the configured seed.
//   - Stage 3: summarise after burn-in; describe the scalar traces.
//   - Stage 4: compare with the true order when the dataset has one.
//
// Errors are logged with context and returned wrapped; a cancelled context
// yields ctx.Err().
func Run(ctx context.Context, cfg config.Config, ds *dataset.Dataset, opts ...Option) (*Output, error) {
	o := gatherOptions(opts...)
	log := o.Logger.With(slog.String("data", cfg.DataName))
	runID := result.NewRunID()
	log = log.With(slog.String("run_id", runID))

	obs, err := ds.Observations()
	if err != nil {
		log.Error("inference: observations", slog.Any("err", err))
		return nil, fmt.Errorf("inference.Run: %w", err)
	}
	alpha, err := ds.Alpha()
	if err != nil {
		log.Error("inference: covariates", slog.Any("err", err))
		return nil, fmt.Errorf("inference.Run: %w", err)
	}

	sampler, err := mcmc.NewSampler(cfg.MCMC(alpha), obs, ds.NumItems(),
		mcmc.WithSeed(cfg.Seed),
		mcmc.WithLogger(log),
		mcmc.WithProgressEvery(o.ProgressEvery),
	)
	if err != nil {
		log.Error("inference: sampler", slog.Any("err", err))
		return nil, fmt.Errorf("inference.Run: %w", err)
	}
	tr, err := sampler.Run(ctx)
	if err != nil {
		log.Error("inference: chain", slog.Any("err", err))
		return nil, fmt.Errorf("inference.Run: %w", err)
	}

	rec := &result.Record{
		RunID:       runID,
		NoiseOption: string(cfg.NoiseOption),
		Seed:        cfg.Seed,
		Trace:       result.FromTrace(tr),
		Beta:        beta(ds, cfg.CovariateDim),
		Acceptance:  acceptance(sampler.Stats()),
		Items:       ds.Names(),
	}
	sum, err := summarise(rec, tr, cfg.BurnIn, o, log)
	if err != nil {
		return nil, fmt.Errorf("inference.Run: %w", err)
	}

	if truth, ok, err := ds.TrueOrder(); err != nil {
		return nil, fmt.Errorf("inference.Run: %w", err)
	} else if ok {
		if err = compare(rec, truth, sum.H); err != nil {
			log.Error("inference: compare", slog.Any("err", err))
			return nil, fmt.Errorf("inference.Run: %w", err)
		}
		log.Info("inference: compared with true order",
			slog.Int("missing", len(rec.Missing)),
			slog.Int("redundant", len(rec.Redundant)),
		)
	}

	return &Output{Record: rec, Summary: sum, Trace: tr, Stats: sampler.Stats()}, nil
}

// Resummarize recomputes H, point estimates, statistics and warnings of rec
// from its stored trace with a new burn-in, in place. The relationship lists
// are recomputed against WithTruth, or cleared without it.
func Resummarize(rec *result.Record, burnIn int, opts ...Option) (*summary.Result, error) {
	o := gatherOptions(opts...)
	log := o.Logger.With(slog.String("run_id", rec.RunID))
	tr, err := rec.Trace.ToTrace()
	if err != nil {
		return nil, fmt.Errorf("inference.Resummarize: %w", err)
	}
	rec.Warnings = nil
	sum, err := summarise(rec, tr, burnIn, o, log)
	if err != nil {
		return nil, fmt.Errorf("inference.Resummarize: %w", err)
	}
	rec.Missing, rec.Redundant = nil, nil
	if o.Truth != nil {
		if err = compare(rec, o.Truth, sum.H); err != nil {
			return nil, fmt.Errorf("inference.Resummarize: %w", err)
		}
	}

	return sum, nil
}

// summarise fills the summary fields of rec from tr.
func summarise(rec *result.Record, tr *trace.Trace, burnIn int, o Options, log *slog.Logger) (*summary.Result, error) {
	sum, err := summary.Summarize(tr, burnIn,
		summary.WithLogger(log),
		summary.WithThreshold(o.Threshold),
	)
	if err != nil {
		log.Error("inference: summary", slog.Any("err", err))
		return nil, err
	}
	stats, err := summary.DescribeTrace(tr, burnIn)
	if err != nil {
		log.Error("inference: statistics", slog.Any("err", err))
		return nil, err
	}

	rec.BurnIn = burnIn
	rec.H = sum.H.Ints()
	rec.Z = result.FromDense(sum.Z)
	rec.Rho = result.Float(sum.Rho)
	rec.ProbNoise = result.Float(sum.ProbNoise)
	rec.MallowTheta = result.Float(sum.Theta)
	rec.Statistics = result.FromDescriptions(stats)
	rec.Warnings = append(rec.Warnings, sum.Warnings...)
	if rec.Warnings == nil {
		rec.Warnings = []string{}
	}

	return sum, nil
}

func compare(rec *result.Record, truth, inferred *order.Relation) error {
	missing, err := order.Missing(truth, inferred)
	if err != nil {
		return err
	}
	redundant, err := order.Redundant(truth, inferred)
	if err != nil {
		return err
	}
	rec.Missing = result.Relationships(missing, rec.Items)
	rec.Redundant = result.Relationships(redundant, rec.Items)

	return nil
}

// beta reports the covariate effects: the dataset's beta_true, or zeros(p).
func beta(ds *dataset.Dataset, p int) []result.Float {
	if b := ds.Parameters.BetaTrue; len(b) > 0 {
		out := make([]result.Float, len(b))
		for i, v := range b {
			out[i] = result.Float(v)
		}

		return out
	}

	return make([]result.Float, p)
}

func acceptance(s mcmc.Stats) map[string]result.Acceptance {
	row := func(m mcmc.MoveStats) result.Acceptance {
		return result.Acceptance{Proposed: m.Proposed, Accepted: m.Accepted, Rate: result.Float(m.Rate())}
	}

	return map[string]result.Acceptance{
		mcmc.MoveRho.String():    row(s.Rho),
		mcmc.MoveNoise.String():  row(s.Noise),
		mcmc.MoveLatent.String(): row(s.Latent),
	}
}
