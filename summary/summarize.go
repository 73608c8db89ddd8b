// SPDX-License-Identifier: MIT
// Package: summary

package summary

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/matrix"
	"github.com/katalvlaran/porder/order"
	"github.com/katalvlaran/porder/trace"
)

// Result is the posterior summary of one trace.
type Result struct {
	// H is the reported order: the transitive reduction of the majority relation.
	H *order.Relation
	// Mean is the cellwise posterior frequency of each pair (nil when a
	// fallback sample replaced it).
	Mean *matrix.Dense

	// Point estimates: the last sample of each traced component.
	Z         *mat.Dense
	Rho       float64
	ProbNoise float64
	Theta     float64
	LogLik    float64

	// From and To delimit the summarised window [From, To) of the trace.
	From, To int
	Warnings []string
}

// Summarize reduces tr after dropping the first burnIn samples.
//
// Implementation:
//   - Stage 1: choose the window (burn-in, or the trailing fallback window).
//   - Stage 2: NaN-aware mean of the window's relations; fallback to the last
//     sample without NaN.
//   - Stage 3: threshold, check acyclicity (fallback to the last valid
//     sample), transitive reduction.
//   - Stage 4: point estimates from the last sample.
//
// Errors:
//   - ErrEmptyTrace, ErrNoValidSample.
func Summarize(tr *trace.Trace, burnIn int, opts ...Option) (*Result, error) {
	if tr == nil || tr.Len() == 0 {
		return nil, ErrEmptyTrace
	}
	o := gatherOptions(opts...)
	res := &Result{}
	warn := func(msg string, attrs ...any) {
		o.Logger.Warn("summary: "+msg, attrs...)
		res.Warnings = append(res.Warnings, msg)
	}

	// Stage 1
	total := tr.Len()
	res.From, res.To = max(burnIn, 0), total
	if res.From >= total {
		res.From = max(total-o.FallbackWindow, 0)
		warn("burn-in exceeds trace length, using trailing samples",
			slog.Int("burn_in", burnIn), slog.Int("samples", total), slog.Int("used", total-res.From))
	}
	window, err := tr.Window(res.From, res.To)
	if err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}

	// Stage 2
	var base matrix.Matrix
	mean, err := matrix.NaNMean(window.Relations())
	if err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}
	if nan, _ := matrix.HasNaN(mean); nan {
		k, ok := lastValid(tr, false)
		if !ok {
			return nil, fmt.Errorf("Summarize: mean has missing cells: %w", ErrNoValidSample)
		}
		warn("posterior mean has missing cells, using last complete sample", slog.Int("sample", k))
		base = tr.H[k]
	} else {
		res.Mean = mean
		base = mean
	}

	// Stage 3
	rel, err := majority(base, o.Threshold)
	if err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}
	if !order.IsAcyclic(rel) {
		k, ok := lastValid(tr, true)
		if !ok {
			return nil, fmt.Errorf("Summarize: majority relation is cyclic: %w", ErrNoValidSample)
		}
		warn("majority relation is cyclic, using last valid sample", slog.Int("sample", k))
		if rel, err = majority(tr.H[k], o.Threshold); err != nil {
			return nil, fmt.Errorf("Summarize: %w", err)
		}
	}
	if res.H, err = order.Reduction(rel); err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}

	// Stage 4
	last, err := tr.Last()
	if err != nil {
		return nil, fmt.Errorf("Summarize: %w", err)
	}
	res.Z, res.Rho, res.ProbNoise, res.Theta, res.LogLik = last.Z, last.Rho, last.ProbNoise, last.Theta, last.LogLik

	return res, nil
}

// majority thresholds m into a relation.
func majority(m matrix.Matrix, t float64) (*order.Relation, error) {
	bin, err := matrix.Threshold(m, t)
	if err != nil {
		return nil, err
	}

	return order.FromMatrix(bin)
}

// lastValid scans the trace backwards for a sample without NaN cells; with
// acyclic set, the sample's relation must also be acyclic.
func lastValid(tr *trace.Trace, acyclic bool) (int, bool) {
	for k := tr.Len() - 1; k >= 0; k-- {
		h := tr.H[k]
		if h == nil {
			continue
		}
		if nan, err := matrix.HasNaN(h); err != nil || nan {
			continue
		}
		if !acyclic {
			return k, true
		}
		rel, err := majority(h, 0.5)
		if err == nil && order.IsAcyclic(rel) {
			return k, true
		}
	}

	return 0, false
}
