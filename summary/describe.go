// SPDX-License-Identifier: MIT
// Package: summary

package summary

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/porder/trace"
)

// Description summarises one scalar trace.
type Description struct {
	N      int
	Mean   float64
	StdDev float64
	Median float64
	Q05    float64
	Q95    float64
	Min    float64
	Max    float64
}

// Describe returns descriptive statistics of values.
//
// Errors:
//   - stats.ErrEmptyInput (wrapped) for an empty slice.
func Describe(values []float64) (Description, error) {
	data := stats.Float64Data(values)
	d := Description{N: len(values)}
	var err error
	if d.Mean, err = stats.Mean(data); err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}
	if d.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}
	if d.Median, err = stats.Median(data); err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}
	if d.Min, err = stats.Min(data); err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}
	// Fewer than 20 samples have no 5% rank; the minimum stands in.
	if d.Q05, err = stats.Percentile(data, 5); errors.Is(err, stats.ErrBounds) {
		d.Q05 = d.Min
	} else if err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}
	if d.Q95, err = stats.Percentile(data, 95); err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}
	if d.Max, err = stats.Max(data); err != nil {
		return Description{}, fmt.Errorf("Describe: %w", err)
	}

	return d, nil
}

// DescribeTrace describes the scalar components of tr after burnIn, keyed
// "rho", "prob_noise", "mallow_theta" and "log_likelihood". A burn-in at or
// beyond the trace length describes the whole trace.
func DescribeTrace(tr *trace.Trace, burnIn int) (map[string]Description, error) {
	if tr == nil || tr.Len() == 0 {
		return nil, ErrEmptyTrace
	}
	from := max(burnIn, 0)
	if from >= tr.Len() {
		from = 0
	}
	out := make(map[string]Description, 4)
	for name, values := range map[string][]float64{
		"rho":            tr.Rho[from:],
		"prob_noise":     tr.ProbNoise[from:],
		"mallow_theta":   tr.Theta[from:],
		"log_likelihood": tr.LogLik[from:],
	} {
		d, err := Describe(values)
		if err != nil {
			return nil, fmt.Errorf("DescribeTrace(%s): %w", name, err)
		}
		out[name] = d
	}

	return out, nil
}
