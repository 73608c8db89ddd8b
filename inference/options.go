// SPDX-License-Identifier: MIT
// Package: inference

package inference

import (
	"log/slog"

	"github.com/katalvlaran/porder/matrix"
	"github.com/katalvlaran/porder/order"
)

// Option configures Run.
type Option func(*Options)

// Options holds optional run settings.
type Options struct {
	Logger        *slog.Logger
	ProgressEvery int
	Threshold     float64
	Truth         *order.Relation
}

// WithLogger injects a logger shared by the sampler and the summariser.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery logs chain progress every n iterations.
func WithProgressEvery(n int) Option {
	return func(o *Options) { o.ProgressEvery = n }
}

// WithThreshold sets the majority threshold of the summary.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithTruth sets the reference order Resummarize compares against.
func WithTruth(r *order.Relation) Option {
	return func(o *Options) { o.Truth = r }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		Logger:    slog.New(slog.DiscardHandler),
		Threshold: matrix.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
