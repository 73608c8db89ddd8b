// SPDX-License-Identifier: MIT
// Package: summary

package summary

import (
	"log/slog"

	"github.com/katalvlaran/porder/matrix"
)

// DefaultFallbackWindow is the sample count used when burn-in covers the trace.
const DefaultFallbackWindow = 1000

// Option configures Summarize.
type Option func(*Options)

// Options holds Summarize settings.
type Options struct {
	Logger         *slog.Logger
	Threshold      float64
	FallbackWindow int
}

// WithLogger injects a logger for warnings; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithThreshold sets the majority threshold (pairs with mean >= t are kept).
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithFallbackWindow sets the number of trailing samples used when burn-in
// covers the whole trace. Values below 1 keep the default.
func WithFallbackWindow(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.FallbackWindow = n
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		Logger:         slog.New(slog.DiscardHandler),
		Threshold:      matrix.DefaultThreshold,
		FallbackWindow: DefaultFallbackWindow,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
