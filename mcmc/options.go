// SPDX-License-Identifier: MIT
// Package: mcmc

package mcmc

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/porder/latent"
)

// DefaultSeed seeds the chain when WithSeed is not given.
const DefaultSeed uint64 = 1

// Option configures a Sampler.
type Option func(*Options)

// Options holds optional sampler collaborators.
type Options struct {
	Seed          uint64
	Logger        *slog.Logger
	Policy        latent.Policy
	ProgressEvery int // 0 disables progress logging
	InitialZ      *mat.Dense
	MemoSize      int // noise memo capacity, negative keeps the noise default
}

// WithSeed fixes the random stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger injects a logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPolicy replaces the dominance policy used to derive h from Z.
func WithPolicy(p latent.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithProgressEvery logs chain progress every n iterations at debug level.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.ProgressEvery = n
		}
	}
}

// WithInitialZ starts the chain from z (n×K) instead of a prior draw.
func WithInitialZ(z *mat.Dense) Option {
	return func(o *Options) { o.InitialZ = z }
}

// WithMemoSize sets the noise-model memo capacity (0 disables it).
func WithMemoSize(n int) Option {
	return func(o *Options) { o.MemoSize = n }
}

func defaultOptions() Options {
	return Options{
		Seed:     DefaultSeed,
		Logger:   slog.New(slog.DiscardHandler),
		MemoSize: -1,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
