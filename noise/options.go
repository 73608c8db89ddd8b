// SPDX-License-Identifier: MIT
// Package: noise

package noise

// DefaultMemoSize is the default capacity of the evaluation memo.
const DefaultMemoSize = 4096

// Option configures a Model.
type Option func(*Options)

// Options holds Model construction settings.
type Options struct {
	MemoSize int // 0 disables memoisation
}

// WithMemoSize sets the LRU capacity; 0 disables the memo, negative keeps the default.
func WithMemoSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MemoSize = n
		}
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{MemoSize: DefaultMemoSize}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
