// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).

package matrix

// MaxMatrixSize is the default upper bound on the dimension of a Matrix.
const MaxMatrixSize = 10_000

// DefaultMaxDim is the dimension limit applied when no WithMaxDim option is given.
const DefaultMaxDim = MaxMatrixSize

const panicMaxDimInvalid = "matrix: WithMaxDim: limit must be non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxDim int // inclusive upper bound for the dimension; DefaultMaxDim
}

// WithMaxDim overrides the inclusive dimension limit checked by constructors.
// Rows are allocated under the same limit. Panics when limit < 0.
//
// AI-Hints:
//   - Memory grows as limit²; raise it only when the workload really needs it.
func WithMaxDim(limit int) Option {
	if limit < 0 {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) { o.maxDim = limit }
}

// gatherOptions applies opts over the defaults. nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{maxDim: DefaultMaxDim}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
