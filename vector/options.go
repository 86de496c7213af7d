// SPDX-License-Identifier: MIT

// Package vector: functional configuration for constructors.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).

package vector

// MaxVectorSize is the default upper bound on the element count of a Vector.
const MaxVectorSize = 100_000_000

// DefaultMaxLen is the size limit applied when no WithMaxLen option is given.
const DefaultMaxLen = MaxVectorSize

const panicMaxLenInvalid = "vector: WithMaxLen: limit must be non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxLen int // inclusive upper bound for New/FromSlice; DefaultMaxLen
}

// WithMaxLen overrides the inclusive size limit checked by New and FromSlice.
// Panics when limit < 0.
//
// AI-Hints:
//   - Use a tight limit when sizes come from untrusted input (parsed headers, requests).
func WithMaxLen(limit int) Option {
	if limit < 0 {
		panic(panicMaxLenInvalid)
	}

	return func(o *Options) { o.maxLen = limit }
}

// gatherOptions applies opts over the defaults. nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{maxLen: DefaultMaxLen}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
