// SPDX-License-Identifier: MIT
// Package vector — public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each one delegates to the
//     canonical method without duplicating loops.
//
// AI-Hints:
//   - Of is the shortest way to build literal vectors in tests and examples.
//   - Sum/Diff/Dot/Scale read naturally when composing expressions.

package vector

// Of returns a vector holding a copy of values. Of() yields an empty vector.
// Errors: ErrSize when len(values) exceeds the configured limit.
func Of[T Number](values ...T) (*Vector[T], error) {
	if values == nil {
		values = []T{} // FromSlice treats nil as an absent source
	}

	return FromSlice(values, len(values))
}

// Zeros is an alias for New with an intention-revealing name.
func Zeros[T Number](size int, opts ...Option) (*Vector[T], error) { return New[T](size, opts...) }

// Sum is an alias for a.Add(b).
func Sum[T Number](a, b *Vector[T]) (*Vector[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff[T Number](a, b *Vector[T]) (*Vector[T], error) { return a.Sub(b) }

// Dot is an alias for a.Dot(b).
func Dot[T Number](a, b *Vector[T]) (T, error) { return a.Dot(b) }

// Scale is an alias for v.MulScalar(alpha).
func Scale[T Number](v *Vector[T], alpha T) *Vector[T] { return v.MulScalar(alpha) }
