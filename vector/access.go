// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Index returns element i without validation.
// Intended for loops that already guarantee 0 <= i < Len(); an invalid i
// triggers the Go runtime's index panic.
func (v *Vector[T]) Index(i int) T { return v.buf.Slice()[i] }

// SetIndex stores x at i without validation (see Index).
func (v *Vector[T]) SetIndex(i int, x T) { v.buf.Slice()[i] = x }

// Ref returns a pointer to element i without validation.
// The pointer stays valid until the vector is released, moved or reassigned.
func (v *Vector[T]) Ref(i int) *T { return &v.buf.Slice()[i] }

// At returns element i or ErrOutOfRange when i is outside [0, Len()).
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := validateIndex(i, v.Len()); err != nil {
		var zero T
		return zero, fmt.Errorf("Vector.%s(%d): %w", ctxAt, i, err)
	}

	return v.buf.Slice()[i], nil
}

// Set stores x at i or returns ErrOutOfRange; v is untouched on error.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, v.Len()); err != nil {
		return fmt.Errorf("Vector.%s(%d): %w", ctxSet, i, err)
	}
	v.buf.Slice()[i] = x

	return nil
}

// Do visits each element in index order; it stops early when f returns false.
func (v *Vector[T]) Do(f func(i int, x T) bool) {
	for i, x := range v.slice() {
		if !f(i, x) {
			return
		}
	}
}

// Apply replaces every element with f(i, x), in index order.
func (v *Vector[T]) Apply(f func(i int, x T) T) {
	s := v.slice()
	for i := range s {
		s[i] = f(i, s[i])
	}
}

// Equal reports whether v and other have the same length and pairwise equal
// elements. A length mismatch is simply "not equal". nil compares as empty.
// v.Equal(v) is always true; otherwise NaN elements follow ==.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == other {
		return true
	}
	a, b := v.slice(), other.slice()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// slice is the nil-safe view of the live storage.
func (v *Vector[T]) slice() []T {
	if v == nil {
		return nil
	}

	return v.buf.Slice()
}
