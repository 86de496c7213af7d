// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// Index returns row i without validation, enabling two-step unchecked access:
// m.Index(i).Index(j). Resizing the returned row breaks the square invariant;
// arithmetic then reports ErrDimensionMismatch.
func (m *Matrix[T]) Index(i int) *vector.Vector[T] { return m.rows.Slice()[i] }

// Row returns row i or ErrOutOfRange. The row is shared, not copied.
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.Size() {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.rows.Slice()[i], nil
}

// At returns cell (i, j) or ErrOutOfRange when i or j is outside [0, Size()).
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := validateCell(i, j, m.Size()); err != nil {
		var zero T
		return zero, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	x, err := m.rows.Slice()[i].At(j)
	if err != nil { // row resized through Index
		return x, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	return x, nil
}

// Set stores x at (i, j) or returns ErrOutOfRange; m is untouched on error.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := validateCell(i, j, m.Size()); err != nil {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", ctxSet, i, j, err)
	}

	if err := m.rows.Slice()[i].Set(j, x); err != nil { // row resized through Index
		return fmt.Errorf("Matrix.%s(%d,%d): %w", ctxSet, i, j, err)
	}

	return nil
}

// Equal reports whether m and other have the same dimension and equal rows.
// A dimension mismatch is simply "not equal". nil compares as the empty matrix.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m.Size() != other.Size() {
		return false
	}
	if m.Size() == 0 {
		return true
	}
	a, b := m.rows.Slice(), other.rows.Slice()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
