// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape checks run before every kernel.
//  - Return plain sentinels (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - Pure, allocation-free checks; ValidateSquare is O(n) over the row table.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → SameSize).

package matrix

import "github.com/katalvlaran/dynmat/vector"

// validateDim checks 0 <= n <= limit.
func validateDim(n, limit int) error {
	if n < 0 || n > limit {
		return ErrSize
	}

	return nil
}

// validateCell checks 0 <= i,j < n.
func validateCell(i, j, n int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}

// ValidateSquare reports whether m is present and well formed: Size() rows,
// each of length Size(). Rows resized through Index break this invariant.
//
// Errors: ErrInvalidArgument (nil), ErrDimensionMismatch (ragged rows).
// Complexity: O(n).
func ValidateSquare[T vector.Number](m *Matrix[T]) error {
	if m == nil {
		return ErrInvalidArgument
	}
	rows := m.rows.Slice()
	if len(rows) != m.n {
		return ErrDimensionMismatch
	}
	for _, r := range rows {
		if r.Len() != m.n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// ValidateSameSize – Composite: Square(a) → Square(b) → equal dimensions.
// Complexity: O(n).
func ValidateSameSize[T vector.Number](a, b *Matrix[T]) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateSquare(b); err != nil {
		return err
	}
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen – Composite: Square(m) → v present → v.Len() == m.Size().
// Complexity: O(n).
func ValidateVecLen[T vector.Number](m *Matrix[T], v *vector.Vector[T]) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if v == nil {
		return ErrInvalidArgument
	}
	if v.Len() != m.n {
		return ErrDimensionMismatch
	}

	return nil
}
