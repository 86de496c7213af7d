// SPDX-License-Identifier: MIT
// Package vector: central validation helpers.
// Validators return plain sentinels; call sites add their own context.

package vector

// validateSize checks 0 <= n <= limit.
func validateSize(n, limit int) error {
	if n < 0 || n > limit {
		return ErrSize
	}

	return nil
}

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSameLen checks both operands are present and of equal length.
func validateSameLen[T Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrInvalidArgument
	}
	if a.Len() != b.Len() {
		return ErrDimensionMismatch
	}

	return nil
}
