// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - FromRows is the shortest way to write literal matrices in tests and examples.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized n×n matrix.
// It is a thin alias of New with an intention-revealing name.
func NewZeros[T vector.Number](n int, opts ...Option) (*Matrix[T], error) {
	return New[T](n, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity[T vector.Number](n int, opts ...Option) (*Matrix[T], error) {
	I, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.Index(i).SetIndex(i, 1) // i < n after validation
	}

	return I, nil
}

// FromRows builds a matrix holding a copy of rows.
// An empty (non-nil) rows slice yields the 0×0 matrix.
//
// Errors:
//   - ErrInvalidArgument when rows is nil.
//   - ErrSize when len(rows) exceeds the limit.
//   - ErrDimensionMismatch when any row length differs from len(rows).
//
// Complexity: O(n²).
func FromRows[T vector.Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if rows == nil {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidArgument)
	}
	n := len(rows)
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(r), n, ErrDimensionMismatch)
		}
		for j, x := range r {
			m.Index(i).SetIndex(j, x)
		}
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same dimension as m.
func ZerosLike[T vector.Number](m *Matrix[T]) *Matrix[T] { return newSquare[T](m.Size()) }

// IdentityLike returns I with dimension m.Size().
func IdentityLike[T vector.Number](m *Matrix[T]) *Matrix[T] {
	I := newSquare[T](m.Size())
	for i := 0; i < I.n; i++ {
		I.Index(i).SetIndex(i, 1)
	}

	return I
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for a.Add(b). Complexity: O(n²).
func Sum[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b). Complexity: O(n²).
func Diff[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Sub(b) }

// Product is an alias for a.Mul(b). Complexity: O(n³).
func Product[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Mul(b) }

// ScaleBy is an alias for m.Scale(alpha). Complexity: O(n²).
func ScaleBy[T vector.Number](m *Matrix[T], alpha T) (*Matrix[T], error) { return m.Scale(alpha) }

// MatVec is an alias for m.MulVec(x): y = m·x. Complexity: O(n²).
func MatVec[T vector.Number](m *Matrix[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	return m.MulVec(x)
}

// ---------- Convenience facades (compositions only) ----------

// RowSums returns r with r[i] = Σ_j m[i][j].
// Implementation: MulVec(m, ones(n)). No custom loops beyond building ones.
func RowSums[T vector.Number](m *Matrix[T]) (*vector.Vector[T], error) {
	ones, err := vector.New[T](m.Size(), vector.WithMaxLen(m.Size()))
	if err != nil {
		return nil, err
	}
	ones.Apply(func(int, T) T { return 1 })

	return m.MulVec(ones)
}

// Pow returns m^k for k >= 0 by repeated squaring (m^0 = I).
// The multiplication sequence depends only on k, so results are deterministic.
//
// Errors:
//   - ErrInvalidArgument when k < 0; kernel errors otherwise.
//
// Complexity: O(n³ log k).
func Pow[T vector.Number](m *Matrix[T], k int) (*Matrix[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opPow, k, ErrInvalidArgument)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	result := IdentityLike(m)
	base := m.Clone()
	var err error
	for k > 0 {
		if k&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}
