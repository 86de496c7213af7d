// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels on Matrix: scalar
// scaling, matrix·vector, element-wise addition/subtraction and matrix·matrix
// multiplication. All kernels perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Determinism & Policy:
//   - Every kernel validates operand shapes before reading a single element;
//     on failure no result is produced and operands are untouched.
//   - Results are freshly allocated; operands are never mutated.
//   - Loop orders are fixed and documented per kernel.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opMulVec = "MulVec"
	opPow    = "Pow"
)

// Scale returns a new matrix with every cell multiplied by x.
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: each row is scaled independently (row-level MulScalar).
//
// Errors:
//   - ErrInvalidArgument (nil), ErrDimensionMismatch (ragged rows).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Scale(x T) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src := m.rows.Slice()
	rows := make([]*vector.Vector[T], m.n)
	for i := range src {
		rows[i] = src[i].MulScalar(x)
	}

	return newFromRows(rows), nil
}

// MulVec computes y = m·v, the linear map applied to v.
// Implementation:
//   - Stage 1: ValidateVecLen(m, v): square m, non-nil v, len(v) == n.
//   - Stage 2: y[i] = row_i · v for i = 0..n-1 (each dot accumulates j = 0..n-1).
//
// Errors:
//   - ErrDimensionMismatch (len(v) != n or ragged rows), ErrInvalidArgument (nil).
//
// Complexity:
//   - Time O(n²), Space O(n) for y.
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", opMulVec, m.Size(), v.Len(), err)
	}
	y, err := vector.New[T](m.n, vector.WithMaxLen(m.n))
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	var (
		i   int
		acc T
	)
	for i = 0; i < m.n; i++ { // fixed row order
		if acc, err = m.rows.Slice()[i].Dot(v); err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		y.SetIndex(i, acc)
	}

	return y, nil
}

// Add computes the element-wise sum C = A + B (row-wise vector addition).
//
// Errors:
//   - ErrDimensionMismatch (different dimensions), ErrInvalidArgument (nil).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.addSub(other, opAdd, (*vector.Vector[T]).Add)
}

// Sub computes the element-wise difference C = A - B (row-wise vector subtraction).
// Errors and complexity match Add.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.addSub(other, opSub, (*vector.Vector[T]).Sub)
}

// addSub is the shared kernel for Add/Sub: validate once, then combine rows
// in order 0..n-1 into a fresh row table.
func (m *Matrix[T]) addSub(
	other *Matrix[T],
	opTag string,
	rowOp func(a, b *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", opTag, m.Size(), other.Size(), err)
	}
	a, b := m.rows.Slice(), other.rows.Slice()
	rows := make([]*vector.Vector[T], m.n)
	var err error
	for i := range a {
		if rows[i], err = rowOp(a[i], b[i]); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}

	return newFromRows(rows), nil
}

// Mul performs the standard product C = A × B.
// Implementation:
//   - Stage 1: ValidateSameSize(A, B).
//   - Stage 2: allocate C zero-initialized (the additive identity of T).
//   - Stage 3: triple loop in fixed i → k → j order:
//     C[i][j] += A[i][k] * B[k][j].
//
// Behavior highlights:
//   - Every C[i][j] is accumulated over k = 0..n-1 in ascending order, so the
//     floating-point result is reproducible.
//   - Zero A[i][k] terms are NOT skipped: 0·Inf and 0·NaN propagate as NaN.
//
// Errors:
//   - ErrDimensionMismatch (different dimensions), ErrInvalidArgument (nil).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameSize(m, other); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", opMul, m.Size(), other.Size(), err)
	}
	n := m.n
	res := newSquare[T](n)
	a, b, c := m.rows.Slice(), other.rows.Slice(), res.rows.Slice()

	var (
		i, j, k int
		aik     T
		ci, bk  *vector.Vector[T]
	)
	for i = 0; i < n; i++ {
		ci = c[i]
		for k = 0; k < n; k++ {
			aik = a[i].Index(k) // hoisted A[i][k]
			bk = b[k]
			for j = 0; j < n; j++ {
				*ci.Ref(j) += aik * bk.Index(j)
			}
		}
	}

	return res, nil
}
