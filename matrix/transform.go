// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix transforms and visitors.
//
// Purpose:
//   - Transpose/Trace for the usual square-matrix identities.
//   - Do/Apply: cell visitors in fixed row-major order (i then j).
//   - AllClose: tolerance comparison for float kinds, where Equal is too strict.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

const (
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opAllClose  = "AllClose"
)

// Transpose returns a new matrix with rows and columns swapped.
// Stage 1 (Validate): ValidateSquare(m).
// Stage 2 (Execute): res[j][i] = m[i][j], row-major over m.
// Time Complexity: O(n²); Space Complexity: O(n²).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newSquare[T](m.n)
	dst := res.rows.Slice()
	for i, row := range m.rows.Slice() {
		row.Do(func(j int, x T) bool {
			dst[j].SetIndex(i, x)
			return true
		})
	}

	return res, nil
}

// Trace returns the sum of the diagonal, accumulated for i = 0..n-1.
// The trace of the 0×0 matrix is the zero value.
func (m *Matrix[T]) Trace() (T, error) {
	var sum T
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	for i, row := range m.rows.Slice() {
		sum += row.Index(i)
	}

	return sum, nil
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,x).
// Read-only visitor; stops early when f returns false. nil-safe.
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (m *Matrix[T]) Do(f func(i, j int, x T) bool) {
	if m == nil {
		return
	}
	var stop bool
	for i, row := range m.rows.Slice() {
		row.Do(func(j int, x T) bool {
			stop = !f(i, j, x)
			return !stop
		})
		if stop {
			return
		}
	}
}

// Apply replaces each cell with f(i,j,x) in place, row-major.
// For all-or-nothing semantics, transform a Clone and Swap it in.
func (m *Matrix[T]) Apply(f func(i, j int, x T) T) {
	if m == nil {
		return
	}
	for i, row := range m.rows.Slice() {
		row.Apply(func(j int, x T) T { return f(i, j, x) })
	}
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for equally sized
// float matrices. Returns (true,nil) if every cell satisfies the relation.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN tolerances are rejected.
//   - A NaN cell never satisfies the relation.
//
// Errors:
//   - ErrInvalidArgument (nil operand or NaN tolerance), ErrDimensionMismatch.
//
// Complexity: Time O(n²), Space O(1).
func AllClose[T constraints.Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) {
		return false, fmt.Errorf("Matrix.%s(rtol=%v, atol=%v): %w", opAllClose, rtol, atol, ErrInvalidArgument)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameSize(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	ok := true
	rb := b.rows.Slice()
	for i, ra := range a.rows.Slice() {
		ra.Do(func(j int, x T) bool {
			ok = closeTo(float64(x), float64(rb[i].Index(j)), rtol, atol)
			return ok
		})
		if !ok {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}

// closeTo reports |x-y| ≤ atol + rtol*|y|; equal infinities are close,
// NaN is never close.
func closeTo(x, y, rtol, atol float64) bool {
	return x == y || math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
