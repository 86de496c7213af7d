// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage, construction and ownership.
//
// Purpose:
//   - Hold n owned row vectors in one outer buffer (internal/buffer), composed
//     rather than inherited, so only matrix-level operations are exposed.
//   - Provide value semantics recursively: Clone/Assign copy every row and every
//     element; Move/MoveFrom hand the row set over and empty the source.
//
// Invariants:
//   - rows.Len() == n and every row has Len() == n.
//   - The zero Matrix is the legal 0×0 matrix.
//
// Complexity quicksheet:
//   - New/NewFilled/Clone/Assign: O(n²); Move/MoveFrom/Swap/Release/Size: O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynmat/internal/buffer"
	"github.com/katalvlaran/dynmat/vector"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAssign   = "Assign"
	ctxMoveFrom = "MoveFrom"
	ctxSwap     = "Swap"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxScan     = "Scan"
)

// matrixErrorf wraps err with a "Matrix.<tag>: " prefix, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// Matrix is a square matrix that exclusively owns its rows.
type Matrix[T vector.Number] struct {
	n    int                              // dimension; equals rows.Len()
	rows buffer.Buffer[*vector.Vector[T]] // row i is rows.Slice()[i]
}

// New returns an n×n matrix of zero-valued elements.
// MAIN DESCRIPTION:
//   - Strict dimension validation, then n row allocations of length n.
//
// Errors:
//   - ErrSize when n < 0 or n exceeds the limit (MaxMatrixSize unless WithMaxDim).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T vector.Number](n int, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if err := validateDim(n, o.maxDim); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxNew, n, err)
	}

	return newSquare[T](n), nil
}

// NewFilled returns an n×n matrix with every cell set to fill.
// Errors and complexity match New.
func NewFilled[T vector.Number](n int, fill T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for _, r := range m.rows.Slice() {
		r.Apply(func(int, T) T { return fill })
	}

	return m, nil
}

// newSquare allocates an n×n zero matrix without limit checks.
// Used for results whose dimension is inherited from validated operands.
func newSquare[T vector.Number](n int) *Matrix[T] {
	m := &Matrix[T]{n: n, rows: buffer.New[*vector.Vector[T]](n)}
	rows := m.rows.Slice()
	for i := range rows {
		rows[i] = mustRow[T](n)
	}

	return m
}

// mustRow allocates a zero row of length n under a limit of n.
// Panics only if n < 0, which callers rule out by validating first.
func mustRow[T vector.Number](n int) *vector.Vector[T] {
	r, err := vector.New[T](n, vector.WithMaxLen(n))
	if err != nil {
		panic(fmt.Sprintf("matrix: row of length %d: %v", n, err))
	}

	return r
}

// newFromRows wraps already built rows. Caller guarantees square shape.
func newFromRows[T vector.Number](rows []*vector.Vector[T]) *Matrix[T] {
	return &Matrix[T]{n: len(rows), rows: buffer.Copy(rows, len(rows))}
}

// Size returns the dimension n. A nil matrix has size 0.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Clone returns a deep copy: a fresh row table with every row cloned.
// A nil receiver clones to the empty matrix.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return &Matrix[T]{}
	}

	return &Matrix[T]{n: m.n, rows: m.rows.Clone((*vector.Vector[T]).Clone)}
}

// Move hands src's rows to a new matrix without copying. src is left as the
// empty 0×0 matrix. A nil src yields an empty matrix.
// Complexity: O(1).
func Move[T vector.Number](src *Matrix[T]) *Matrix[T] {
	if src == nil {
		return &Matrix[T]{}
	}
	out := &Matrix[T]{n: src.n, rows: src.rows.Take()}
	src.n = 0

	return out
}

// Assign replaces m's contents with a deep copy of src (copy-and-swap).
// m.Assign(m) leaves m unchanged.
//
// Errors:
//   - ErrInvalidArgument when m or src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxAssign, ErrInvalidArgument)
	}
	tmp := src.Clone()
	m.swap(tmp)
	tmp.Release() // previous contents of m

	return nil
}

// MoveFrom transfers src's rows into m and empties src. Self-move is a no-op.
//
// Errors:
//   - ErrInvalidArgument when m or src is nil.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxMoveFrom, ErrInvalidArgument)
	}
	if m == src {
		return nil
	}
	taken := Move(src)
	m.Release()
	m.swap(taken)

	return nil
}

// Swap exchanges the contents of m and other in O(1).
//
// Errors:
//   - ErrInvalidArgument when m or other is nil.
func (m *Matrix[T]) Swap(other *Matrix[T]) error {
	if m == nil || other == nil {
		return matrixErrorf(ctxSwap, ErrInvalidArgument)
	}
	m.swap(other)

	return nil
}

func (m *Matrix[T]) swap(other *Matrix[T]) {
	m.n, other.n = other.n, m.n
	m.rows.Swap(&other.rows)
}

// Release drops every row and leaves m as the empty matrix. Idempotent; nil-safe.
func (m *Matrix[T]) Release() {
	if m == nil {
		return
	}
	m.rows.Release()
	m.n = 0
}

// ToRows returns a copy of the cells as a [][]T (nil for an empty matrix).
func (m *Matrix[T]) ToRows() [][]T {
	if m.Size() == 0 {
		return nil
	}
	out := make([][]T, m.n)
	for i, r := range m.rows.Slice() {
		out[i] = r.Values()
	}

	return out
}
