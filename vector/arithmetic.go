// SPDX-License-Identifier: MIT
// Package vector: scalar and vector arithmetic kernels.
//
// Purpose:
//   - Elementwise scalar ops (AddScalar/SubScalar/MulScalar), vector ops (Add/Sub) and Dot.
//   - Every kernel allocates a fresh result; operands are never mutated.
//
// Determinism & Policy:
//   - Fixed index order 0..n-1 in every loop (Dot accumulates left to right).
//   - Shapes are validated before any element is read; a failing call returns
//     no partial result.

package vector

import (
	"fmt"

	"github.com/katalvlaran/dynmat/internal/buffer"
)

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opDot = "Dot"
)

// opErrorf wraps err with an operation tag and both operand lengths.
func opErrorf(tag string, a, b int, err error) error {
	return fmt.Errorf("Vector.%s(%d,%d): %w", tag, a, b, err)
}

// AddScalar returns a new vector with out[i] = v[i] + x.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	return v.mapScalar(func(e T) T { return e + x })
}

// SubScalar returns a new vector with out[i] = v[i] - x.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	return v.mapScalar(func(e T) T { return e - x })
}

// MulScalar returns a new vector with out[i] = v[i] * x.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	return v.mapScalar(func(e T) T { return e * x })
}

// mapScalar allocates a same-length result and fills it with f(v[i]).
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	src := v.slice()
	res := &Vector[T]{buf: buffer.New[T](len(src))}
	dst := res.buf.Slice()
	for i := range src {
		dst[i] = f(src[i])
	}

	return res
}

// Add computes the elementwise sum out = v + other.
// Implementation:
//   - Stage 1: validate both operands are present and of equal length.
//   - Stage 2: single flat loop 0..n-1 into a fresh result.
//
// Errors:
//   - ErrDimensionMismatch (length mismatch), ErrInvalidArgument (nil operand).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return v.combine(other, opAdd, func(a, b T) T { return a + b })
}

// Sub computes the elementwise difference out = v - other.
// Errors and complexity match Add.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return v.combine(other, opSub, func(a, b T) T { return a - b })
}

// combine is the shared kernel behind Add/Sub.
func (v *Vector[T]) combine(other *Vector[T], tag string, f func(a, b T) T) (*Vector[T], error) {
	if err := validateSameLen(v, other); err != nil {
		return nil, opErrorf(tag, v.Len(), other.Len(), err)
	}
	a, b := v.slice(), other.slice()
	res := &Vector[T]{buf: buffer.New[T](len(a))}
	dst := res.buf.Slice()
	for i := range a { // deterministic 0..n-1
		dst[i] = f(a[i], b[i])
	}

	return res, nil
}

// Dot returns Σ v[i]*other[i], accumulated from the zero value of T in
// index order 0..n-1. Two empty vectors have dot product 0.
//
// Errors:
//   - ErrDimensionMismatch (length mismatch), ErrInvalidArgument (nil operand).
//
// Determinism:
//   - Left-to-right accumulation; identical inputs give bit-identical float results.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var acc T // additive identity for every Number kind
	if err := validateSameLen(v, other); err != nil {
		return acc, opErrorf(opDot, v.Len(), other.Len(), err)
	}
	a, b := v.slice(), other.slice()
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}
