// SPDX-License-Identifier: MIT

// Package gonumx - conversions between Vector/Matrix and mat.VecDense/mat.Dense.
//
// Determinism & Policy:
//   - Validate first: kind, nil-ness, shape. Nothing is allocated on failure.
//   - Results never alias the source; both sides keep exclusive ownership.

package gonumx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// Sentinels are shared with vector and matrix so one errors.Is works everywhere.
var (
	ErrInvalidArgument   = vector.ErrInvalidArgument
	ErrDimensionMismatch = vector.ErrDimensionMismatch
	ErrUnsupportedType   = vector.ErrUnsupportedType
)

const (
	opToVecDense = "ToVecDense"
	opFromVector = "FromVector"
	opToDense    = "ToDense"
	opFromMatrix = "FromMatrix"
)

// bridgeErrorf wraps err with a "gonumx.<op>: " prefix for errors.Is.
func bridgeErrorf(op string, err error) error {
	return fmt.Errorf("gonumx.%s: %w", op, err)
}

// ToVecDense copies v into a new *mat.VecDense.
//
// Errors:
//   - ErrUnsupportedType for complex element kinds.
//   - ErrInvalidArgument when v is nil or empty (gonum has no zero-length vector).
//
// Complexity: O(n).
func ToVecDense[T vector.Number](v *vector.Vector[T]) (*mat.VecDense, error) {
	c := classify[T]()
	if c == classUnsupported {
		return nil, bridgeErrorf(opToVecDense, ErrUnsupportedType)
	}
	if v.Len() == 0 {
		return nil, bridgeErrorf(opToVecDense, ErrInvalidArgument)
	}
	data := make([]float64, v.Len())
	v.Do(func(i int, x T) bool {
		data[i] = toFloat64(x, c)
		return true
	})

	return mat.NewVecDense(len(data), data), nil
}

// FromVector copies any gonum vector into a new Vector[T].
//
// Errors:
//   - ErrUnsupportedType for complex element kinds.
//   - ErrInvalidArgument when x is nil or an element is not exactly
//     representable in T; the offending index is reported.
//   - ErrSize when x.Len() exceeds the limit configured by opts.
//
// Complexity: O(n).
func FromVector[T vector.Number](x mat.Vector, opts ...vector.Option) (*vector.Vector[T], error) {
	c := classify[T]()
	if c == classUnsupported {
		return nil, bridgeErrorf(opFromVector, ErrUnsupportedType)
	}
	if x == nil {
		return nil, bridgeErrorf(opFromVector, ErrInvalidArgument)
	}
	out, err := vector.New[T](x.Len(), opts...)
	if err != nil {
		return nil, bridgeErrorf(opFromVector, err)
	}
	for i := 0; i < x.Len(); i++ {
		f := x.AtVec(i)
		e, ok := fromFloat64[T](f, c)
		if !ok {
			return nil, fmt.Errorf("gonumx.%s(%d=%v): %w", opFromVector, i, f, ErrInvalidArgument)
		}
		out.SetIndex(i, e)
	}

	return out, nil
}

// ToDense copies m into a new n×n *mat.Dense, row-major.
//
// Errors:
//   - ErrUnsupportedType for complex element kinds.
//   - ErrInvalidArgument when m is nil or 0×0.
//   - ErrDimensionMismatch when m's rows are ragged.
//
// Complexity: O(n²).
func ToDense[T vector.Number](m *matrix.Matrix[T]) (*mat.Dense, error) {
	c := classify[T]()
	if c == classUnsupported {
		return nil, bridgeErrorf(opToDense, ErrUnsupportedType)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, bridgeErrorf(opToDense, err)
	}
	n := m.Size()
	if n == 0 {
		return nil, bridgeErrorf(opToDense, ErrInvalidArgument)
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		row := data[i*n : (i+1)*n]
		m.Index(i).Do(func(j int, x T) bool {
			row[j] = toFloat64(x, c)
			return true
		})
	}

	return mat.NewDense(n, n, data), nil
}

// FromMatrix copies a square gonum matrix into a new Matrix[T].
//
// Errors:
//   - ErrUnsupportedType for complex element kinds.
//   - ErrInvalidArgument when a is nil or a cell is not exactly representable in T.
//   - ErrDimensionMismatch when a is not square.
//   - ErrSize when the dimension exceeds the limit configured by opts.
//
// Complexity: O(n²).
func FromMatrix[T vector.Number](a mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	c := classify[T]()
	if c == classUnsupported {
		return nil, bridgeErrorf(opFromMatrix, ErrUnsupportedType)
	}
	if a == nil {
		return nil, bridgeErrorf(opFromMatrix, ErrInvalidArgument)
	}
	r, cols := a.Dims()
	if r != cols {
		return nil, fmt.Errorf("gonumx.%s(%dx%d): %w", opFromMatrix, r, cols, ErrDimensionMismatch)
	}
	out, err := matrix.New[T](r, opts...)
	if err != nil {
		return nil, bridgeErrorf(opFromMatrix, err)
	}
	for i := 0; i < r; i++ {
		row := out.Index(i)
		for j := 0; j < r; j++ {
			f := a.At(i, j)
			e, ok := fromFloat64[T](f, c)
			if !ok {
				return nil, fmt.Errorf("gonumx.%s(%d,%d=%v): %w", opFromMatrix, i, j, f, ErrInvalidArgument)
			}
			row.SetIndex(j, e)
		}
	}

	return out, nil
}
