// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The matrix package shares its sentinels with package vector: every value
// below IS the vector sentinel, so errors.Is(err, matrix.ErrX) and
// errors.Is(err, vector.ErrX) are interchangeable. Call sites wrap with
// "Matrix.<method>..." context via %w.

package matrix

import "github.com/katalvlaran/dynmat/vector"

var (
	// ErrSize is returned when a requested dimension is negative or exceeds the
	// configured maximum (MaxMatrixSize by default).
	ErrSize = vector.ErrSize

	// ErrInvalidArgument indicates a nil receiver/argument or unreadable input.
	ErrInvalidArgument = vector.ErrInvalidArgument

	// ErrOutOfRange indicates a checked access with i or j outside [0, Size()).
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrDimensionMismatch indicates incompatible operand shapes, or a matrix
	// whose rows were resized out of square shape.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrUnsupportedType indicates an element kind a consumer cannot represent.
	ErrUnsupportedType = vector.ErrUnsupportedType
)
