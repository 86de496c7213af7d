// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with call-site
// context via %w); callers match them with errors.Is. Package matrix
// re-exports the same values so a single errors.Is check works everywhere.

package vector

import "errors"

var (
	// ErrSize is returned when a requested size is negative or exceeds the
	// configured maximum (MaxVectorSize by default).
	ErrSize = errors.New("vector: size out of bounds")

	// ErrInvalidArgument indicates a nil/absent source or receiver, or a
	// source shorter than the requested element count.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrOutOfRange indicates a checked access outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates a binary operation between operands of
	// different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrUnsupportedType indicates that the element kind lacks a capability
	// required by the operation (e.g. complex values exported to a real-only
	// consumer).
	ErrUnsupportedType = errors.New("vector: unsupported element type")
)
