// SPDX-License-Identifier: MIT

// Package vector - Vector[T] storage, construction and ownership.
//
// Purpose:
//   - Own exactly one contiguous buffer per instance (internal/buffer).
//   - Provide the full value-semantics surface: New/FromSlice (construct),
//     Clone/Assign (deep copy), Move/MoveFrom (ownership transfer), Swap, Release.
//
// Invariants:
//   - Len() equals the live buffer length; Len()==0 means no buffer is held.
//   - Distinct instances never alias storage; Move is the only hand-off and it
//     leaves the source empty.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Assign: O(n); Move/MoveFrom/Swap/Release/Len: O(1).

package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dynmat/internal/buffer"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAssign    = "Assign"
	ctxMoveFrom  = "MoveFrom"
	ctxSwap      = "Swap"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxScan      = "Scan"
)

// vectorErrorf wraps err with a uniform "Vector.<method>: " prefix.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Number is the set of element kinds a Vector can hold: every kind here
// supports +, -, *, == and has a zero value usable as an additive identity.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Vector is a dynamic-size vector that exclusively owns its elements.
// The zero value is an empty vector ready to use.
type Vector[T Number] struct {
	buf buffer.Buffer[T] // owned storage; empty ⇔ no buffer
}

// New returns a vector of size zero-valued elements.
// MAIN DESCRIPTION:
//   - Strict size validation, then a single allocation (none for size 0).
//
// Errors:
//   - ErrSize when size < 0 or size exceeds the limit (MaxVectorSize unless WithMaxLen).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateSize(size, o.maxLen); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d): %w", ctxNew, size, err)
	}

	return &Vector[T]{buf: buffer.New[T](size)}, nil
}

// FromSlice returns a vector holding a copy of src[:size].
// MAIN DESCRIPTION:
//   - Copy-construct from a raw array; later writes to src are not observed.
//
// Errors:
//   - ErrInvalidArgument when src is nil or shorter than size.
//   - ErrSize on the same bounds as New.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice[T Number](src []T, size int, opts ...Option) (*Vector[T], error) {
	if src == nil {
		return nil, vectorErrorf(ctxFromSlice, ErrInvalidArgument)
	}
	o := gatherOptions(opts...)
	if err := validateSize(size, o.maxLen); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d): %w", ctxFromSlice, size, err)
	}
	if len(src) < size {
		return nil, fmt.Errorf("Vector.%s(%d): source holds %d elements: %w",
			ctxFromSlice, size, len(src), ErrInvalidArgument)
	}

	return &Vector[T]{buf: buffer.Copy(src, size)}, nil
}

// Clone returns a deep copy. A nil receiver clones to an empty vector.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return &Vector[T]{}
	}

	return &Vector[T]{buf: v.buf.Clone(nil)}
}

// Move hands src's buffer to a new vector without copying elements.
// src is left empty (Len()==0, no buffer). A nil src yields an empty vector.
// Complexity: O(1).
func Move[T Number](src *Vector[T]) *Vector[T] {
	if src == nil {
		return &Vector[T]{}
	}

	return &Vector[T]{buf: src.buf.Take()}
}

// Assign replaces v's contents with a deep copy of src (copy-and-swap).
// The copy is built completely before it is swapped in, so v is never left
// half-written and v.Assign(v) leaves v unchanged.
//
// Errors:
//   - ErrInvalidArgument when v or src is nil.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == nil || src == nil {
		return vectorErrorf(ctxAssign, ErrInvalidArgument)
	}
	tmp := src.buf.Clone(nil) // may be src's own storage when v == src; still a fresh copy
	v.buf.Swap(&tmp)
	tmp.Release() // previous storage of v

	return nil
}

// MoveFrom transfers src's buffer into v and empties src.
// v's previous buffer is released exactly once. Self-move is a no-op.
//
// Errors:
//   - ErrInvalidArgument when v or src is nil.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if v == nil || src == nil {
		return vectorErrorf(ctxMoveFrom, ErrInvalidArgument)
	}
	if v == src {
		return nil
	}
	taken := src.buf.Take()
	v.buf.Release()
	v.buf = taken

	return nil
}

// Swap exchanges the contents of v and other in O(1); no element is copied.
//
// Errors:
//   - ErrInvalidArgument when v or other is nil.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if v == nil || other == nil {
		return vectorErrorf(ctxSwap, ErrInvalidArgument)
	}
	v.buf.Swap(&other.buf)

	return nil
}

// Release drops the owned buffer and leaves v empty. Idempotent; nil-safe.
func (v *Vector[T]) Release() {
	if v == nil {
		return
	}
	v.buf.Release()
}

// Len returns the element count. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return v.buf.Len()
}

// Values returns a copy of the elements (nil for an empty vector).
func (v *Vector[T]) Values() []T {
	if v.Len() == 0 {
		return nil
	}
	out := make([]T, v.Len())
	copy(out, v.buf.Slice())

	return out
}
