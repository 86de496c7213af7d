// SPDX-License-Identifier: MIT

// Package buffer - exclusively owned, size-tagged backing storage.
//
// Purpose:
//   - Hold the single contiguous element store behind vector.Vector and matrix.Matrix.
//   - Centralize the ownership rules: copy allocates, move hands the store over and
//     empties the source, release drops the store exactly once.
//
// Invariants:
//   - Len() == len(mem) at all times; Len() == 0 ⇔ mem == nil (no buffer held).
//   - Two live Buffers never share a backing array unless a caller aliases one explicitly
//     through Slice.
//
// Complexity quicksheet:
//   - New/Copy/Clone: O(n); Take/Swap/Release/Len: O(1).
package buffer

// Buffer owns a contiguous run of elements. The zero value is an empty buffer.
type Buffer[E any] struct {
	mem []E // nil when empty; len(mem) is the element count
}

// New allocates a buffer of n zero-valued elements.
// n must be >= 0; size limits are enforced by the owning container.
// Complexity: O(n) zeroing by the runtime.
func New[E any](n int) Buffer[E] {
	if n == 0 {
		return Buffer[E]{} // empty: no allocation at all
	}

	return Buffer[E]{mem: make([]E, n)}
}

// Copy allocates a buffer of n elements and copies src[:n] into it.
// Caller guarantees len(src) >= n.
// Complexity: O(n).
func Copy[E any](src []E, n int) Buffer[E] {
	b := New[E](n)
	copy(b.mem, src[:n])

	return b
}

// Len returns the number of owned elements.
func (b *Buffer[E]) Len() int { return len(b.mem) }

// Slice exposes the live storage. Writes through it mutate the buffer.
// Returns nil for an empty buffer.
func (b *Buffer[E]) Slice() []E { return b.mem }

// Clone returns an independent buffer of the same length.
// dup is applied to every element; pass nil for a plain value copy.
// Complexity: O(n) plus the cost of dup.
func (b *Buffer[E]) Clone(dup func(E) E) Buffer[E] {
	out := New[E](len(b.mem))
	if dup == nil {
		copy(out.mem, b.mem)
		return out
	}
	for i := range b.mem {
		out.mem[i] = dup(b.mem[i])
	}

	return out
}

// Take moves the storage out of b and leaves b empty.
// Complexity: O(1); no element is copied.
func (b *Buffer[E]) Take() Buffer[E] {
	out := Buffer[E]{mem: b.mem}
	b.mem = nil

	return out
}

// Swap exchanges the storage of b and o in O(1).
func (b *Buffer[E]) Swap(o *Buffer[E]) {
	b.mem, o.mem = o.mem, b.mem
}

// Release drops the storage. Calling it again is a no-op.
func (b *Buffer[E]) Release() {
	b.mem = nil
}
