// SPDX-License-Identifier: MIT

// Package vector - plain-text input and output.
//
// Format:
//   - Output: every element rendered with fmt's default verb and followed by a
//     single space, all on one line; no header, no delimiters, no newline.
//   - Input: whitespace-separated values read with fmt.Fscan into a vector that
//     is already sized; exactly Len() values are consumed.
//
// Behavior highlights:
//   - Scan is all-or-nothing: values land in a staging buffer that is swapped in
//     only after every element parsed.

package vector

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dynmat/internal/buffer"
)

// _fmtSep follows every rendered element.
const _fmtSep = ' '

// Scan reads Len() whitespace-separated values from r in index order.
// The reader is consumed value by value; wrap it in a bufio.Reader for speed
// when it is not already buffered.
//
// Errors:
//   - ErrInvalidArgument when v or r is nil, or when a value is missing or does
//     not parse (the fmt/io cause is wrapped too, e.g. io.EOF). v is unchanged on error.
func (v *Vector[T]) Scan(r io.Reader) error {
	if v == nil || r == nil {
		return vectorErrorf(ctxScan, ErrInvalidArgument)
	}
	stage := buffer.New[T](v.Len())
	dst := stage.Slice()
	for i := range dst {
		if _, err := fmt.Fscan(r, &dst[i]); err != nil {
			return fmt.Errorf("Vector.%s(%d): %w: %w", ctxScan, i, ErrInvalidArgument, err)
		}
	}
	v.buf.Swap(&stage)
	stage.Release()

	return nil
}

// WriteTo writes the vector's text form to w and implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.appendText(nil))

	return int64(n), err
}

// appendText appends the text form of v to b and returns the extended slice.
func (v *Vector[T]) appendText(b []byte) []byte {
	for _, x := range v.slice() {
		b = fmt.Append(b, x)
		b = append(b, _fmtSep)
	}

	return b
}

// String implements fmt.Stringer with the same text as WriteTo.
func (v *Vector[T]) String() string {
	return string(v.appendText(nil))
}
