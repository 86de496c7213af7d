// SPDX-License-Identifier: MIT

// Package matrix - plain-text input and output.
//
// Format:
//   - Output: one line per row, each rendered with the vector rule (elements
//     followed by a single space) and terminated by "\n". No dimension header.
//   - Input: Size() rows of Size() whitespace-separated values, row by row.
//
// Behavior highlights:
//   - Scan is all-or-nothing: rows are read into a staging matrix that replaces
//     m's rows only after every value parsed.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

const _fmtRowClose = "\n"

// Scan reads Size()×Size() whitespace-separated values from r, row by row.
//
// Errors:
//   - ErrInvalidArgument when m or r is nil, or when a value is missing or
//     malformed (the underlying cause stays wrapped). m is unchanged on error.
func (m *Matrix[T]) Scan(r io.Reader) error {
	if m == nil || r == nil {
		return matrixErrorf(ctxScan, ErrInvalidArgument)
	}
	stage := newSquare[T](m.n)
	for i, row := range stage.rows.Slice() {
		if err := row.Scan(r); err != nil {
			return fmt.Errorf("Matrix.%s: row %d: %w", ctxScan, i, err)
		}
	}
	m.swap(stage)
	stage.Release()

	return nil
}

// WriteTo writes the matrix's text form to w and implements io.WriterTo.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// String implements fmt.Stringer with the same text as WriteTo.
func (m *Matrix[T]) String() string {
	if m.Size() == 0 {
		return ""
	}
	var b strings.Builder
	for _, row := range m.rows.Slice() {
		_, _ = row.WriteTo(&b) // strings.Builder never fails
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
