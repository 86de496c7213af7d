// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/matrix"
)

// TestWriteTo checks one line per row using the vector rule.
func TestWriteTo(t *testing.T) {
	m := mustRows(t, []int{1, 2}, []int{3, 4})

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "1 2 \n3 4 \n", buf.String())
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, buf.String(), m.String())

	require.Equal(t, "", mustNew[int](t, 0).String())
}

// TestScanRoundTrip writes a matrix and reads it back.
func TestScanRoundTrip(t *testing.T) {
	src := mustRows(t, []float64{0.5, -1}, []float64{2, 1e-3})
	dst := mustNew[float64](t, 2)

	require.NoError(t, dst.Scan(strings.NewReader(src.String())))
	require.True(t, dst.Equal(src))
}

// TestScanFailureIsAtomic checks short input leaves m unchanged.
func TestScanFailureIsAtomic(t *testing.T) {
	m := mustRows(t, []int{1, 2}, []int{3, 4})

	err := m.Scan(strings.NewReader("9 9 9"))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())

	require.ErrorIs(t, m.Scan(nil), matrix.ErrInvalidArgument)

	require.NoError(t, m.Scan(strings.NewReader("5 6\n7 8\n")))
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, m.ToRows())
}
