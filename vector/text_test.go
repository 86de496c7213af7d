// SPDX-License-Identifier: MIT
package vector_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynmat/vector"
)

// TestWriteTo checks the one-line, space-terminated output format.
func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := iota5(t).WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "0 1 2 3 4 ", buf.String())
	require.Equal(t, int64(buf.Len()), n)

	require.Equal(t, "1.5 -2 ", mustOf(t, 1.5, -2).String())
	require.Equal(t, "", mustNew[int](t, 0).String())
}

// TestScanFillsInIndexOrder reads into a pre-sized vector.
func TestScanFillsInIndexOrder(t *testing.T) {
	v := mustNew[int](t, 4)
	r := strings.NewReader("  3 1\n4\t1 5 9")

	require.NoError(t, v.Scan(r))
	require.Equal(t, []int{3, 1, 4, 1}, v.Values())

	rest := mustNew[int](t, 2) // the reader continues where the previous scan stopped
	require.NoError(t, rest.Scan(r))
	require.Equal(t, []int{5, 9}, rest.Values())
}

// TestScanRoundTrip writes a float vector and reads it back.
func TestScanRoundTrip(t *testing.T) {
	src := mustOf(t, 0.25, -3.5, 1e-3)
	dst := mustNew[float64](t, src.Len())
	require.NoError(t, dst.Scan(strings.NewReader(src.String())))
	require.True(t, dst.Equal(src))
}

// TestScanFailureIsAtomic checks short and malformed input leave v unchanged.
func TestScanFailureIsAtomic(t *testing.T) {
	v := mustOf(t, 7, 7, 7)

	err := v.Scan(strings.NewReader("1 2"))
	require.ErrorIs(t, err, vector.ErrInvalidArgument)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, []int{7, 7, 7}, v.Values())

	err = v.Scan(strings.NewReader("1 x 3"))
	require.ErrorIs(t, err, vector.ErrInvalidArgument)
	require.Equal(t, []int{7, 7, 7}, v.Values())

	require.ErrorIs(t, v.Scan(nil), vector.ErrInvalidArgument)

	empty := mustNew[int](t, 0)
	require.NoError(t, empty.Scan(strings.NewReader(""))) // nothing to read
}
