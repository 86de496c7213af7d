// SPDX-License-Identifier: MIT
package gonumx_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dynmat/gonumx"
	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

const tol = 1e-12

// randomMatrix BUILDS an n×n matrix of deterministic U(-1,1) values.
func randomMatrix(t testing.TB, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		m.Index(i).Apply(func(int, float64) float64 { return rng.Float64()*2 - 1 })
	}

	return m
}

// TestMulMatchesGonum uses mat.Dense.Mul as an oracle for Matrix.Mul.
func TestMulMatchesGonum(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16} {
		a, b := randomMatrix(t, n, int64(n)), randomMatrix(t, n, int64(100+n))

		got, err := a.Mul(b)
		require.NoError(t, err)

		da, err := gonumx.ToDense(a)
		require.NoError(t, err)
		db, err := gonumx.ToDense(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(da, db)

		dg, err := gonumx.ToDense(got)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(dg, &want, tol), "n=%d\n got=%v\nwant=%v",
			n, mat.Formatted(dg), mat.Formatted(&want))
	}
}

// TestMulVecMatchesGonum uses mat.VecDense.MulVec as an oracle for Matrix.MulVec.
func TestMulVecMatchesGonum(t *testing.T) {
	const n = 9
	a := randomMatrix(t, n, 7)
	x := a.Index(3).Clone()

	got, err := a.MulVec(x)
	require.NoError(t, err)

	da, err := gonumx.ToDense(a)
	require.NoError(t, err)
	dx, err := gonumx.ToVecDense(x)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(da, dx)

	require.True(t, floats.EqualApprox(got.Values(), want.RawVector().Data, tol))
}

// TestRoundTripInt checks exact integer conversion both ways.
func TestRoundTripInt(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, -2}, {3, 4}})
	require.NoError(t, err)

	d, err := gonumx.ToDense(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2, 3, 4}, d.RawMatrix().Data)

	back, err := gonumx.FromMatrix[int](d)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	d.Set(0, 0, 100) // no aliasing in either direction
	require.Equal(t, 1, back.Index(0).Index(0))
	require.Equal(t, 1, m.Index(0).Index(0))

	v, err := vector.Of[uint8](0, 7, 255)
	require.NoError(t, err)
	dv, err := gonumx.ToVecDense(v)
	require.NoError(t, err)
	vb, err := gonumx.FromVector[uint8](dv)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 7, 255}, vb.Values())
}

// celsius is a named float kind; it converts like float64.
type celsius float64

func TestNamedKind(t *testing.T) {
	v, err := vector.Of[celsius](-40, 36.6)
	require.NoError(t, err)

	dv, err := gonumx.ToVecDense(v)
	require.NoError(t, err)
	require.Equal(t, []float64{-40, 36.6}, dv.RawVector().Data)

	back, err := gonumx.FromVector[celsius](dv)
	require.NoError(t, err)
	require.True(t, back.Equal(v))
}

// TestUnsupportedComplex checks every entry point rejects complex kinds.
func TestUnsupportedComplex(t *testing.T) {
	v, err := vector.Of(1 + 2i)
	require.NoError(t, err)
	_, err = gonumx.ToVecDense(v)
	require.ErrorIs(t, err, gonumx.ErrUnsupportedType)

	m, err := matrix.NewIdentity[complex64](2)
	require.NoError(t, err)
	_, err = gonumx.ToDense(m)
	require.ErrorIs(t, err, vector.ErrUnsupportedType)

	_, err = gonumx.FromVector[complex128](mat.NewVecDense(1, nil))
	require.ErrorIs(t, err, gonumx.ErrUnsupportedType)
	_, err = gonumx.FromMatrix[complex128](mat.NewDense(1, 1, nil))
	require.ErrorIs(t, err, matrix.ErrUnsupportedType)
}

// TestShapeErrors covers empty, nil, ragged and non-square operands.
func TestShapeErrors(t *testing.T) {
	empty, err := vector.New[float64](0)
	require.NoError(t, err)
	_, err = gonumx.ToVecDense(empty)
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)
	_, err = gonumx.ToVecDense[float64](nil)
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)

	zero, err := matrix.New[float64](0)
	require.NoError(t, err)
	_, err = gonumx.ToDense(zero)
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)
	_, err = gonumx.ToDense[float64](nil)
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)

	ragged, err := matrix.New[float64](2)
	require.NoError(t, err)
	require.NoError(t, ragged.Index(1).Assign(empty))
	_, err = gonumx.ToDense(ragged)
	require.ErrorIs(t, err, gonumx.ErrDimensionMismatch)

	_, err = gonumx.FromMatrix[float64](mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, gonumx.ErrDimensionMismatch)
	_, err = gonumx.FromMatrix[float64](nil)
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)
	_, err = gonumx.FromVector[float64](nil)
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)
}

// TestInexactValuesRejected checks narrowing never truncates silently.
func TestInexactValuesRejected(t *testing.T) {
	cases := []struct {
		name string
		data []float64
		conv func(mat.Vector) error
	}{
		{"fraction into int", []float64{1, 2.5}, func(x mat.Vector) error { _, err := gonumx.FromVector[int](x); return err }},
		{"NaN into int", []float64{math.NaN()}, func(x mat.Vector) error { _, err := gonumx.FromVector[int64](x); return err }},
		{"Inf into int", []float64{math.Inf(1)}, func(x mat.Vector) error { _, err := gonumx.FromVector[int](x); return err }},
		{"overflow int8", []float64{128}, func(x mat.Vector) error { _, err := gonumx.FromVector[int8](x); return err }},
		{"negative into uint", []float64{-1}, func(x mat.Vector) error { _, err := gonumx.FromVector[uint](x); return err }},
		{"overflow uint8", []float64{300}, func(x mat.Vector) error { _, err := gonumx.FromVector[uint8](x); return err }},
		{"overflow float32", []float64{math.MaxFloat64}, func(x mat.Vector) error { _, err := gonumx.FromVector[float32](x); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.conv(mat.NewVecDense(len(tc.data), tc.data))
			require.ErrorIs(t, err, gonumx.ErrInvalidArgument)
		})
	}

	_, err := gonumx.FromMatrix[int](mat.NewDense(2, 2, []float64{1, 2, 3, 0.5}))
	require.ErrorIs(t, err, gonumx.ErrInvalidArgument)

	// Boundary values that fit exactly are accepted.
	v, err := gonumx.FromVector[int8](mat.NewVecDense(2, []float64{-128, 127}))
	require.NoError(t, err)
	require.Equal(t, []int8{-128, 127}, v.Values())
}

// TestFromMatrixHonorsLimit checks the dimension limit is applied.
func TestFromMatrixHonorsLimit(t *testing.T) {
	_, err := gonumx.FromMatrix[float64](mat.NewDense(3, 3, nil), matrix.WithMaxDim(2))
	require.ErrorIs(t, err, matrix.ErrSize)

	_, err = gonumx.FromVector[float64](mat.NewVecDense(3, nil), vector.WithMaxLen(2))
	require.ErrorIs(t, err, vector.ErrSize)
}
