// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep all data exact (integers, dyadic floats) so equality checks are exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// mustRows BUILDS a matrix from literal rows or fails the test.
func mustRows[T vector.Number](t testing.TB, rows ...[]T) *matrix.Matrix[T] {
	t.Helper()
	if rows == nil {
		rows = [][]T{}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// mustNew ALLOCATES an n×n zero matrix or fails the test.
func mustNew[T vector.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// mustIdentity RETURNS I_n or fails the test.
func mustIdentity[T vector.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// mustVec BUILDS a vector from literal values or fails the test.
func mustVec[T vector.Number](t testing.TB, values ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.Of(values...)
	if err != nil {
		t.Fatalf("vector.Of(%v): %v", values, err)
	}

	return v
}

// sumPlusI returns the 5×5 matrix with m[i][j] = i + j.
func sumPlusI(t testing.TB) *matrix.Matrix[int] {
	t.Helper()
	m := mustNew[int](t, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			m.Index(i).SetIndex(j, i+j)
		}
	}

	return m
}

// randomFill FILLS m with deterministic U(-1,1) values by seed.
func randomFill(m *matrix.Matrix[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Size(); i++ {
		m.Index(i).Apply(func(int, float64) float64 { return rng.Float64()*2 - 1 })
	}
}
