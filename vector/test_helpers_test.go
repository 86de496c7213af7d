// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for construction, ownership and arithmetic tests.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynmat/vector"
)

// mustOf builds a vector from literal values or fails the test.
func mustOf[T vector.Number](t testing.TB, values ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.Of(values...)
	if err != nil {
		t.Fatalf("Of(%v): %v", values, err)
	}

	return v
}

// mustNew allocates a zero vector of length n or fails the test.
func mustNew[T vector.Number](t testing.TB, n int) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return v
}

// iota5 returns [0,1,2,3,4], the reference vector used by identity checks.
func iota5(t testing.TB) *vector.Vector[int] {
	t.Helper()

	return mustOf(t, 0, 1, 2, 3, 4)
}
