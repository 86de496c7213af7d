// Package dynmat is a small library of generic, dynamically sized numeric
// vectors and square matrices with explicit value semantics.
//
// What is dynmat?
//
//	A pure-Go toolkit that brings together:
//		• Vectors: Vector[T] over any integer, float or complex kind
//		• Square matrices: Matrix[T], an owned table of row vectors
//		• Arithmetic: scalar ops, add/sub, dot, matrix·vector, matrix·matrix
//		• Text I/O: whitespace-separated read/write via fmt
//		• gonum interop: copy to and from mat.VecDense / mat.Dense
//
// Why dynmat?
//
//   - Deep copies by default; ownership transfer (Move) is explicit and empties the source
//   - Fail fast: every operation validates shapes first and never leaves partial results
//   - Checked (At/Set) and unchecked (Index/SetIndex) access side by side
//   - Deterministic kernels: fixed loop orders, no zero-skipping, reproducible floats
//
// Packages:
//
//	vector/           — Vector[T], the Number constraint, sentinel errors, options
//	matrix/           — Matrix[T] built on vector, shape validators, facades
//	gonumx/           — bridge to gonum.org/v1/gonum/mat for real element kinds
//	internal/buffer/  — the owned contiguous buffer both types are built on
//	examples/         — runnable power-iteration program
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	v, _ := vector.Of(1, 2)
//	y, _ := m.MulVec(v) // [5 11]
//
// Concurrency:
//
//	Values are not safe for concurrent mutation; synchronize externally.
package dynmat
