// Package gonumx bridges dynmat values and gonum's dense linear-algebra types.
//
// What & Why:
//
//	dynmat keeps its own owned storage; gonum.org/v1/gonum/mat offers the
//	factorizations and solvers dynmat deliberately does not. The bridge copies
//	in both directions, so neither side ever aliases the other's memory.
//
// Element kinds:
//
//	gonum is float64-only. Integer and float kinds (including named types over
//	them) convert element-wise; complex kinds yield ErrUnsupportedType. Going
//	back, a float64 that the target kind cannot hold exactly (fraction into an
//	integer kind, out-of-range magnitude, NaN into an integer) yields
//	ErrInvalidArgument.
//
// Shapes:
//
//	gonum rejects zero-length vectors and 0×0 matrices by panicking; the bridge
//	reports ErrInvalidArgument instead. Non-square gonum matrices yield
//	ErrDimensionMismatch.
//
// Complexity:
//
//	Every conversion is O(n) for vectors and O(n²) for matrices, one allocation.
package gonumx
