// Package vector provides Vector[T], a generic dynamic-size numeric vector
// with explicit value semantics.
//
// What & Why:
//
//	A Vector owns one contiguous buffer of exactly Len() elements. Copies are
//	always deep (Clone, Assign), ownership can be handed over explicitly (Move,
//	MoveFrom) and the source is then left empty. Arithmetic never mutates its
//	operands and validates shapes before touching any element, so a failing
//	call has no observable effect.
//
// Access:
//
//	At/Set are bounds-checked and return ErrOutOfRange. Index/SetIndex/Ref skip
//	validation for pre-validated hot paths (the Go runtime still panics on a
//	truly out-of-range slice index).
//
// Element kinds:
//
//	T is any integer, float or complex kind (see Number). Every such kind has
//	+, -, *, == and a zero value, so the dot-product accumulator seed is a
//	compile-time guarantee rather than a runtime check.
//
// Complexity:
//
//	New/FromSlice/Clone/arithmetic: O(n). Move/MoveFrom/Swap/Release/At/Set: O(1).
package vector
