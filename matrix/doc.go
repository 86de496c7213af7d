// Package matrix provides Matrix[T], a generic dynamic-size square matrix
// composed of owned row vectors.
//
// What & Why:
//
//	A Matrix of dimension n owns an outer buffer of n vector.Vector[T] rows,
//	each of length n. The matrix holds its rows by composition and exposes only
//	matrix-level operations: checked cell access (At/Set), unchecked row access
//	(Index), equality, scalar scaling, matrix·vector, addition, subtraction and
//	matrix·matrix products. Copies are deep down to every element; Move hands
//	the whole row set over and empties the source.
//
// Determinism:
//
//	Mul accumulates res[i][j] += a[i][k]*b[k][j] with loops fixed in i → k → j
//	order (k ascending for every cell), so floating-point results are
//	reproducible bit for bit.
//
// Errors:
//
//	The sentinels are the vector package's own values re-exported here, so one
//	errors.Is check matches failures from either package.
//
// Complexity:
//
//	New/Clone/Scale/Add/Sub/MulVec: O(n²). Mul: O(n³). Move/Swap/At/Set: O(1).
package matrix
