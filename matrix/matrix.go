// SPDX-License-Identifier: MIT

// Package matrix defines the core interfaces of the linear-algebra layer.
//
// What & Why:
//
//	Matrix is the uniform abstraction over two-dimensional mutable arrays of
//	float64 values; every kernel in this package accepts it and fast-paths
//	*Dense. MatrixKind and VectorKind are the sealed constraints of the generic
//	base types: only types built on BaseMatrix / BaseVector satisfy them, which
//	is what lets a base operation allocate and return the caller's own concrete
//	type (PhaseMatrix.Plus returns *PhaseMatrix).
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the finite policy.
	// Complexity: O(1).
	Set(i, j int, v float64) error
}

// MatrixKind is satisfied by every matrix type built on BaseMatrix or
// SquareMatrix. The unexported accessor seals the set: the generic base reaches
// the storage of any M through it.
type MatrixKind interface {
	Matrix
	dense() *Dense
}

// VectorKind is satisfied by every vector type built on BaseVector.
type VectorKind interface {
	// Size returns the number of components.
	Size() int

	// At returns component i or ErrOutOfRange.
	At(i int) (float64, error)

	// Set assigns component i; ErrOutOfRange / ErrNaNInf on violation.
	Set(i int, v float64) error

	column() *Dense
}

// VectorSelf is a VectorKind whose Copy returns its own concrete type.
// The package-level generic operations (MulVec, Solve) use it to hand back a
// result of the caller's vector type.
type VectorSelf[V any] interface {
	VectorKind
	Copy() V
}
