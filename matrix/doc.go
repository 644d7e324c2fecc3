// Package matrix offers the dense real linear-algebra layer of xalmath.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with strict index checking and an
//     optional finite-value policy (WithValidateNaNInf).
//   - Canonical kernels over the Matrix interface (Add, Sub, Mul, Transpose,
//     Scale, Hadamard, MatVec) and decompositions (LU, Det, Inverse,
//     SolveSlice, SingularValues, Cond, EigenSym). Inverse, solve and SVD run
//     on gonum's LAPACK-backed mat package.
//   - BaseMatrix, SquareMatrix and BaseVector: generic bases that a concrete
//     type embeds to inherit the whole algebra while every result keeps the
//     concrete type (PhaseMatrix.Plus returns *PhaseMatrix).
//   - RealMatrix, RealSquareMatrix and RealVector for arbitrary sizes.
//   - A token string format ("{ { 1 2 }{ 3 4 } }") with Save/Load through a
//     DataAdaptor.
//
// Errors are package sentinels matched with errors.Is; user-triggered
// conditions never panic.
//
// See the examples in this package, beam and r3 for usage patterns.
package matrix
