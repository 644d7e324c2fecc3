// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (nonsensical options, factories that
// return instances of the wrong shape).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(tag, err) and the
// Dense accessors with denseErrorf(method, i, j, err); callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf policy -> dimension mismatch -> numeric
// (singular, decomposition failure) -> data format.

var (
	// ErrBadShape is returned when a supplied block does not cover the region it
	// is meant to fill (SetSubMatrix) or a 2-D slice is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or vector component) is
	// outside valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Plus on different shapes, or a vector whose size differs from the
	// matrix it is multiplied with.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Inverse, Det, conjugation, vector actions).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was rejected by the finite-value
	// policy (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix or vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when an inverse or solve is requested for an
	// exactly singular matrix.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrTokenCount is returned when a token string holds a number of values
	// different from the element count of the target.
	ErrTokenCount = errors.New("matrix: wrong number of tokens")

	// ErrParse is returned when a token cannot be parsed as a float64.
	ErrParse = errors.New("matrix: unparsable token")

	// ErrDataFormat marks malformed data found while loading from a DataAdaptor.
	// It is always joined with the underlying cause (ErrTokenCount, ErrParse, ...).
	ErrDataFormat = errors.New("matrix: malformed archive data")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")

	// ErrEigenFailed indicates that the Jacobi eigenvalue iteration failed to
	// converge under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrAsymmetry signals that a symmetric matrix was required but the input wasn't.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)
