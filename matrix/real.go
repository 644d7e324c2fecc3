// SPDX-License-Identifier: MIT

// Package matrix - general-purpose concrete types.
//
//   - RealMatrix:       any r×c real matrix.
//   - RealSquareMatrix: any n×n real matrix.
//   - RealVector:       any real column vector.
//
// Each is a one-line embedding of the generic base plus a factory; domain
// packages (beam, r3) build their fixed-size types the same way.

package matrix

import "fmt"

// RealMatrix is a general r×c real matrix.
type RealMatrix struct {
	BaseMatrix[*RealMatrix]
}

// RealSquareMatrix is a general n×n real matrix.
type RealSquareMatrix struct {
	SquareMatrix[*RealSquareMatrix]
}

// RealVector is a general real column vector.
type RealVector struct {
	BaseVector[*RealVector]
}

// Compile-time conformance.
var (
	_ MatrixKind              = (*RealMatrix)(nil)
	_ MatrixKind              = (*RealSquareMatrix)(nil)
	_ VectorSelf[*RealVector] = (*RealVector)(nil)
	_ fmt.Stringer            = (*RealMatrix)(nil)
	_ fmt.Stringer            = (*RealVector)(nil)
)

func newRealMatrix(rows, cols int, o Options) *RealMatrix {
	m := &RealMatrix{}
	m.store = allocDense(rows, cols, o.validateNaNInf)
	m.alloc = func(r, c int) *RealMatrix { return newRealMatrix(r, c, o) }

	return m
}

func newRealSquareMatrix(size int, o Options) *RealSquareMatrix {
	m := &RealSquareMatrix{}
	m.store = allocDense(size, size, o.validateNaNInf)
	m.alloc = func(r, _ int) *RealSquareMatrix { return newRealSquareMatrix(r, o) }

	return m
}

func newRealVector(size int, o Options) *RealVector {
	v := &RealVector{}
	v.store = allocDense(size, 1, o.validateNaNInf)
	v.alloc = func(n int) *RealVector { return newRealVector(n, o) }

	return v
}

// NewRealMatrix returns a zero rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions for non-positive dimensions.
func NewRealMatrix(rows, cols int, opts ...Option) (*RealMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewRealMatrix", ErrInvalidDimensions)
	}

	return newRealMatrix(rows, cols, gatherOptions(opts...)), nil
}

// NewRealMatrixFrom copies a rectangular 2-D slice.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrBadShape (ragged), ErrNaNInf (policy).
func NewRealMatrixFrom(vals [][]float64, opts ...Option) (*RealMatrix, error) {
	d, err := NewDenseFromRows(vals, opts...)
	if err != nil {
		return nil, matrixErrorf("NewRealMatrixFrom", err)
	}
	m := newRealMatrix(d.r, d.c, gatherOptions(opts...))
	m.store = d

	return m, nil
}

// ParseRealMatrix reads a rows×cols matrix from a token string.
//
// Errors:
//   - ErrInvalidDimensions, ErrTokenCount, ErrParse, ErrNaNInf (policy).
func ParseRealMatrix(rows, cols int, s string, opts ...Option) (*RealMatrix, error) {
	m, err := NewRealMatrix(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetMatrixString(s); err != nil {
		return nil, err
	}

	return m, nil
}

// NewRealSquareMatrix returns a zero size×size matrix.
//
// Errors:
//   - ErrInvalidDimensions for size <= 0.
func NewRealSquareMatrix(size int, opts ...Option) (*RealSquareMatrix, error) {
	if size <= 0 {
		return nil, matrixErrorf("NewRealSquareMatrix", ErrInvalidDimensions)
	}

	return newRealSquareMatrix(size, gatherOptions(opts...)), nil
}

// NewRealSquareMatrixFrom copies a square 2-D slice.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (ragged), ErrNonSquare, ErrNaNInf (policy).
func NewRealSquareMatrixFrom(vals [][]float64, opts ...Option) (*RealSquareMatrix, error) {
	d, err := NewDenseFromRows(vals, opts...)
	if err != nil {
		return nil, matrixErrorf("NewRealSquareMatrixFrom", err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf("NewRealSquareMatrixFrom", err)
	}
	m := newRealSquareMatrix(d.r, gatherOptions(opts...))
	m.store = d

	return m, nil
}

// ParseRealSquareMatrix reads a size×size matrix from a token string.
//
// Errors:
//   - ErrInvalidDimensions, ErrTokenCount, ErrParse, ErrNaNInf (policy).
func ParseRealSquareMatrix(size int, s string, opts ...Option) (*RealSquareMatrix, error) {
	m, err := NewRealSquareMatrix(size, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetMatrixString(s); err != nil {
		return nil, err
	}

	return m, nil
}

// IdentityRealSquareMatrix returns the size×size identity.
//
// Errors:
//   - ErrInvalidDimensions for size <= 0.
func IdentityRealSquareMatrix(size int, opts ...Option) (*RealSquareMatrix, error) {
	m, err := NewRealSquareMatrix(size, opts...)
	if err != nil {
		return nil, err
	}
	m.AssignIdentity()

	return m, nil
}

// NewRealVector returns a zero vector of the given size.
//
// Errors:
//   - ErrInvalidDimensions for size <= 0.
func NewRealVector(size int, opts ...Option) (*RealVector, error) {
	if size <= 0 {
		return nil, matrixErrorf("NewRealVector", ErrInvalidDimensions)
	}

	return newRealVector(size, gatherOptions(opts...)), nil
}

// NewRealVectorFrom copies vals into a new vector.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrNaNInf (policy).
func NewRealVectorFrom(vals []float64, opts ...Option) (*RealVector, error) {
	v, err := NewRealVector(len(vals), opts...)
	if err != nil {
		return nil, err
	}
	if err = v.SetArray(vals); err != nil {
		return nil, err
	}

	return v, nil
}

// ParseRealVector reads a vector of the given size from a token string.
//
// Errors:
//   - ErrInvalidDimensions, ErrTokenCount, ErrParse, ErrNaNInf (policy).
func ParseRealVector(size int, s string, opts ...Option) (*RealVector, error) {
	v, err := NewRealVector(size, opts...)
	if err != nil {
		return nil, err
	}
	if err = v.SetVector(s); err != nil {
		return nil, err
	}

	return v, nil
}
