// SPDX-License-Identifier: MIT

// Package matrix - matrix/vector actions that need both a matrix kind and a
// vector type parameter. Go methods cannot introduce type parameters, so these
// live at package level.

package matrix

import "fmt"

const (
	opMulVec   = "MulVec"
	opOuter    = "OuterProd"
	opSolveVec = "Solve"
)

// MulVec returns the matrix-vector product m·v as a new vector of v's type.
//
// Errors:
//   - ErrDimensionMismatch when m.Cols() != v.Size() or m is not square
//     (the result must have v's size).
func MulVec[V VectorSelf[V]](m MatrixKind, v V) (V, error) {
	var zero V
	md := m.dense()
	if md.r != md.c || md.c != v.Size() {
		return zero, matrixErrorf(opMulVec, fmt.Errorf("matrix %dx%d, vector %d: %w", md.r, md.c, v.Size(), ErrDimensionMismatch))
	}
	res := v.Copy()
	matVecInto(res.column().data, md, v.column().data)

	return res, nil
}

// Solve returns x with m·x = b as a new vector of b's type; b is untouched.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
func Solve[V VectorSelf[V]](m MatrixKind, b V) (V, error) {
	var zero V
	x, err := SolveSlice(m.dense(), b.column().data)
	if err != nil {
		return zero, matrixErrorf(opSolveVec, err)
	}
	res := b.Copy()
	copy(res.column().data, x)

	return res, nil
}

// SolveInPlace overwrites v with the solution x of m·x = v.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
func SolveInPlace(m MatrixKind, v VectorKind) error {
	col := v.column()
	x, err := SolveSlice(m.dense(), col.data)
	if err != nil {
		return matrixErrorf(opSolveVec, err)
	}
	copy(col.data, x)

	return nil
}

// OuterProd writes the outer product dst[i,j] = u[i]·v[j] into dst.
//
// Errors:
//   - ErrDimensionMismatch unless dst is u.Size()×v.Size().
func OuterProd(dst MatrixKind, u, v VectorKind) error {
	d := dst.dense()
	uc, vc := u.column(), v.column()
	if d.r != uc.r || d.c != vc.r {
		return matrixErrorf(opOuter, fmt.Errorf("target %dx%d for %d⊗%d: %w", d.r, d.c, uc.r, vc.r, ErrDimensionMismatch))
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			d.data[i*d.c+j] = uc.data[i] * vc.data[j]
		}
	}

	return nil
}
