// SPDX-License-Identifier: MIT

// Package matrix - SquareMatrix, the generic n×n matrix.
//
// Purpose:
//   - Add the operations that only make sense for square matrices: determinant,
//     identity, symmetry, in-place products and the similarity transforms
//     (conjugations) used to propagate transfer and covariance matrices.
//
// Conjugation contract:
//   - ConjugateTrans(Φ) = Φ·A·Φᵀ and ConjugateInv(Φ) = Φ·A·Φ⁻¹, with Φ on the
//     left. For orthogonal Φ both agree.
//
// In-place products:
//   - TimesEqualsMatrix multiplies ELEMENT-WISE. This is the long-standing
//     behavior of the in-place matrix "times" and callers depend on it.
//   - MulEquals is the true in-place matrix product; MulElemEquals is the
//     explicitly named element-wise product.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/xalmath/elementary"
)

const (
	ctxSquare         = "SquareMatrix"
	ctxTimesEqMatrix  = ctxSquare + ".TimesEqualsMatrix"
	ctxMulEquals      = ctxSquare + ".MulEquals"
	ctxMulElemEquals  = ctxSquare + ".MulElemEquals"
	ctxConjugateTrans = ctxSquare + ".ConjugateTrans"
	ctxConjugateInv   = ctxSquare + ".ConjugateInv"
	ctxSolveInPlace   = ctxSquare + ".SolveInPlace"
)

// SquareMatrix is the generic n×n matrix. M is the concrete type embedding it.
type SquareMatrix[M MatrixKind] struct {
	BaseMatrix[M]
}

// NewSquareMatrix returns a zero size×size matrix base with the given factory.
// alloc(size) MUST return a fresh size×size M.
//
// Errors:
//   - ErrInvalidDimensions for size <= 0.
func NewSquareMatrix[M MatrixKind](size int, alloc func(size int) M, opts ...Option) (SquareMatrix[M], error) {
	base, err := NewBaseMatrix(size, size, func(rows, _ int) M { return alloc(rows) }, opts...)
	if err != nil {
		return SquareMatrix[M]{}, matrixErrorf(ctxSquare, err)
	}

	return SquareMatrix[M]{BaseMatrix: base}, nil
}

// Size returns n.
func (s *SquareMatrix[M]) Size() int { return s.store.r }

// AssignIdentity overwrites the matrix with the identity.
func (s *SquareMatrix[M]) AssignIdentity() { s.store.setIdentity() }

// Det returns the determinant (LU with partial pivoting).
// A singular matrix returns 0.
func (s *SquareMatrix[M]) Det() float64 { return detDense(s.store) }

// IsSymmetric reports exact symmetry M[i,j] == M[j,i]; no tolerance.
func (s *SquareMatrix[M]) IsSymmetric() bool { return ValidateSymmetric(s.store, 0) == nil }

// IsSymmetricULPs reports symmetry within ulps units in the last place.
func (s *SquareMatrix[M]) IsSymmetricULPs(ulps int) bool {
	cp := s.store.Clone()
	transposeInto(cp, s.store)
	for k, v := range s.store.data {
		if !elementary.ApproxEqULPs(v, cp.data[k], ulps) {
			return false
		}
	}

	return true
}

// TimesEqualsMatrix multiplies the matrix ELEMENT-WISE by o, in place.
// See MulEquals for the in-place matrix product.
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
func (s *SquareMatrix[M]) TimesEqualsMatrix(o M) error {
	if err := ValidateSameShape(s.store, o.dense()); err != nil {
		return matrixErrorf(ctxTimesEqMatrix, err)
	}
	hadamardInPlace(s.store, o.dense())

	return nil
}

// MulElemEquals multiplies the matrix element-wise by o, in place.
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
func (s *SquareMatrix[M]) MulElemEquals(o M) error {
	if err := ValidateSameShape(s.store, o.dense()); err != nil {
		return matrixErrorf(ctxMulElemEquals, err)
	}
	hadamardInPlace(s.store, o.dense())

	return nil
}

// MulEquals replaces the matrix with the product A·o, in place.
// o may be the receiver itself (A·A).
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
func (s *SquareMatrix[M]) MulEquals(o M) error {
	od := o.dense()
	if err := ValidateSameShape(s.store, od); err != nil {
		return matrixErrorf(ctxMulEquals, err)
	}
	prod := s.store.like(s.store.r, s.store.c)
	mulInto(prod, s.store, od)
	s.store.copyFrom(prod)

	return nil
}

// ConjugateTrans returns Φ·A·Φᵀ.
// Implementation:
//   - Stage 1: sizes must agree.
//   - Stage 2: T = Φ·A, then R = T·Φᵀ into a fresh M.
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (s *SquareMatrix[M]) ConjugateTrans(phi M) (M, error) {
	var zero M
	pd := phi.dense()
	if err := ValidateSameShape(s.store, pd); err != nil {
		return zero, matrixErrorf(ctxConjugateTrans, err)
	}
	phiT := pd.like(pd.c, pd.r)
	transposeInto(phiT, pd)

	return s.conjugate(pd, phiT), nil
}

// ConjugateInv returns Φ·A·Φ⁻¹.
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
//   - ErrSingular when Φ is singular; ErrNaNInf when Φ is not finite.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (s *SquareMatrix[M]) ConjugateInv(phi M) (M, error) {
	var zero M
	pd := phi.dense()
	if err := ValidateSameShape(s.store, pd); err != nil {
		return zero, matrixErrorf(ctxConjugateInv, err)
	}
	phiInv, err := Inverse(pd)
	if err != nil {
		return zero, matrixErrorf(ctxConjugateInv, err)
	}

	return s.conjugate(pd, phiInv), nil
}

// conjugate returns left·A·right as a fresh M.
func (s *SquareMatrix[M]) conjugate(left, right *Dense) M {
	n := s.store.r
	tmp := s.store.like(n, n)
	mulInto(tmp, left, s.store)
	res := s.newResult(n, n)
	mulInto(res.dense(), tmp, right)

	return res
}

// SolveInPlace overwrites v with the solution x of A·x = v.
//
// Errors:
//   - ErrDimensionMismatch when v.Size() != n.
//   - ErrSingular when A is singular.
func (s *SquareMatrix[M]) SolveInPlace(v VectorKind) error {
	col := v.column()
	if col.r != s.store.r {
		return matrixErrorf(ctxSolveInPlace, fmt.Errorf("vector size %d for %dx%d: %w", col.r, s.store.r, s.store.c, ErrDimensionMismatch))
	}
	x, err := SolveSlice(s.store, col.data)
	if err != nil {
		return matrixErrorf(ctxSolveInPlace, err)
	}
	copy(col.data, x)

	return nil
}
