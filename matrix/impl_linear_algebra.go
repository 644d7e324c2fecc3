// SPDX-License-Identifier: MIT

// Package matrix - package-level kernels over any Matrix.
//
// Every kernel here returns a fresh *Dense and leaves its operands alone.
// Operands are first brought to row-major storage by asDense: a *Dense or a
// type built on the generic bases is used as is, any other Matrix is copied
// once through At. The loops then run over flat buffers only.
//
// Factorization kernels (LU, Det, Inverse, SolveSlice, SVD, norms, EigenSym)
// live in impl_decompose.go; the generic bases call the *Into helpers below
// directly on their own stores.

package matrix

import (
	"fmt"
)

// NormZero is the starting value of norm accumulators.
const NormZero = 0.0

// ZeroSum is the starting value of dot-product accumulators.
const ZeroSum = 0.0

// ZeroPivot marks an exactly vanishing LU pivot.
const ZeroPivot = 0.0

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opEigen     = "EigenSym"
	opInverse   = "Inverse"
	opLU        = "LU"
	opDet       = "Det"
	opSolve     = "Solve"
	opSVD       = "SingularValues"
	opCond      = "Cond"
	opNorm      = "Norm"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf prefixes err with the operation tag; call it only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns the row-major storage behind m, copying only when m is a
// foreign Matrix implementation.
func asDense(m Matrix) (*Dense, error) {
	switch t := m.(type) {
	case *Dense:
		return t, nil
	case MatrixKind:
		return t.dense(), nil
	}
	res := allocDense(m.Rows(), m.Cols(), DefaultValidateNaNInf)
	for k := range res.data {
		i, j := k/res.c, k%res.c
		v, err := m.At(i, j)
		if err != nil {
			return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
		}
		res.data[k] = v
	}

	return res, nil
}

// operands validates a binary pair with check and returns both stores.
func operands(a, b Matrix, check func(a, b Matrix) error) (*Dense, *Dense, error) {
	if err := check(a, b); err != nil {
		return nil, nil, err
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// addSub returns a + sign·b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	da, db, err := operands(a, b, ValidateBinarySameShape)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := da.like(da.r, da.c)
	addSubInto(res, da, db, sign)

	return res, nil
}

// addSubInto writes dst = a + sign·b over equal-length buffers; dst may be a.
func addSubInto(dst, a, b *Dense, sign float64) {
	for k := range dst.data {
		dst.data[k] = a.data[k] + sign*b.data[k]
	}
}

// Add returns the element-wise sum A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference A − B. See Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product A·B.
// Implementation:
//   - Stage 1: A.Cols must equal B.Rows (ValidateMulCompatible).
//   - Stage 2: i→k→j accumulation into a zeroed result, so both the A row and
//     the B row are walked with unit stride; zero A[i,k] are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	da, db, err := operands(a, b, ValidateMulCompatible)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := da.like(da.r, db.c)
	mulInto(res, da, db)

	return res, nil
}

// mulInto accumulates a·b into dst, which must be zero and alias neither input.
func mulInto(dst, a, b *Dense) {
	for i := 0; i < a.r; i++ {
		out := dst.data[i*b.c : (i+1)*b.c]
		for k, av := range a.data[i*a.c : (i+1)*a.c] {
			if av == 0 {
				continue
			}
			for j, bv := range b.data[k*b.c : (k+1)*b.c] {
				out[j] += av * bv
			}
		}
	}
}

// Transpose returns mᵀ.
//
// Errors:
//   - ErrNilMatrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := dm.like(dm.c, dm.r)
	transposeInto(res, dm)

	return res, nil
}

// transposeInto writes dst = srcᵀ; dst must not alias src.
func transposeInto(dst, src *Dense) {
	for k, v := range src.data {
		i, j := k/src.c, k%src.c
		dst.data[j*src.r+i] = v
	}
}

// Scale returns alpha·m.
//
// Errors:
//   - ErrNilMatrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := src.Clone()
	scaleInPlace(res, alpha)

	return res, nil
}

func scaleInPlace(m *Dense, alpha float64) {
	for k := range m.data {
		m.data[k] *= alpha
	}
}

// Hadamard returns the element-wise product, C[i,j] = A[i,j]·B[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard(a, b Matrix) (*Dense, error) {
	da, db, err := operands(a, b, ValidateBinarySameShape)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := da.Clone()
	hadamardInPlace(res, db)

	return res, nil
}

func hadamardInPlace(dst, src *Dense) {
	for k := range dst.data {
		dst.data[k] *= src.data[k]
	}
}

// MatVec returns y = m·x for len(x) == m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, dm.r)
	matVecInto(y, dm, x)

	return y, nil
}

// matVecInto writes y = m·x; y must not alias x.
func matVecInto(y []float64, m *Dense, x []float64) {
	for i := range y {
		sum := ZeroSum
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			sum += v * x[j]
		}
		y[i] = sum
	}
}
