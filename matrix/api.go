// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks on *Dense and any Matrix.
//   - Each facade delegates to the canonical kernel; no loop duplication.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape.
//   - Symmetrize repairs rounding drift on matrices that are symmetric in
//     exact arithmetic (covariance after a conjugation).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	opSymmetrize = "Symmetrize"
	opAllClose   = "AllClose"
	opRowSums    = "RowSums"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	I.setIdentity()

	return I, nil
}

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return Scale(sum, 0.5)
}

// RowSums returns r[i] = Σⱼ m[i,j] via MatVec with a ones vector.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1
	}

	return MatVec(m, ones)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol·|b| for identical shapes.
// NaN never compares close; equal infinities do.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// AI-Hints:
//   - AllClose with small atol/rtol is the workhorse of invariance tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k, x := range da.data {
		y := db.data[k]
		if x == y {
			continue
		}
		if !scalar.EqualWithinAbs(x, y, atol+rtol*math.Abs(y)) {
			return false, nil
		}
	}

	return true, nil
}
