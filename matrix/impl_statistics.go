// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics of a sample matrix X (one observation per
//     row, one coordinate per column): means, centering, raw second moments
//     and the sample covariance.
//   - beam.EnsembleMoments builds the homogeneous covariance of a particle
//     ensemble from ColumnMeans and SecondMoments.
//
// Exposed API:
//   - ColumnMeans(X)   -> means           // Σ_i X[i,j] / r
//   - CenterColumns(X) -> (Xc, means)     // subtract per-column mean
//   - SecondMoments(X) -> S               // (Xᵀ X)/r
//   - Covariance(X)    -> (Cov, means)    // sample covariance (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Row accumulation uses gonum floats on the row-major flat buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opSecondMoments = "SecondMoments"
	opCovariance    = "Covariance"
)

// ColumnMeans returns the per-column mean of X.
// Implementation:
//   - Stage 1: Validate X (non-nil, at least one row).
//   - Stage 2: floats.Add every row into an accumulator, then floats.Scale by 1/r.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no rows).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	if d.r == 0 {
		return nil, matrixErrorf(opColumnMeans, fmt.Errorf("no observations: %w", ErrDimensionMismatch))
	}

	means := make([]float64, d.c)
	for i := 0; i < d.r; i++ {
		floats.Add(means, d.data[i*d.c:(i+1)*d.c])
	}
	floats.Scale(1/float64(d.r), means)

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: ColumnMeans(X).
//   - Stage 2: clone X and floats.Sub the means from each row.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Reuse the returned means to un-center later.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	xc := d.Clone()
	for i := 0; i < xc.r; i++ {
		floats.Sub(xc.data[i*xc.c:(i+1)*xc.c], means)
	}

	return xc, means, nil
}

// SecondMoments returns S = (Xᵀ X)/r, S[j,k] = ⟨x_j x_k⟩ over the rows.
// The result is symmetric by construction (the lower triangle is mirrored).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no rows).
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func SecondMoments(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSecondMoments, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opSecondMoments, err)
	}
	if d.r == 0 {
		return nil, matrixErrorf(opSecondMoments, fmt.Errorf("no observations: %w", ErrDimensionMismatch))
	}

	c := d.c
	S := d.like(c, c)
	var i, j, k int
	var row []float64
	for i = 0; i < d.r; i++ {
		row = d.data[i*c : (i+1)*c]
		for j = 0; j < c; j++ {
			for k = j; k < c; k++ {
				S.data[j*c+k] += row[j] * row[k]
			}
		}
	}
	inv := 1 / float64(d.r)
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			S.data[j*c+k] *= inv
			S.data[k*c+j] = S.data[j*c+k]
		}
	}

	return S, nil
}

// Covariance returns the sample covariance of the columns: (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate; need r>=2.
//   - Stage 2: CenterColumns, then Transpose → Mul → Scale.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func Covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, fmt.Errorf("%d observations: %w", r, ErrDimensionMismatch))
	}
	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xct, err := Transpose(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	g, err := Mul(xct, xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(g, 1/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}
