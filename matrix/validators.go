// SPDX-License-Identifier: MIT

// Package matrix - shared argument checks.
//
// Every kernel and generic base method validates through these functions, so
// a given misuse always yields the same sentinel with the same tag:
//
//	ValidateSquare: matrix: non-square matrix
//
// Composite validators run their parts in a fixed order, nil checks first.
// None of them allocate.

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the smallest tolerance the tolerance-taking validators use;
// negative arguments are mirrored.
const zeroTol = 0.0

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkTol rejects a non-finite tolerance and returns |tol|.
func checkTol(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, ErrNaNInf
	}
	if tol < zeroTol {
		return -tol, nil
	}

	return tol, nil
}

// ValidateNotNil rejects a nil Matrix, including a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if d, ok := m.(*Dense); m == nil || (ok && d == nil) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have equal
// rows and columns. Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape is ValidateNotNil on both operands, then
// ValidateSameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare reports ErrNonSquare unless Rows == Cols.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil is ValidateNotNil, then ValidateSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateVecLen requires a non-nil x of length n.
func ValidateVecLen(x []float64, n int) error {
	switch {
	case x == nil:
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	case len(x) != n:
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateIndex requires 0 <= i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d of %d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateSymmetric requires |A[i,j] − A[j,i]| <= tol for every i < j.
// tol == 0 is the exact test behind SquareMatrix.IsSymmetric; a NaN element
// never passes.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; ErrNaNInf for a non-finite tol.
//   - ErrAsymmetry naming the first offending pair.
//
// Complexity:
//   - Time O(n²), upper triangle only.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := checkTol(tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if !(math.Abs(aij-aji) <= tol) {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// IsZeroOffDiagonal reports whether every off-diagonal |A[i,j]| is at most
// tol. EigenSym uses it as its convergence test.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf as for ValidateSymmetric.
func IsZeroOffDiagonal(m Matrix, tol float64) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, err
	}
	tol, err := checkTol(tol)
	if err != nil {
		return false, err
	}

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, _ := m.At(i, j); math.Abs(v) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// ValidateMulCompatible requires non-nil operands with a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}
