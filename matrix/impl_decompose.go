// SPDX-License-Identifier: MIT

// Package matrix - factorization-based kernels.
//
// Purpose:
//   - Det through an in-package LU with partial pivoting (exact for small
//     integer matrices, sign tracked through row swaps).
//   - Inverse and linear solves through gonum/mat (LAPACK getrf/getri/getrs).
//   - Singular values, condition number and the induced norms through gonum/mat.
//   - EigenSym: cyclic-pivot Jacobi rotations for symmetric input.
//
// Numeric contract:
//   - An exactly singular input yields ErrSingular.
//   - An ill-conditioned but invertible input is NOT an error: the computed
//     result is returned and the caller can inspect Cond.
//   - gonum kernels are handed finite data only; NaN/±Inf input yields ErrNaNInf.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// gonumSolveErr maps the outcome of a gonum inverse/solve onto package sentinels.
// Condition(+Inf) and mat.ErrSingular become ErrSingular; a finite Condition
// only reports ill-conditioning and is accepted.
func gonumSolveErr(tag string, err error) error {
	if err == nil {
		return nil
	}
	var c mat.Condition
	if errors.As(err, &c) {
		if math.IsInf(float64(c), 1) {
			return matrixErrorf(tag, ErrSingular)
		}

		return nil
	}
	if errors.Is(err, mat.ErrSingular) {
		return matrixErrorf(tag, ErrSingular)
	}

	return matrixErrorf(tag, err)
}

// requireFinite rejects NaN/±Inf before data is handed to LAPACK.
func requireFinite(tag string, d *Dense) error {
	for k, v := range d.data {
		if !isFinite(v) {
			return matrixErrorf(tag, denseErrorf(ctxAt, k/d.c, k%d.c, ErrNaNInf))
		}
	}

	return nil
}

// luFactor runs Gaussian elimination with partial pivoting on a copy of a
// square matrix.
// Implementation:
//   - Stage 1: copy data; perm = identity; sign = +1.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]|, swap
//     it into place (flip sign), then eliminate below the pivot storing the
//     multipliers in the strict lower triangle.
//
// Behavior highlights:
//   - A zero pivot column is skipped (singular=true) so Det still returns 0.
//
// Returns:
//   - lu: packed unit-lower L (strict lower part) and U (upper part).
//   - perm: row i of the factorization is row perm[i] of the input.
//   - sign: determinant of the permutation (±1).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func luFactor(a *Dense) (lu *Dense, perm []int, sign float64, singular bool) {
	n := a.r
	lu = a.Clone()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	var (
		i, j, k, p   int
		maxAbs, v, f float64
		pivot        float64
	)
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu.data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu.data[p*n+j], lu.data[k*n+j] = lu.data[k*n+j], lu.data[p*n+j]
			}
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		pivot = lu.data[k*n+k]
		if pivot == ZeroPivot {
			singular = true

			continue
		}
		for i = k + 1; i < n; i++ {
			f = lu.data[i*n+k] / pivot
			lu.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu.data[i*n+j] -= f * lu.data[k*n+j]
			}
		}
	}

	return lu, perm, sign, singular
}

// LU factorizes a square matrix as P·A = L·U with partial pivoting.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: luFactor; unpack L (unit lower) and U (upper).
//
// Returns:
//   - L, U: fresh n×n Dense factors.
//   - perm: row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (L, U *Dense, perm []int, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	lu, perm, _, _ := luFactor(a)

	n := a.r
	L, U = a.like(n, n), a.like(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i > j:
				L.data[i*n+j] = lu.data[i*n+j]
			case i == j:
				L.data[i*n+j] = 1
				U.data[i*n+j] = lu.data[i*n+j]
			default:
				U.data[i*n+j] = lu.data[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Det returns the determinant of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: det = sign(P) · Π U[k,k] from luFactor.
//
// Behavior highlights:
//   - Singular input returns 0 (not an error).
//   - Small integer matrices come out exact (det([[1,2],[3,4]]) == -2).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return detDense(a), nil
}

func detDense(a *Dense) float64 {
	lu, _, det, singular := luFactor(a)
	if singular {
		return 0
	}
	n := a.r
	for k := 0; k < n; k++ {
		det *= lu.data[k*n+k]
	}

	return det
}

// Inverse computes A^{-1} through gonum's LAPACK-backed Dense.Inverse.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); reject non-finite input.
//   - Stage 2: allocate the result and let gonum write straight into its buffer.
//   - Stage 3: map the gonum Condition outcome (see gonumSolveErr).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf.
//   - ErrSingular when A is exactly singular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A^{-1}·b, SolveSlice is cheaper than forming A^{-1}.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = requireFinite(opInverse, a); err != nil {
		return nil, err
	}

	out := a.like(a.r, a.c)
	if err = gonumSolveErr(opInverse, out.gonum().Inverse(a.gonum())); err != nil {
		return nil, err
	}

	return out, nil
}

// SolveSlice solves A·x = b for square A and returns x as a new slice.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a), ValidateVecLen(b, n); reject non-finite input.
//   - Stage 2: gonum VecDense.SolveVec (LU with partial pivoting).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func SolveSlice(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = requireFinite(opSolve, da); err != nil {
		return nil, err
	}
	rhs := allocDense(len(b), 1, false)
	copy(rhs.data, b)
	if err = requireFinite(opSolve, rhs); err != nil {
		return nil, err
	}

	x := make([]float64, len(b))
	xv := mat.NewVecDense(len(b), x)
	if err = gonumSolveErr(opSolve, xv.SolveVec(da.gonum(), mat.NewVecDense(len(b), rhs.data))); err != nil {
		return nil, err
	}

	return x, nil
}

// SingularValues returns the singular values of m in descending order.
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSVDFailed.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func SingularValues(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	if err = requireFinite(opSVD, a); err != nil {
		return nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(a.gonum(), mat.SVDNone); !ok {
		return nil, matrixErrorf(opSVD, ErrSVDFailed)
	}

	return svd.Values(nil), nil
}

// Cond returns the 2-norm condition number σmax/σmin.
// A singular matrix yields +Inf (not an error).
//
// Errors:
//   - See SingularValues.
func Cond(m Matrix) (float64, error) {
	sv, err := SingularValues(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	return sv[0] / sv[len(sv)-1], nil
}

// Norm1 returns the induced 1-norm (maximum absolute column sum).
func Norm1(m Matrix) (float64, error) { return gonumNorm(m, 1) }

// NormInf returns the induced ∞-norm (maximum absolute row sum).
func NormInf(m Matrix) (float64, error) { return gonumNorm(m, math.Inf(1)) }

// NormF returns the Frobenius norm.
func NormF(m Matrix) (float64, error) { return gonumNorm(m, 2) }

// Norm2 returns the spectral norm (largest singular value).
func Norm2(m Matrix) (float64, error) {
	sv, err := SingularValues(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return sv[0], nil
}

// gonumNorm evaluates mat.Norm; ord follows gonum (1, 2 = Frobenius, +Inf).
func gonumNorm(m Matrix, ord float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	a, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return mat.Norm(a.gonum(), ord), nil
}

// EigenSym performs Jacobi eigenvalue decomposition on a symmetric matrix.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy A; Q = I.
//   - Stage 2: repeat up to maxIter rotations: pick the largest |A[p,q]|
//     (p<q), stop below tol, otherwise rotate rows/cols p,q and accumulate the
//     rotation into Q.
//   - Stage 3: verify convergence; eigenvalues are the diagonal of A.
//
// Behavior highlights:
//   - Columns of Q are the eigenvectors: A·Q[:,k] = λ[k]·Q[:,k].
//   - Eigenvalues are returned in diagonal order (unsorted).
//
// Inputs:
//   - m: symmetric square matrix.
//   - opts: WithEigenTolerance, WithEigenMaxIter.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed.
//
// Complexity:
//   - Time O(maxIter·n), Space O(n^2).
//
// AI-Hints:
//   - Good defaults: tol≈1e-12, a few hundred rotations for n ≤ 8.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	tol := o.eigenTol
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := src.r
	A := src.Clone()
	Q := src.like(n, n)
	Q.setIdentity()

	var (
		iter, i, j, base int
		p, q             int
		maxOff, off      float64
		app, aqq, apq    float64
		aip, aiq         float64
		qip, qiq         float64
		newIP, newIQ     float64
		theta, t, c, s   float64
	)
	for iter = 0; iter < o.eigenMaxIter; iter++ {
		// J.1: Find pivot (p,q) maximizing |A[p,q]|
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A.data[base+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: Converged.
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters, θ = (aqq−app)/(2·apq).
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			A.data[i*n+p], A.data[p*n+i] = newIP, newIP
			A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// J.5: Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	if done, _ := IsZeroOffDiagonal(A, tol); !done {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("no convergence after %d rotations: %w", o.eigenMaxIter, ErrEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}
