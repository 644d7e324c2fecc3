// SPDX-License-Identifier: MIT

package r3

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xalmath/matrix"
)

const (
	ctxR3x3   = "r3.R3x3"
	ctxJacobi = ctxR3x3 + ".JacobiDecomposition"
)

// R3x3 is a real 3×3 matrix acting on R3.
type R3x3 struct {
	matrix.SquareMatrix[*R3x3]
}

var _ matrix.MatrixKind = (*R3x3)(nil)

func newR3x3(opts ...matrix.Option) *R3x3 {
	m := &R3x3{}
	sq, err := matrix.NewSquareMatrix(Size, func(int) *R3x3 { return newR3x3(opts...) }, opts...)
	if err != nil {
		panic(err)
	}
	m.SquareMatrix = sq

	return m
}

// NewZero returns the zero matrix.
func NewZero(opts ...matrix.Option) *R3x3 { return newR3x3(opts...) }

// NewIdentity returns the identity.
func NewIdentity(opts ...matrix.Option) *R3x3 {
	m := newR3x3(opts...)
	m.AssignIdentity()

	return m
}

// NewR3x3From copies a 3×3 slice.
//
// Errors:
//   - matrix.ErrDimensionMismatch unless vals is 3×3.
func NewR3x3From(vals [][]float64, opts ...matrix.Option) (*R3x3, error) {
	m := newR3x3(opts...)
	if err := m.SetMatrix(vals); err != nil {
		return nil, err
	}

	return m, nil
}

// ParseR3x3 reads nine row-major tokens.
//
// Errors:
//   - matrix.ErrTokenCount, matrix.ErrParse.
func ParseR3x3(s string, opts ...matrix.Option) (*R3x3, error) {
	m := newR3x3(opts...)
	if err := m.SetMatrixString(s); err != nil {
		return nil, err
	}

	return m, nil
}

// rotation returns the identity with the 2×2 block (a,a),(a,b),(b,a),(b,b)
// set to [[c, -s], [s, c]].
func rotation(a, b Index, angle float64) *R3x3 {
	s, c := math.Sincos(angle)
	m := NewIdentity()
	m.set(a, a, c)
	m.set(a, b, -s)
	m.set(b, a, s)
	m.set(b, b, c)

	return m
}

// NewRotationX returns the counter-clockwise rotation by angle (radians)
// about the x axis: YY=c, YZ=-s, ZY=s, ZZ=c.
func NewRotationX(angle float64) *R3x3 { return rotation(Y, Z, angle) }

// NewRotationY returns the counter-clockwise rotation about the y axis:
// XX=c, XZ=s, ZX=-s, ZZ=c.
func NewRotationY(angle float64) *R3x3 { return rotation(Z, X, angle) }

// NewRotationZ returns the counter-clockwise rotation about the z axis:
// XX=c, XY=-s, YX=s, YY=c.
func NewRotationZ(angle float64) *R3x3 { return rotation(X, Y, angle) }

func (m *R3x3) set(i, j Index, v float64) { _ = m.SetIndex(i, j, v) }

// Elem returns the element at p.
func (m *R3x3) Elem(p Pos) float64 {
	v, _ := m.AtIndex(p.Row(), p.Col())

	return v
}

// SetElem sets the element at p.
//
// Errors:
//   - matrix.ErrNaNInf under the finite-value policy.
func (m *R3x3) SetElem(p Pos, v float64) error { return m.SetIndex(p.Row(), p.Col(), v) }

// TimesVector returns m·v.
func (m *R3x3) TimesVector(v *R3) *R3 {
	out, err := matrix.MulVec(m, v)
	if err != nil {
		// Both operands are fixed at size 3.
		panic(err)
	}

	return out
}

// JacobiDecomposition holds A = R·D·Rᵀ for a symmetric A: D diagonal with the
// eigenvalues, R orthogonal with the eigenvectors as columns.
type JacobiDecomposition struct {
	eigenvalues [Size]float64
	rotation    *R3x3
	diagonal    *R3x3
}

// JacobiDecomposition diagonalizes a symmetric matrix by Jacobi rotations
// (matrix.EigenSym).
// Implementation:
//   - Stage 1: require exact symmetry.
//   - Stage 2: EigenSym gives eigenvalues λ and R.
//   - Stage 3: D = Rᵀ·A·R through ConjugateTrans.
//
// Errors:
//   - matrix.ErrAsymmetry for non-symmetric input.
//   - matrix.ErrEigenFailed when the iteration does not converge.
func (m *R3x3) JacobiDecomposition(opts ...matrix.Option) (*JacobiDecomposition, error) {
	if !m.IsSymmetric() {
		return nil, fmt.Errorf("%s: %w", ctxJacobi, matrix.ErrAsymmetry)
	}
	vals, Q, err := matrix.EigenSym(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxJacobi, err)
	}
	R, err := NewR3x3From(Q.Array())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxJacobi, err)
	}
	D, err := m.ConjugateTrans(R.Transpose())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxJacobi, err)
	}

	jd := &JacobiDecomposition{rotation: R, diagonal: D}
	copy(jd.eigenvalues[:], vals)

	return jd, nil
}

// Eigenvalues returns λ in the order of the columns of RotationMatrix.
func (j *JacobiDecomposition) Eigenvalues() [Size]float64 { return j.eigenvalues }

// RotationMatrix returns R (eigenvectors as columns).
func (j *JacobiDecomposition) RotationMatrix() *R3x3 { return j.rotation.Copy() }

// DiagonalMatrix returns D = Rᵀ·A·R.
func (j *JacobiDecomposition) DiagonalMatrix() *R3x3 { return j.diagonal.Copy() }
