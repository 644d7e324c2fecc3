// SPDX-License-Identifier: MIT

package beam

import (
	"github.com/katalvlaran/xalmath/matrix"
	"github.com/katalvlaran/xalmath/r3"
)

// PhaseMatrix is a 7×7 matrix on homogeneous phase space. As a transfer map
// the upper-left 6×6 block is the linear action and column HOM the
// translation; as a moment matrix see CovarianceMatrix.
type PhaseMatrix struct {
	matrix.SquareMatrix[*PhaseMatrix]
}

var _ matrix.MatrixKind = (*PhaseMatrix)(nil)

// newPhaseMatrix allocates every element at zero, (HOM,HOM) included.
func newPhaseMatrix(opts ...matrix.Option) *PhaseMatrix {
	m := &PhaseMatrix{}
	sq, err := matrix.NewSquareMatrix(PhaseSize, func(int) *PhaseMatrix { return newPhaseMatrix(opts...) }, opts...)
	if err != nil {
		panic(err)
	}
	m.SquareMatrix = sq

	return m
}

// ZeroPhaseMatrix returns the zero map of phase space: every element is 0
// except (HOM,HOM) = 1.
func ZeroPhaseMatrix(opts ...matrix.Option) *PhaseMatrix {
	m := newPhaseMatrix(opts...)
	m.set(HOM, HOM, 1)

	return m
}

// IdentityPhaseMatrix returns I₇.
func IdentityPhaseMatrix(opts ...matrix.Option) *PhaseMatrix {
	m := newPhaseMatrix(opts...)
	m.AssignIdentity()

	return m
}

// NewPhaseMatrixFrom copies a 7×7 slice.
//
// Errors:
//   - matrix.ErrDimensionMismatch unless vals is 7×7.
//   - matrix.ErrNaNInf under the finite-value policy.
func NewPhaseMatrixFrom(vals [][]float64, opts ...matrix.Option) (*PhaseMatrix, error) {
	m := newPhaseMatrix(opts...)
	if err := m.SetMatrix(vals); err != nil {
		return nil, err
	}

	return m, nil
}

// ParsePhaseMatrix reads 49 row-major tokens.
//
// Errors:
//   - matrix.ErrTokenCount, matrix.ErrParse, matrix.ErrNaNInf (policy).
func ParsePhaseMatrix(s string, opts ...matrix.Option) (*PhaseMatrix, error) {
	m := newPhaseMatrix(opts...)
	if err := m.SetMatrixString(s); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadPhaseMatrix restores a matrix saved with Save. An adaptor without
// values yields ZeroPhaseMatrix.
//
// Errors:
//   - matrix.ErrDataFormat joined with the parse cause.
func LoadPhaseMatrix(da matrix.DataAdaptor, opts ...matrix.Option) (*PhaseMatrix, error) {
	m := ZeroPhaseMatrix(opts...)
	if err := m.Load(da); err != nil {
		return nil, err
	}

	return m, nil
}

// Translation returns the map z ↦ z + v: the identity with the phase
// coordinates of v in column HOM.
func Translation(v *PhaseVector) *PhaseMatrix {
	m := IdentityPhaseMatrix()
	for _, i := range PhaseIndices() {
		m.set(i, HOM, v.get(i))
	}

	return m
}

// SpatialTranslation returns the map that displaces positions by d and
// leaves momenta unchanged.
func SpatialTranslation(d *r3.R3) *PhaseMatrix {
	m := IdentityPhaseMatrix()
	m.set(X, HOM, d.X())
	m.set(Y, HOM, d.Y())
	m.set(Z, HOM, d.Z())

	return m
}

// RotationProduct lifts a rotation of R3 to phase space. Element (i,j) of R
// lands on (2i,2j) for positions and on (2i+1,2j+1) for momenta; HOM is
// fixed.
func RotationProduct(R *r3.R3x3) *PhaseMatrix {
	m := IdentityPhaseMatrix()
	var row, col PhaseIndex
	for p := r3.XX; p <= r3.ZZ; p++ {
		row, col = PhaseIndex(2*p.Row().Val()), PhaseIndex(2*p.Col().Val())
		val := R.Elem(p)
		m.set(row, col, val)
		m.set(row+1, col+1, val)
	}

	return m
}

func (m *PhaseMatrix) set(i, j PhaseIndex, v float64) { _ = m.SetIndex(i, j, v) }

func (m *PhaseMatrix) get(i, j PhaseIndex) float64 {
	v, _ := m.AtIndex(i, j)

	return v
}

// Elem returns the element at (i, j).
func (m *PhaseMatrix) Elem(i, j PhaseIndex) float64 { return m.get(i, j) }

// SetElem assigns the element at (i, j).
//
// Errors:
//   - matrix.ErrNaNInf under the finite-value policy.
func (m *PhaseMatrix) SetElem(i, j PhaseIndex, v float64) error { return m.SetIndex(i, j, v) }

// Homogenize clears row and column HOM and sets (HOM,HOM) = 1, discarding
// any translation.
func (m *PhaseMatrix) Homogenize() {
	for i := X; i <= HOM; i++ {
		m.set(HOM, i, 0)
		m.set(i, HOM, 0)
	}
	m.set(HOM, HOM, 1)
}

// ProjectR6x6 returns the upper-left 6×6 block, dropping the homogeneous
// coordinate.
func (m *PhaseMatrix) ProjectR6x6() *matrix.RealSquareMatrix {
	rows := m.Array()[:phaseCoordCount]
	for i := range rows {
		rows[i] = rows[i][:phaseCoordCount]
	}
	proj, err := matrix.NewRealSquareMatrixFrom(rows)
	if err != nil {
		panic(err)
	}

	return proj
}

// TimesVector returns m·v.
func (m *PhaseMatrix) TimesVector(v *PhaseVector) *PhaseVector {
	out, err := matrix.MulVec(m, v)
	if err != nil {
		panic(err)
	}

	return out
}

// Max returns the largest element magnitude of the 6×6 block.
func (m *PhaseMatrix) Max() float64 { return m.ProjectR6x6().Max() }

// Norm1 returns the maximum column sum of the 6×6 block.
func (m *PhaseMatrix) Norm1() float64 { return m.ProjectR6x6().Norm1() }

// NormInf returns the maximum row sum of the 6×6 block.
func (m *PhaseMatrix) NormInf() float64 { return m.ProjectR6x6().NormInf() }

// NormF returns the Frobenius norm of the 6×6 block.
func (m *PhaseMatrix) NormF() float64 { return m.ProjectR6x6().NormF() }

// Norm2 returns the spectral norm of the 6×6 block.
//
// Errors:
//   - matrix.ErrSVDFailed.
func (m *PhaseMatrix) Norm2() (float64, error) { return m.ProjectR6x6().Norm2() }
