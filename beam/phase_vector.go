// SPDX-License-Identifier: MIT

package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/xalmath/matrix"
	"github.com/katalvlaran/xalmath/r3"
)

const (
	ctxPhaseVector  = "beam.PhaseVector"
	ctxPVSetArray   = ctxPhaseVector + ".SetArray"
	ctxPVSetVector  = ctxPhaseVector + ".SetVector"
	ctxPVLoad       = ctxPhaseVector + ".Load"
	phaseCoordCount = PhaseSize - 1
)

// PhaseVector is a point (x, x', y, y', z, z', 1) of homogeneous phase space.
type PhaseVector struct {
	matrix.BaseVector[*PhaseVector]
}

var _ matrix.VectorSelf[*PhaseVector] = (*PhaseVector)(nil)

// newPhaseVector allocates all seven components at zero, HOM included.
func newPhaseVector(opts ...matrix.Option) *PhaseVector {
	v := &PhaseVector{}
	base, err := matrix.NewBaseVector(PhaseSize, func(int) *PhaseVector { return newPhaseVector(opts...) }, opts...)
	if err != nil {
		panic(err)
	}
	v.BaseVector = base

	return v
}

// NewPhaseVector returns the origin (0, 0, 0, 0, 0, 0, 1).
func NewPhaseVector(opts ...matrix.Option) *PhaseVector {
	v := newPhaseVector(opts...)
	v.homogenize()

	return v
}

// NewPhaseVectorFrom returns (x, xp, y, yp, z, zp, 1).
func NewPhaseVectorFrom(x, xp, y, yp, z, zp float64) *PhaseVector {
	v := NewPhaseVector()
	_ = v.SetArray([]float64{x, xp, y, yp, z, zp})

	return v
}

// PhaseVectorFromArray reads the six phase coordinates from the head of vals.
// Further entries (a homogeneous seventh one included) are ignored.
//
// Errors:
//   - matrix.ErrDimensionMismatch when fewer than six values are given.
//   - matrix.ErrNaNInf under the finite-value policy.
func PhaseVectorFromArray(vals []float64, opts ...matrix.Option) (*PhaseVector, error) {
	v := NewPhaseVector(opts...)
	if err := v.SetArray(vals); err != nil {
		return nil, err
	}

	return v, nil
}

// PhaseVectorFromR3 interleaves a position and a momentum vector.
func PhaseVectorFromR3(pos, mom *r3.R3) *PhaseVector {
	return NewPhaseVectorFrom(pos.X(), mom.X(), pos.Y(), mom.Y(), pos.Z(), mom.Z())
}

// ParsePhaseVector reads a token string holding at least six values.
//
// Errors:
//   - matrix.ErrTokenCount, matrix.ErrParse, matrix.ErrNaNInf (policy).
func ParsePhaseVector(s string, opts ...matrix.Option) (*PhaseVector, error) {
	v := NewPhaseVector(opts...)
	if err := v.SetVector(s); err != nil {
		return nil, err
	}

	return v, nil
}

// LoadPhaseVector restores a vector saved with Save. An adaptor without
// values yields the origin.
//
// Errors:
//   - matrix.ErrDataFormat joined with the parse cause.
func LoadPhaseVector(da matrix.DataAdaptor, opts ...matrix.Option) (*PhaseVector, error) {
	v := NewPhaseVector(opts...)
	if err := v.Load(da); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *PhaseVector) homogenize() { _ = v.SetIndex(HOM, 1) }

// SetArray assigns the six phase coordinates from the head of vals and
// resets HOM to 1.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(vals) < 6.
//   - matrix.ErrNaNInf under the finite-value policy.
func (v *PhaseVector) SetArray(vals []float64) error {
	if len(vals) < phaseCoordCount {
		return fmt.Errorf("%s: %d values, need %d: %w", ctxPVSetArray, len(vals), phaseCoordCount, matrix.ErrDimensionMismatch)
	}
	full := make([]float64, PhaseSize)
	copy(full, vals[:phaseCoordCount])
	full[HOM] = 1

	return v.BaseVector.SetArray(full)
}

// SetVector reads at least six tokens and assigns the first six.
//
// Errors:
//   - matrix.ErrTokenCount, matrix.ErrParse, matrix.ErrNaNInf (policy).
func (v *PhaseVector) SetVector(s string) error {
	vals, err := matrix.ParseTokens(s)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxPVSetVector, err)
	}
	if len(vals) < phaseCoordCount {
		return fmt.Errorf("%s: %d tokens, need %d: %w", ctxPVSetVector, len(vals), phaseCoordCount, matrix.ErrTokenCount)
	}

	return v.SetArray(vals)
}

// Load restores the coordinates from matrix.AttrValues. A missing key leaves
// the vector unchanged.
//
// Errors:
//   - matrix.ErrDataFormat joined with the parse cause.
func (v *PhaseVector) Load(da matrix.DataAdaptor) error {
	s, ok := da.GetValue(matrix.AttrValues)
	if !ok {
		return nil
	}
	if err := v.SetVector(s); err != nil {
		return fmt.Errorf("%s: %w: %w", ctxPVLoad, matrix.ErrDataFormat, err)
	}

	return nil
}

func (v *PhaseVector) get(i PhaseIndex) float64 {
	x, _ := v.AtIndex(i)

	return x
}

// Elem returns the coordinate at i.
func (v *PhaseVector) Elem(i PhaseIndex) float64 { return v.get(i) }

// X returns the horizontal position.
func (v *PhaseVector) X() float64 { return v.get(X) }

// Xp returns the horizontal momentum.
func (v *PhaseVector) Xp() float64 { return v.get(Xp) }

// Y returns the vertical position.
func (v *PhaseVector) Y() float64 { return v.get(Y) }

// Yp returns the vertical momentum.
func (v *PhaseVector) Yp() float64 { return v.get(Yp) }

// Z returns the longitudinal position.
func (v *PhaseVector) Z() float64 { return v.get(Z) }

// Zp returns the longitudinal momentum.
func (v *PhaseVector) Zp() float64 { return v.get(Zp) }

// SetX sets the horizontal position.
func (v *PhaseVector) SetX(x float64) error { return v.SetIndex(X, x) }

// SetXp sets the horizontal momentum.
func (v *PhaseVector) SetXp(x float64) error { return v.SetIndex(Xp, x) }

// SetY sets the vertical position.
func (v *PhaseVector) SetY(x float64) error { return v.SetIndex(Y, x) }

// SetYp sets the vertical momentum.
func (v *PhaseVector) SetYp(x float64) error { return v.SetIndex(Yp, x) }

// SetZ sets the longitudinal position.
func (v *PhaseVector) SetZ(x float64) error { return v.SetIndex(Z, x) }

// SetZp sets the longitudinal momentum.
func (v *PhaseVector) SetZp(x float64) error { return v.SetIndex(Zp, x) }

// Position returns (x, y, z).
func (v *PhaseVector) Position() *r3.R3 { return r3.New(v.X(), v.Y(), v.Z()) }

// Momentum returns (x', y', z').
func (v *PhaseVector) Momentum() *r3.R3 { return r3.New(v.Xp(), v.Yp(), v.Zp()) }

// OuterProd returns the 7×7 matrix M[i,j] = v[i]·o[j], HOM entries included.
func (v *PhaseVector) OuterProd(o *PhaseVector) *PhaseMatrix {
	m := newPhaseMatrix()
	if err := matrix.OuterProd(m, v, o); err != nil {
		// Both vectors and the result are fixed at PhaseSize.
		panic(err)
	}

	return m
}

// AssignZero moves the vector to the origin; HOM stays 1.
func (v *PhaseVector) AssignZero() {
	v.BaseVector.AssignZero()
	v.homogenize()
}

// Plus returns v + o with HOM = 1.
func (v *PhaseVector) Plus(o *PhaseVector) (*PhaseVector, error) {
	return rehomogenized(v.BaseVector.Plus(o))
}

// PlusEquals adds o in place; HOM stays 1.
func (v *PhaseVector) PlusEquals(o *PhaseVector) error {
	if err := v.BaseVector.PlusEquals(o); err != nil {
		return err
	}
	v.homogenize()

	return nil
}

// Minus returns v − o with HOM = 1.
func (v *PhaseVector) Minus(o *PhaseVector) (*PhaseVector, error) {
	return rehomogenized(v.BaseVector.Minus(o))
}

// MinusEquals subtracts o in place; HOM stays 1.
func (v *PhaseVector) MinusEquals(o *PhaseVector) error {
	if err := v.BaseVector.MinusEquals(o); err != nil {
		return err
	}
	v.homogenize()

	return nil
}

// Times returns s·v with HOM = 1.
func (v *PhaseVector) Times(s float64) *PhaseVector {
	res := v.BaseVector.Times(s)
	res.homogenize()

	return res
}

// TimesEquals scales the phase coordinates in place; HOM stays 1.
func (v *PhaseVector) TimesEquals(s float64) {
	v.BaseVector.TimesEquals(s)
	v.homogenize()
}

// Negate returns −v with HOM = 1.
func (v *PhaseVector) Negate() *PhaseVector { return v.Times(-1) }

// NegateEquals negates the phase coordinates in place.
func (v *PhaseVector) NegateEquals() { v.TimesEquals(-1) }

func rehomogenized(v *PhaseVector, err error) (*PhaseVector, error) {
	if err != nil {
		return nil, err
	}
	v.homogenize()

	return v, nil
}

// coords returns the six phase coordinates.
func (v *PhaseVector) coords() []float64 { return v.Array()[:phaseCoordCount] }

// Norm1 returns Σ|zᵢ| over the six phase coordinates.
func (v *PhaseVector) Norm1() float64 { return floats.Norm(v.coords(), 1) }

// Norm2 returns Σzᵢ² over the six phase coordinates.
func (v *PhaseVector) Norm2() float64 {
	z := v.coords()

	return floats.Dot(z, z)
}

// NormInf returns max|zᵢ| over the six phase coordinates.
func (v *PhaseVector) NormInf() float64 { return floats.Norm(v.coords(), math.Inf(1)) }
