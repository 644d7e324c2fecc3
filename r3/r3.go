// SPDX-License-Identifier: MIT

package r3

import (
	"math"

	"github.com/katalvlaran/xalmath/matrix"
)

// Size is the dimension of R3.
const Size = 3

// R3 is a vector of Cartesian three-space.
type R3 struct {
	matrix.BaseVector[*R3]
}

var _ matrix.VectorSelf[*R3] = (*R3)(nil)

func newR3(opts ...matrix.Option) *R3 {
	v := &R3{}
	base, err := matrix.NewBaseVector(Size, func(int) *R3 { return newR3(opts...) }, opts...)
	if err != nil {
		panic(err)
	}
	v.BaseVector = base

	return v
}

// Zero returns the origin.
func Zero(opts ...matrix.Option) *R3 { return newR3(opts...) }

// New returns (x, y, z).
func New(x, y, z float64) *R3 {
	v := newR3()
	_ = v.SetArray([]float64{x, y, z}) // the default policy accepts any value

	return v
}

// FromArray copies exactly three components.
//
// Errors:
//   - matrix.ErrDimensionMismatch unless len(vals) == 3.
func FromArray(vals []float64, opts ...matrix.Option) (*R3, error) {
	v := newR3(opts...)
	if err := v.SetArray(vals); err != nil {
		return nil, err
	}

	return v, nil
}

// Parse reads a vector from a token string such as "(1, 2, 3)".
//
// Errors:
//   - matrix.ErrTokenCount, matrix.ErrParse.
func Parse(s string, opts ...matrix.Option) (*R3, error) {
	v := newR3(opts...)
	if err := v.SetVector(s); err != nil {
		return nil, err
	}

	return v, nil
}

// get reads an axis; the index is always in range.
func (v *R3) get(i Index) float64 {
	x, _ := v.AtIndex(i)

	return x
}

// set writes an axis; only the finite-value policy can reject the value.
func (v *R3) set(i Index, x float64) error { return v.SetIndex(i, x) }

// X returns the first component.
func (v *R3) X() float64 { return v.get(X) }

// Y returns the second component.
func (v *R3) Y() float64 { return v.get(Y) }

// Z returns the third component.
func (v *R3) Z() float64 { return v.get(Z) }

// SetX sets the first component.
func (v *R3) SetX(x float64) error { return v.set(X, x) }

// SetY sets the second component.
func (v *R3) SetY(y float64) error { return v.set(Y, y) }

// SetZ sets the third component.
func (v *R3) SetZ(z float64) error { return v.set(Z, z) }

// Cross returns the cross product v × o.
func (v *R3) Cross(o *R3) *R3 {
	x1, x2, x3 := v.X(), v.Y(), v.Z()
	y1, y2, y3 := o.X(), o.Y(), o.Z()

	return New(x2*y3-x3*y2, x3*y1-x1*y3, x1*y2-x2*y1)
}

// Squared returns (x², y², z²).
func (v *R3) Squared() *R3 {
	x, y, z := v.X(), v.Y(), v.Z()

	return New(x*x, y*y, z*z)
}

// Length returns the Euclidean length √(x²+y²+z²).
func (v *R3) Length() float64 { return math.Sqrt(v.Norm2()) }

// CartesianToCylindrical maps (x, y, z) to (r, φ, z) with r = √(x²+y²)
// and φ = atan2(y, x).
func (v *R3) CartesianToCylindrical() *R3 {
	x, y, z := v.X(), v.Y(), v.Z()

	return New(math.Sqrt(x*x+y*y), math.Atan2(y, x), z)
}

// CartesianToSpherical maps (x, y, z) to (R, θ, φ) where θ = atan2(z, r) is
// the elevation above the xy-plane and φ = atan2(y, x) the azimuth.
func (v *R3) CartesianToSpherical() *R3 {
	x, y, z := v.X(), v.Y(), v.Z()
	r2 := x*x + y*y

	return New(math.Sqrt(r2+z*z), math.Atan2(z, math.Sqrt(r2)), math.Atan2(y, x))
}

// CylindricalToCartesian is the inverse of CartesianToCylindrical.
func (v *R3) CylindricalToCartesian() *R3 {
	r, phi, z := v.X(), v.Y(), v.Z()

	return New(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SphericalToCartesian is the inverse of CartesianToSpherical.
func (v *R3) SphericalToCartesian() *R3 {
	R, theta, phi := v.X(), v.Y(), v.Z()
	r := R * math.Cos(theta)

	return New(r*math.Cos(phi), r*math.Sin(phi), R*math.Sin(theta))
}
