// SPDX-License-Identifier: MIT

package beam

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xalmath/elementary"
	"github.com/katalvlaran/xalmath/matrix"
	"github.com/katalvlaran/xalmath/r3"
)

// SymmetryDigits is the number of fractional decimal digits to which the mirrored
// elements of a covariance read from text or an archive must agree.
const SymmetryDigits = 10

const (
	ctxCov      = "beam.CovarianceMatrix"
	ctxCovParse = "beam.ParseCovariance"
	ctxCovLoad  = "beam.LoadCovariance"
	ctxCovForce = ctxCov + ".ForceRmsEmittances"
	ctxCovProp  = ctxCov + ".Propagate"
)

// CovarianceMatrix is the moment matrix σ = ⟨z·zᵀ⟩ of a beam over homogeneous
// phase space. Row and column HOM hold the centroid ⟨z⟩ and σ(HOM,HOM) = 1,
// so the matrix carries the first and second moments at once; the central
// (centroid-free) moments follow from CentralCovariance.
type CovarianceMatrix struct {
	*PhaseMatrix
}

// NewCovariance wraps a copy of m. Symmetry is not checked.
func NewCovariance(m *PhaseMatrix) *CovarianceMatrix {
	return &CovarianceMatrix{PhaseMatrix: m.Copy()}
}

// ZeroCovariance returns the moments of a single particle at rest on axis.
func ZeroCovariance(opts ...matrix.Option) *CovarianceMatrix {
	return &CovarianceMatrix{PhaseMatrix: ZeroPhaseMatrix(opts...)}
}

// ParseCovariance reads 49 row-major tokens and checks symmetry.
//
// Errors:
//   - matrix.ErrTokenCount, matrix.ErrParse, matrix.ErrNaNInf (policy).
//   - ErrAsymmetric (joined with matrix.ErrAsymmetry).
func ParseCovariance(s string, opts ...matrix.Option) (*CovarianceMatrix, error) {
	m, err := ParsePhaseMatrix(s, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCovParse, err)
	}
	cov := &CovarianceMatrix{PhaseMatrix: m}
	if err = cov.checkSymmetry(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCovParse, err)
	}

	return cov, nil
}

// LoadCovariance restores a covariance saved with Save and checks symmetry.
// An adaptor without values yields ZeroCovariance.
//
// Errors:
//   - matrix.ErrDataFormat joined with the parse cause.
//   - ErrAsymmetric (joined with matrix.ErrAsymmetry).
func LoadCovariance(da matrix.DataAdaptor, opts ...matrix.Option) (*CovarianceMatrix, error) {
	m, err := LoadPhaseMatrix(da, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCovLoad, err)
	}
	cov := &CovarianceMatrix{PhaseMatrix: m}
	if err = cov.checkSymmetry(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCovLoad, err)
	}

	return cov, nil
}

// NewCenter returns the moments of a single particle at cen: cen⊗cen.
func NewCenter(cen *PhaseVector) *CovarianceMatrix {
	return &CovarianceMatrix{PhaseMatrix: cen.OuterProd(cen)}
}

// BuildCovariance assembles a centered covariance from the Twiss parameters
// of each plane. The correlation blocks land on (0..1), (2..3) and (4..5);
// σ(HOM,HOM) = 1.
func BuildCovariance(tx, ty, tz Twiss) *CovarianceMatrix {
	cov := &CovarianceMatrix{PhaseMatrix: newPhaseMatrix()}
	for k, tw := range [...]Twiss{tx, ty, tz} {
		p := Plane(k)
		lo, hi := p.Position().Val(), p.Momentum().Val()
		// the block is 2×2 and inside the matrix
		_ = cov.SetSubMatrix(lo, hi, lo, hi, tw.CorrelationMatrix())
	}
	cov.set(HOM, HOM, 1)

	return cov
}

// BuildCovarianceWithCentroid is BuildCovariance for a beam centered at cen:
// the centered blocks plus cen⊗cen.
func BuildCovarianceWithCentroid(tx, ty, tz Twiss, cen *PhaseVector) *CovarianceMatrix {
	sig := BuildCovariance(tx, ty, tz)
	sig.set(HOM, HOM, 0)
	// both operands are 7×7
	_ = sig.PlusEquals(cen.OuterProd(cen))

	return sig
}

// checkSymmetry compares mirrored elements rounded to SymmetryDigits digits.
func (c *CovarianceMatrix) checkSymmetry() error {
	for i := X; i < HOM; i++ {
		for j := i + 1; j <= HOM; j++ {
			up, lo := c.get(i, j), c.get(j, i)
			if !elementary.SignificantDigitsEqual(up, lo, SymmetryDigits) {
				return fmt.Errorf("(%s,%s)=%g vs %g: %w: %w", i, j, up, lo, ErrAsymmetric, matrix.ErrAsymmetry)
			}
		}
	}

	return nil
}

// MeanX returns ⟨x⟩.
func (c *CovarianceMatrix) MeanX() float64 { return c.get(HOM, X) }

// MeanY returns ⟨y⟩.
func (c *CovarianceMatrix) MeanY() float64 { return c.get(HOM, Y) }

// MeanZ returns ⟨z⟩.
func (c *CovarianceMatrix) MeanZ() float64 { return c.get(HOM, Z) }

// Mean returns the centroid ⟨z⟩ read from column HOM.
func (c *CovarianceMatrix) Mean() *PhaseVector {
	v := NewPhaseVector()
	for _, i := range PhaseIndices() {
		_ = v.SetIndex(i, c.get(i, HOM))
	}

	return v
}

// central returns σ(i,j) − ⟨zᵢ⟩⟨zⱼ⟩ with means taken from row HOM.
func (c *CovarianceMatrix) central(i, j PhaseIndex) float64 {
	return c.get(i, j) - c.get(HOM, i)*c.get(HOM, j)
}

// CentralCovXX returns ⟨x²⟩ − ⟨x⟩².
func (c *CovarianceMatrix) CentralCovXX() float64 { return c.central(X, X) }

// CentralCovXY returns ⟨xy⟩ − ⟨x⟩⟨y⟩.
func (c *CovarianceMatrix) CentralCovXY() float64 { return c.central(X, Y) }

// CentralCovYY returns ⟨y²⟩ − ⟨y⟩².
func (c *CovarianceMatrix) CentralCovYY() float64 { return c.central(Y, Y) }

// CentralCovYZ returns ⟨yz⟩ − ⟨y⟩⟨z⟩.
func (c *CovarianceMatrix) CentralCovYZ() float64 { return c.central(Y, Z) }

// CentralCovZZ returns ⟨z²⟩ − ⟨z⟩².
func (c *CovarianceMatrix) CentralCovZZ() float64 { return c.central(Z, Z) }

// CentralCovXZ returns ⟨xz⟩ − ⟨x⟩⟨z⟩.
func (c *CovarianceMatrix) CentralCovXZ() float64 { return c.central(X, Z) }

// SpatialCovariance returns the central covariance of the positions (x, y, z).
func (c *CovarianceMatrix) SpatialCovariance() *r3.R3x3 {
	xx, xy, xz := c.CentralCovXX(), c.CentralCovXY(), c.CentralCovXZ()
	yy, yz, zz := c.CentralCovYY(), c.CentralCovYZ(), c.CentralCovZZ()
	m, err := r3.NewR3x3From([][]float64{
		{xx, xy, xz},
		{xy, yy, yz},
		{xz, yz, zz},
	})
	if err != nil {
		panic(err)
	}

	return m
}

// SigmaX returns the rms horizontal size √(⟨x²⟩ − ⟨x⟩²).
func (c *CovarianceMatrix) SigmaX() float64 { return math.Sqrt(c.CentralCovXX()) }

// SigmaY returns the rms vertical size.
func (c *CovarianceMatrix) SigmaY() float64 { return math.Sqrt(c.CentralCovYY()) }

// SigmaZ returns the rms longitudinal size.
func (c *CovarianceMatrix) SigmaZ() float64 { return math.Sqrt(c.CentralCovZZ()) }

// Sigma returns the rms size of plane p.
func (c *CovarianceMatrix) Sigma(p Plane) float64 {
	i := p.Position()

	return math.Sqrt(c.central(i, i))
}

// CentralCovariance returns σ − ⟨z⟩⊗⟨z⟩ with σ(HOM,HOM) reset to 1.
func (c *CovarianceMatrix) CentralCovariance() *CovarianceMatrix {
	mean := c.Mean()
	cen, err := c.Minus(mean.OuterProd(mean))
	if err != nil {
		panic(err)
	}
	cen.set(HOM, HOM, 1)

	return &CovarianceMatrix{PhaseMatrix: cen}
}

// RmsEmittances returns ε = √det of the central 2×2 block of each plane.
func (c *CovarianceMatrix) RmsEmittances() [3]float64 {
	cen := c.CentralCovariance()
	var out [3]float64
	for _, p := range Planes() {
		i, j := p.Position(), p.Momentum()
		out[p] = math.Sqrt(cen.get(i, i)*cen.get(j, j) - cen.get(i, j)*cen.get(j, i))
	}

	return out
}

// Twiss returns the Twiss parameters of each plane: β = σᵢᵢ/ε, α = −σᵢⱼ/ε on
// the central covariance.
func (c *CovarianceMatrix) Twiss() [3]Twiss {
	cen := c.CentralCovariance()
	emit := c.RmsEmittances()
	var out [3]Twiss
	for _, p := range Planes() {
		i, j := p.Position(), p.Momentum()
		e := emit[p]
		out[p] = NewTwiss(-cen.get(i, j)/e, cen.get(i, i)/e, e)
	}

	return out
}

// ForceRmsEmittances rescales each 2×2 plane block so the rms emittances
// become emit. Coupling between planes is left untouched.
//
// Errors:
//   - ErrEmittance when a current emittance is zero or NaN; no block is
//     changed in that case.
func (c *CovarianceMatrix) ForceRmsEmittances(emit [3]float64) error {
	cur := c.RmsEmittances()
	for _, p := range Planes() {
		if cur[p] == 0 || math.IsNaN(cur[p]) {
			return fmt.Errorf("%s: plane %s emittance %g: %w", ctxCovForce, p, cur[p], ErrEmittance)
		}
	}
	for _, p := range Planes() {
		fac := emit[p] / cur[p]
		lo, hi := p.Position(), p.Momentum()
		for i := lo; i <= hi; i++ {
			for j := lo; j <= hi; j++ {
				c.set(i, j, fac*c.get(i, j))
			}
		}
	}

	return nil
}

// Propagate returns Φ·σ·Φᵀ, the moments after the transfer map Φ.
//
// Errors:
//   - matrix.ErrDimensionMismatch from the conjugation (never for 7×7 Φ).
func (c *CovarianceMatrix) Propagate(phi *PhaseMatrix) (*CovarianceMatrix, error) {
	if phi == nil {
		return nil, fmt.Errorf("%s: %w", ctxCovProp, ErrNilTransfer)
	}
	out, err := c.ConjugateTrans(phi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCovProp, err)
	}

	return &CovarianceMatrix{PhaseMatrix: out}, nil
}

// Copy returns a deep copy.
func (c *CovarianceMatrix) Copy() *CovarianceMatrix {
	return &CovarianceMatrix{PhaseMatrix: c.PhaseMatrix.Copy()}
}
