// SPDX-License-Identifier: MIT

package beam

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xalmath/matrix"
)

const ctxTwissCov = "beam.TwissFromCovarianceMatrix"

// Twiss holds the Courant-Snyder parameters of one phase plane. The beam
// ellipse is γx² + 2αxx' + βx'² = ε. Gamma and the envelope values are
// derived once on construction.
type Twiss struct {
	alpha, beta, gamma float64
	emit               float64
	envRad, envSlp     float64
}

// NewTwiss returns the parameter set (α, β, ε) with
// γ = (1+α²)/β, envelope radius √(βε) and envelope slope −α√(ε/β).
func NewTwiss(alpha, beta, emit float64) Twiss {
	return Twiss{
		alpha:  alpha,
		beta:   beta,
		emit:   emit,
		gamma:  (1 + alpha*alpha) / beta,
		envRad: math.Sqrt(beta * emit),
		envSlp: -alpha * math.Sqrt(emit/beta),
	}
}

// TwissFromMoments builds the parameters from the central moments
// ⟨x²⟩, ⟨xx'⟩ and ⟨x'²⟩: ε = √(⟨x²⟩⟨x'²⟩ − ⟨xx'⟩²), β = ⟨x²⟩/ε, α = −⟨xx'⟩/ε.
func TwissFromMoments(sxx, sxxp, sxpxp float64) Twiss {
	emit := math.Sqrt(sxx*sxpxp - sxxp*sxxp)

	return NewTwiss(-sxxp/emit, sxx/emit, emit)
}

// TwissFromCovarianceMatrix reads the moments from a 2×2 covariance block,
// taking ⟨xx'⟩ from the lower triangle.
//
// Errors:
//   - matrix.ErrDimensionMismatch unless cov is at least 2×2.
func TwissFromCovarianceMatrix(cov [][]float64) (Twiss, error) {
	if len(cov) < 2 || len(cov[0]) < 1 || len(cov[1]) < 2 {
		return Twiss{}, fmt.Errorf("%s: need a 2x2 block: %w", ctxTwissCov, matrix.ErrDimensionMismatch)
	}

	return TwissFromMoments(cov[0][0], cov[1][0], cov[1][1]), nil
}

// TwissFromEquivalentBeam builds the parameters of the uniform beam with
// envelope radius r, envelope slope rp and emittance emit:
// α = −r·rp/ε, β = r²/ε.
func TwissFromEquivalentBeam(r, rp, emit float64) Twiss {
	return NewTwiss(-r*rp/emit, r*r/emit, emit)
}

// Alpha returns α.
func (t Twiss) Alpha() float64 { return t.alpha }

// Beta returns β.
func (t Twiss) Beta() float64 { return t.beta }

// Gamma returns γ = (1+α²)/β.
func (t Twiss) Gamma() float64 { return t.gamma }

// Emittance returns the rms emittance ε.
func (t Twiss) Emittance() float64 { return t.emit }

// EnvelopeRadius returns √(βε).
func (t Twiss) EnvelopeRadius() float64 { return t.envRad }

// EnvelopeSlope returns −α√(ε/β).
func (t Twiss) EnvelopeSlope() float64 { return t.envSlp }

// TwissMatrix returns [[γ, α], [α, β]], the quadratic form of the ellipse.
func (t Twiss) TwissMatrix() [][]float64 {
	return [][]float64{
		{t.gamma, t.alpha},
		{t.alpha, t.beta},
	}
}

// CorrelationMatrix returns the covariance block ε·[[β, −α], [−α, γ]].
func (t Twiss) CorrelationMatrix() [][]float64 {
	return [][]float64{
		{t.beta * t.emit, -t.alpha * t.emit},
		{-t.alpha * t.emit, t.gamma * t.emit},
	}
}

// discriminant returns 4α² + (γ−β)².
func (t Twiss) discriminant() float64 {
	zeta := t.gamma - t.beta

	return 4*t.alpha*t.alpha + zeta*zeta
}

// Rotation returns the tilt of the ellipse, atan2(2α, (γ−β) + √(4α²+(γ−β)²)):
// the angle of the TwissMatrix eigenvector for the larger eigenvalue.
func (t Twiss) Rotation() float64 {
	return math.Atan2(2*t.alpha, (t.gamma-t.beta)+math.Sqrt(t.discriminant()))
}

// Eigenvalues returns the eigenvalues of TwissMatrix in ascending order,
// ½((γ+β) ∓ √(4α²+(γ−β)²)).
func (t Twiss) Eigenvalues() [2]float64 {
	sum, root := t.gamma+t.beta, math.Sqrt(t.discriminant())

	return [2]float64{0.5 * (sum - root), 0.5 * (sum + root)}
}

// SemiAxes returns √(ε/λ) in Eigenvalues order, so the larger semi-axis
// comes first.
func (t Twiss) SemiAxes() [2]float64 {
	ev := t.Eigenvalues()

	return [2]float64{math.Sqrt(t.emit / ev[0]), math.Sqrt(t.emit / ev[1])}
}

// Eigenvectors returns unit eigenvectors of TwissMatrix in Eigenvalues
// order; entry k is the direction of SemiAxes()[k].
func (t Twiss) Eigenvectors() [2][2]float64 {
	if t.alpha == 0 {
		if t.gamma <= t.beta {
			return [2][2]float64{{1, 0}, {0, 1}}
		}

		return [2][2]float64{{0, 1}, {1, 0}}
	}
	zeta, root := t.gamma-t.beta, math.Sqrt(t.discriminant())
	unit := func(a, b float64) [2]float64 {
		n := math.Hypot(a, b)

		return [2]float64{a / n, b / n}
	}

	return [2][2]float64{unit(zeta-root, 2*t.alpha), unit(zeta+root, 2*t.alpha)}
}

func (t Twiss) String() string {
	return fmt.Sprintf("alpha=%g beta=%g gamma=%g emittance=%g", t.alpha, t.beta, t.gamma, t.emit)
}
