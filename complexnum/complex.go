// SPDX-License-Identifier: MIT

// Package complexnum provides an immutable complex number value type with
// field arithmetic, polar decomposition and the elementary transcendental
// functions.
//
// What & Why:
//
//	Complex is a plain value (two float64 fields, no pointers). Every method
//	returns a new value; nothing mutates the receiver, so values can be shared
//	freely between goroutines. The transcendental functions are written out
//	through their real/imaginary decompositions, so each step is explicit and
//	can be audited against the textbook formulas.
//
// Division by a zero-modulus value follows IEEE semantics (Inf/NaN
// components); no extra guard is added.
package complexnum

import (
	"math"
	"strconv"

	"github.com/katalvlaran/xalmath/elementary"
)

// Complex is an immutable complex number re + i·im.
type Complex struct {
	re float64
	im float64
}

var (
	// Zero is 0 + i0.
	Zero = Complex{}
	// One is 1 + i0.
	One = Complex{re: 1}
	// I is the imaginary unit 0 + i1.
	I = Complex{im: 1}
)

// New returns re + i·im.
func New(re, im float64) Complex { return Complex{re: re, im: im} }

// Real returns the purely real value re + i0.
func Real(re float64) Complex { return Complex{re: re} }

// Polar returns modulus·(cos phase + i·sin phase).
func Polar(modulus, phase float64) Complex {
	return Euler(phase).TimesReal(modulus)
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{re: real(z), im: imag(z)} }

// Complex128 converts to the builtin complex128.
func (z Complex) Complex128() complex128 { return complex(z.re, z.im) }

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Modulus returns |z|, computed with math.Hypot to avoid overflow.
func (z Complex) Modulus() float64 { return math.Hypot(z.re, z.im) }

// ModulusSquared returns re² + im².
func (z Complex) ModulusSquared() float64 { return z.re*z.re + z.im*z.im }

// Phase returns the argument of z in (-π, π], atan2(im, re).
func (z Complex) Phase() float64 { return math.Atan2(z.im, z.re) }

// ---------- Field operations ----------

// Plus returns z + w.
func (z Complex) Plus(w Complex) Complex { return Complex{z.re + w.re, z.im + w.im} }

// PlusReal returns z + s.
func (z Complex) PlusReal(s float64) Complex { return Complex{z.re + s, z.im} }

// Minus returns z - w.
func (z Complex) Minus(w Complex) Complex { return Complex{z.re - w.re, z.im - w.im} }

// MinusReal returns z - s.
func (z Complex) MinusReal(s float64) Complex { return Complex{z.re - s, z.im} }

// Times returns z·w = (ac - bd) + i(ad + bc).
func (z Complex) Times(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// TimesReal returns s·z.
func (z Complex) TimesReal(s float64) Complex { return Complex{s * z.re, s * z.im} }

// Divide returns z / w = ((ac + bd) + i(bc - ad)) / (c² + d²).
// A zero divisor yields IEEE Inf/NaN components.
func (z Complex) Divide(w Complex) Complex {
	den := w.ModulusSquared()

	return Complex{
		re: (z.re*w.re + z.im*w.im) / den,
		im: (z.im*w.re - z.re*w.im) / den,
	}
}

// DivideReal returns z / s.
func (z Complex) DivideReal(s float64) Complex { return Complex{z.re / s, z.im / s} }

// Reciprocal returns 1/z = conj(z) / |z|².
func (z Complex) Reciprocal() Complex {
	den := z.ModulusSquared()

	return Complex{re: z.re / den, im: -z.im / den}
}

// Conjugate returns re - i·im.
func (z Complex) Conjugate() Complex { return Complex{z.re, -z.im} }

// Negate returns -z.
func (z Complex) Negate() Complex { return Complex{-z.re, -z.im} }

// ---------- Comparison & formatting ----------

// Equals reports exact component equality.
func (z Complex) Equals(w Complex) bool { return z.re == w.re && z.im == w.im }

// ApproxEq reports component-wise equality within ulps units in the last place.
func (z Complex) ApproxEq(w Complex, ulps int) bool {
	return elementary.ApproxEqULPs(z.re, w.re, ulps) && elementary.ApproxEqULPs(z.im, w.im, ulps)
}

// String formats z as "(re + i im)", using a minus sign for negative imaginary parts.
func (z Complex) String() string {
	sign := " + i"
	im := z.im
	if math.Signbit(im) && !math.IsNaN(im) {
		sign = " - i"
		im = -im
	}

	return "(" + strconv.FormatFloat(z.re, 'g', -1, 64) + sign + strconv.FormatFloat(im, 'g', -1, 64) + ")"
}
