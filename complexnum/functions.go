// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Euler returns e^{iθ} = cos θ + i·sin θ.
func Euler(theta float64) Complex {
	return Complex{re: math.Cos(theta), im: math.Sin(theta)}
}

// Sqrt returns the principal square root of z.
// Implementation:
//   - Stage 1: let x = |re|, y = |im| and scale by max(x, y):
//     w = sqrt(x)·sqrt((1 + sqrt(1 + (y/x)²))/2)   when x >= y
//     w = sqrt(y)·sqrt((x/y + sqrt(1 + (x/y)²))/2) otherwise.
//   - Stage 2: for re >= 0 the root is (w, im/(2w)); otherwise it is
//     (|im|/(2w), ±w) with the sign of im.
//
// Behavior highlights:
//   - Never forms re² + im² directly, so large or tiny components neither
//     overflow nor underflow.
//   - Branch cut on the negative real axis; Sqrt(-4) = 2i.
//
// Complexity:
//   - Time O(1), Space O(1).
func Sqrt(z Complex) Complex {
	if z.re == 0 && z.im == 0 {
		return Zero
	}

	x := math.Abs(z.re)
	y := math.Abs(z.im)

	var w float64
	if x >= y {
		r := y / x
		w = math.Sqrt(x) * math.Sqrt(0.5*(1.0+math.Sqrt(1.0+r*r)))
	} else {
		r := x / y
		w = math.Sqrt(y) * math.Sqrt(0.5*(r+math.Sqrt(1.0+r*r)))
	}

	if z.re >= 0 {
		return Complex{re: w, im: z.im / (2.0 * w)}
	}

	im := w
	if z.im < 0 {
		im = -w
	}

	return Complex{re: z.im / (2.0 * im), im: im}
}

// Log returns the principal natural logarithm ln|z| + i·arg z.
func Log(z Complex) Complex {
	return Complex{re: math.Log(z.Modulus()), im: z.Phase()}
}

// Exp returns e^z = e^re·(cos im + i·sin im).
func Exp(z Complex) Complex {
	return Euler(z.im).TimesReal(math.Exp(z.re))
}

// Sin returns sin(σ + iω) = sin σ·cosh ω + i·cos σ·sinh ω.
func Sin(z Complex) Complex {
	return Complex{
		re: math.Sin(z.re) * math.Cosh(z.im),
		im: math.Cos(z.re) * math.Sinh(z.im),
	}
}

// Cos returns cos(σ + iω) = cos σ·cosh ω - i·sin σ·sinh ω.
func Cos(z Complex) Complex {
	return Complex{
		re: math.Cos(z.re) * math.Cosh(z.im),
		im: -math.Sin(z.re) * math.Sinh(z.im),
	}
}

// Sinh returns sinh(σ + iω) = sinh σ·cos ω + i·cosh σ·sin ω.
func Sinh(z Complex) Complex {
	return Complex{
		re: math.Sinh(z.re) * math.Cos(z.im),
		im: math.Cosh(z.re) * math.Sin(z.im),
	}
}

// Cosh returns cosh(σ + iω) = cosh σ·cos ω + i·sinh σ·sin ω.
func Cosh(z Complex) Complex {
	return Complex{
		re: math.Cosh(z.re) * math.Cos(z.im),
		im: math.Sinh(z.re) * math.Sin(z.im),
	}
}
