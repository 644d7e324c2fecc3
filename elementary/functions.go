// SPDX-License-Identifier: MIT

package elementary

import (
	"fmt"
	"math"
)

const (
	// sincSeriesBound is the |x| below which Sinc switches to its Taylor series.
	sincSeriesBound = 0.1

	// maxFactorialArg is the largest n with n! representable in int64.
	maxFactorialArg = 20
)

// Sinc returns sin(x)/x.
// For |x| < 0.1 the Taylor series through x⁸ is evaluated instead, avoiding
// the 0/0 cancellation at the origin. Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincSeriesBound {
		x2 := x * x
		return 1.0 - x2/6.0*(1.0-x2/20.0*(1.0-x2/42.0*(1.0-x2/72.0)))
	}

	return math.Sin(x) / x
}

// Sinch returns sinh(x)/x, with the series 1 + x²/6 when |x| is below EPS.
func Sinch(x float64) float64 {
	if math.Abs(x) < EPS {
		return 1.0 + x*x/6.0
	}

	return math.Sinh(x) / x
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) float64 { return math.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) float64 { return math.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// Asinh returns the inverse hyperbolic sine, ln(x + sqrt(x²+1)).
func Asinh(x float64) float64 { return math.Asinh(x) }

// Acosh returns the inverse hyperbolic cosine, ln(x + sqrt(x²-1)).
//
// Errors:
//   - ErrDomain when x < 1 (including NaN).
func Acosh(x float64) (float64, error) {
	if !(x >= 1.0) {
		return math.NaN(), fmt.Errorf("Acosh(%g): %w", x, ErrDomain)
	}

	return math.Acosh(x), nil
}

// Atanh returns the inverse hyperbolic tangent, ½·ln((1+x)/(1-x)).
//
// Errors:
//   - ErrDomain when x <= -1 or x >= 1 (including NaN).
func Atanh(x float64) (float64, error) {
	if !(x > -1.0 && x < 1.0) {
		return math.NaN(), fmt.Errorf("Atanh(%g): %w", x, ErrDomain)
	}

	return math.Atanh(x), nil
}

// Pow returns base^exp for an integer exponent by repeated squaring.
// Implementation:
//   - Stage 1: fold a negative exponent into the reciprocal of the base.
//   - Stage 2: square-and-multiply over the bits of |exp|.
//
// Behavior highlights:
//   - Exact for small integer bases (no log/exp round trip as in math.Pow).
//   - Pow(x, 0) = 1 for every x, including 0 and NaN, matching math.Pow.
//
// Complexity:
//   - Time O(log |exp|), Space O(1).
func Pow(base float64, exp int) float64 {
	if exp < 0 {
		base = 1.0 / base
		exp = -exp
	}

	result := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}

	return result
}

// IntPow returns base^exp on integers by repeated squaring.
//
// Errors:
//   - ErrDomain for exp < 0 (the result would not be an integer).
//   - ErrOverflow when an intermediate product leaves the int range.
func IntPow(base, exp int) (int, error) {
	if exp < 0 {
		return 0, fmt.Errorf("IntPow(%d,%d): %w", base, exp, ErrDomain)
	}

	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			next := result * base
			if base != 0 && next/base != result {
				return 0, fmt.Errorf("IntPow: %w", ErrOverflow)
			}
			result = next
		}
		exp >>= 1
		if exp > 0 {
			sq := base * base
			if base != 0 && sq/base != base {
				return 0, fmt.Errorf("IntPow: %w", ErrOverflow)
			}
			base = sq
		}
	}

	return result, nil
}

// Factorial returns n! for 0 <= n <= 20.
//
// Errors:
//   - ErrDomain for n < 0.
//   - ErrOverflow for n > 20.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrDomain)
	}
	if n > maxFactorialArg {
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
	}

	result := 1
	for k := 2; k <= n; k++ {
		result *= k
	}

	return result, nil
}
