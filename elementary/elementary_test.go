// SPDX-License-Identifier: MIT
// Package elementary_test contains unit tests for the scalar helpers.
package elementary_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/elementary"
)

func TestApproxEq_ULPWindows(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{1.0, -3.5, 1e-300, 6.02e23, math.Pi} {
		next := math.Nextafter(x, math.Inf(1))
		require.True(t, elementary.ApproxEq(x, x), "reflexive for %g", x)
		require.True(t, elementary.ApproxEq(x, next), "x and x+1ulp for %g", x)
		require.True(t, elementary.ApproxEq(next, x), "symmetric for %g", x)
	}

	require.False(t, elementary.ApproxEq(1.0, 2.0))
	require.False(t, elementary.ApproxEq(math.Pi, math.Pi+1.0))
	require.False(t, elementary.ApproxEq(math.NaN(), math.NaN()))
	require.True(t, elementary.ApproxEq(math.Inf(1), math.Inf(1)))
	require.False(t, elementary.ApproxEq(1e-17, 0), "relative test near zero")
}

func TestApproxEqULPs_Width(t *testing.T) {
	t.Parallel()

	x := 1.0
	y := x
	for i := 0; i < 150; i++ {
		y = math.Nextafter(y, 2)
	}
	// 150 ulps apart: two windows of 100 ulps overlap, two of 50 do not.
	require.True(t, elementary.ApproxEqULPs(x, y, 100))
	require.False(t, elementary.ApproxEqULPs(x, y, 50))
	require.False(t, elementary.ApproxEqULPs(x, y, -1), "negative width means exact")
}

func TestULP(t *testing.T) {
	t.Parallel()

	require.Equal(t, elementary.EPS, elementary.ULP(1.0))
	require.Equal(t, elementary.EPS, elementary.ULP(-1.0))
	require.True(t, math.IsInf(elementary.ULP(math.Inf(-1)), 1))
	require.Greater(t, elementary.ULP(0), 0.0)
}

func TestSignificantDigitsEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x, y   float64
		digits int
		want   bool
	}{
		{"same after rounding", 1.00004, 1.00001, 4, true},
		{"differs at fourth digit", 1.0004, 1.0001, 4, false},
		{"half away from zero", 0.125, 0.13, 2, true},
		{"negative half away from zero", -0.125, -0.13, 2, true},
		{"ten digits", 0.12345678901, 0.12345678904, 10, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, elementary.SignificantDigitsEqual(tc.x, tc.y, tc.digits))
		})
	}
}

func TestSincSinch(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, elementary.Sinc(0))
	require.Equal(t, 1.0, elementary.Sinch(0))
	for _, x := range []float64{0.05, -0.09, 0.0999} {
		require.InDelta(t, math.Sin(x)/x, elementary.Sinc(x), 1e-15, "series branch at %g", x)
	}
	require.InDelta(t, math.Sin(2.0)/2.0, elementary.Sinc(2.0), 0)
	require.InDelta(t, math.Sinh(0.5)/0.5, elementary.Sinch(0.5), 0)
	require.Equal(t, elementary.Sinc(1.3), elementary.Sinc(-1.3), "even function")
}

func TestHyperbolic(t *testing.T) {
	t.Parallel()

	x := 0.7
	require.InDelta(t, 1.0, elementary.Cosh(x)*elementary.Cosh(x)-elementary.Sinh(x)*elementary.Sinh(x), 1e-14)
	require.InDelta(t, elementary.Sinh(x)/elementary.Cosh(x), elementary.Tanh(x), 1e-15)
	require.InDelta(t, x, elementary.Asinh(elementary.Sinh(x)), 1e-15)

	v, err := elementary.Acosh(elementary.Cosh(x))
	require.NoError(t, err)
	require.InDelta(t, x, v, 1e-14)

	v, err = elementary.Atanh(elementary.Tanh(x))
	require.NoError(t, err)
	require.InDelta(t, x, v, 1e-14)
}

func TestHyperbolic_DomainErrors(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0.999, -5, math.NaN()} {
		_, err := elementary.Acosh(x)
		require.True(t, errors.Is(err, elementary.ErrDomain), "Acosh(%g)", x)
	}
	v, err := elementary.Acosh(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	for _, x := range []float64{1, -1, 2, math.NaN()} {
		_, err := elementary.Atanh(x)
		require.True(t, errors.Is(err, elementary.ErrDomain), "Atanh(%g)", x)
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1024.0, elementary.Pow(2, 10))
	require.Equal(t, 0.125, elementary.Pow(2, -3))
	require.Equal(t, -27.0, elementary.Pow(-3, 3))
	require.Equal(t, 1.0, elementary.Pow(0, 0))
	require.Equal(t, 1.0, elementary.Pow(7.5, 0))

	v, err := elementary.IntPow(3, 4)
	require.NoError(t, err)
	require.Equal(t, 81, v)

	v, err = elementary.IntPow(-2, 5)
	require.NoError(t, err)
	require.Equal(t, -32, v)

	_, err = elementary.IntPow(2, -1)
	require.ErrorIs(t, err, elementary.ErrDomain)

	_, err = elementary.IntPow(10, 30)
	require.ErrorIs(t, err, elementary.ErrOverflow)
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	for n, want := range []int{1, 1, 2, 6, 24, 120, 720} {
		got, err := elementary.Factorial(n)
		require.NoError(t, err)
		require.Equal(t, want, got, "%d!", n)
	}

	got, err := elementary.Factorial(20)
	require.NoError(t, err)
	require.Equal(t, 2432902008176640000, got)

	_, err = elementary.Factorial(21)
	require.ErrorIs(t, err, elementary.ErrOverflow)
	_, err = elementary.Factorial(-1)
	require.ErrorIs(t, err, elementary.ErrDomain)
}
