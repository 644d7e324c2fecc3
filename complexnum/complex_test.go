// SPDX-License-Identifier: MIT
package complexnum_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/complexnum"
)

// requireClose compares against a builtin complex128 reference within 64 ULPs per component.
func requireClose(t *testing.T, want complex128, got complexnum.Complex, msg string) {
	t.Helper()
	ref := complexnum.FromComplex128(want)
	require.Truef(t, got.ApproxEq(ref, 64) || cmplx.Abs(got.Complex128()-want) < 1e-14, "%s: want %v, got %v", msg, ref, got)
}

func TestImaginaryUnitSquared(t *testing.T) {
	t.Parallel()

	i := complexnum.New(0, 1)
	require.True(t, i.Times(i).Equals(complexnum.New(-1, 0)))
	require.True(t, complexnum.I.Times(complexnum.I).Equals(complexnum.Real(-1)))
}

func TestFieldOperations(t *testing.T) {
	t.Parallel()

	z := complexnum.New(3, 4)
	w := complexnum.New(1, -2)

	require.True(t, z.Plus(w).Equals(complexnum.New(4, 2)))
	require.True(t, z.Minus(w).Equals(complexnum.New(2, 6)))
	require.True(t, z.Times(w).Equals(complexnum.New(11, -2)))
	require.True(t, z.Divide(w).Equals(complexnum.New(-1, 2)))
	require.True(t, z.PlusReal(1).Equals(complexnum.New(4, 4)))
	require.True(t, z.MinusReal(1).Equals(complexnum.New(2, 4)))
	require.True(t, z.TimesReal(2).Equals(complexnum.New(6, 8)))
	require.True(t, z.DivideReal(2).Equals(complexnum.New(1.5, 2)))
	require.True(t, z.Conjugate().Equals(complexnum.New(3, -4)))
	require.True(t, z.Negate().Equals(complexnum.New(-3, -4)))
	require.True(t, complexnum.New(0, 2).Reciprocal().Equals(complexnum.New(0, -0.5)))

	require.Equal(t, 5.0, z.Modulus())
	require.Equal(t, 25.0, z.ModulusSquared())
	require.Equal(t, math.Atan2(4, 3), z.Phase())
	require.Equal(t, 3.0, z.Re())
	require.Equal(t, 4.0, z.Im())
}

func TestDivideByZeroFollowsIEEE(t *testing.T) {
	t.Parallel()

	q := complexnum.New(1, 1).Divide(complexnum.Zero)
	require.True(t, math.IsInf(q.Re(), 0) || math.IsNaN(q.Re()))
}

func TestTranscendental_MatchesCmplx(t *testing.T) {
	t.Parallel()

	points := []complex128{
		complex(0.5, 0.25),
		complex(-1.5, 2),
		complex(2, -0.75),
		complex(-3, -1),
	}
	for _, p := range points {
		z := complexnum.FromComplex128(p)
		requireClose(t, cmplx.Sqrt(p), complexnum.Sqrt(z), "Sqrt")
		requireClose(t, cmplx.Log(p), complexnum.Log(z), "Log")
		requireClose(t, cmplx.Exp(p), complexnum.Exp(z), "Exp")
		requireClose(t, cmplx.Sin(p), complexnum.Sin(z), "Sin")
		requireClose(t, cmplx.Cos(p), complexnum.Cos(z), "Cos")
		requireClose(t, cmplx.Sinh(p), complexnum.Sinh(z), "Sinh")
		requireClose(t, cmplx.Cosh(p), complexnum.Cosh(z), "Cosh")
	}
}

func TestSqrt_BranchesAndExtremes(t *testing.T) {
	t.Parallel()

	require.True(t, complexnum.Sqrt(complexnum.Real(-4)).Equals(complexnum.New(0, 2)))
	require.True(t, complexnum.Sqrt(complexnum.Real(9)).Equals(complexnum.Real(3)))
	require.True(t, complexnum.Sqrt(complexnum.Zero).Equals(complexnum.Zero))

	// naive re²+im² would overflow here
	big := complexnum.New(1e300, 1e300)
	r := complexnum.Sqrt(big)
	require.False(t, math.IsInf(r.Re(), 0))
	require.InEpsilon(t, 1e300, r.Times(r).Im(), 1e-12)
}

func TestEulerAndPolar(t *testing.T) {
	t.Parallel()

	e := complexnum.Euler(math.Pi / 2)
	require.InDelta(t, 0, e.Re(), 1e-16)
	require.Equal(t, 1.0, e.Im())

	p := complexnum.Polar(2, math.Pi/3)
	require.InDelta(t, 2.0, p.Modulus(), 1e-15)
	require.InDelta(t, math.Pi/3, p.Phase(), 1e-15)
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(1.5 + i2)", complexnum.New(1.5, 2).String())
	require.Equal(t, "(-1 - i0.25)", complexnum.New(-1, -0.25).String())
}
