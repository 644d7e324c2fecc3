// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/matrix"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDenseAtSet(t *testing.T) {
	m := MustDense(t, 2, 3)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 0.0, MustAt(t, m, 1, 2))

	require.NoError(t, m.Set(1, 2, 7.5))
	require.Equal(t, 7.5, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDenseNaNPolicy(t *testing.T) {
	lax := MustDense(t, 1, 1)
	require.NoError(t, lax.Set(0, 0, math.NaN()))

	strict, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, strict, 0, 0))

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Derived results keep the policy.
	cp := strict.Clone()
	require.ErrorIs(t, cp.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestDenseCloneIndependence(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 100))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestDenseView(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	x, err := v.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, x)
	require.NoError(t, v.Set(0, 0, -5))
	require.Equal(t, -5.0, MustAt(t, m, 1, 1))
	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.View(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	strict, err := matrix.NewDense(2, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	sv, err := strict.View(0, 0, 1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, sv.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestDenseDoStopsEarly(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)

		return v < 2
	})
	require.Equal(t, []float64{1, 2}, seen)
}

func TestDenseString(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2.5}})
	require.Equal(t, "{ { 1 2.5 } }", m.String())
}
