// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the canonical Dense kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDenseFrom(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 44.0, MustAt(t, sum, 1, 1))

	diff, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	RequireClose(t, a, diff, 0)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulKnown(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustDenseFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := MustDenseFrom(t, [][]float64{{58, 64}, {139, 154}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireClose(t, want, got, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScaleHadamard(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3.0, MustAt(t, at, 0, 1))
	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	RequireClose(t, a, att, 0)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, -8.0, MustAt(t, s, 1, 1))

	h, err := matrix.Hadamard(a, a)
	require.NoError(t, err)
	require.Equal(t, 9.0, MustAt(t, h, 1, 0))
}

func TestMatVec(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKernels_InterfaceFallback ensures that hiding the concrete type forces
// the interface path and yields bit-identical results.
func TestKernels_InterfaceFallback(t *testing.T) {
	for _, n := range []int{3, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a, b := MustDense(t, n, n), MustDense(t, n, n)
			fillDenseRand(t, a, 11)
			fillDenseRand(t, b, 17)

			fast, err := matrix.Mul(a, b)
			require.NoError(t, err)
			slow, err := matrix.Mul(hide{a}, hide{b})
			require.NoError(t, err)
			RequireClose(t, fast, slow, 0)

			fastT, err := matrix.Transpose(a)
			require.NoError(t, err)
			slowT, err := matrix.Transpose(hide{a})
			require.NoError(t, err)
			RequireClose(t, fastT, slowT, 0)

			fastS, err := matrix.Add(a, b)
			require.NoError(t, err)
			slowS, err := matrix.Add(hide{a}, b)
			require.NoError(t, err)
			RequireClose(t, fastS, slowS, 0)
		})
	}
}
