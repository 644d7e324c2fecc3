// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/matrix"
)

func TestSymmetrize(t *testing.T) {
	s, err := matrix.Symmetrize(MustDenseFrom(t, [][]float64{{1, 2}, {4, 1}}))
	require.NoError(t, err)
	require.Equal(t, 3.0, MustAt(t, s, 0, 1))
	require.NoError(t, matrix.ValidateSymmetric(s, 0))

	_, err = matrix.Symmetrize(MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRowSums(t *testing.T) {
	sums, err := matrix.RowSums(MustDenseFrom(t, [][]float64{{1, 2, 3}, {-1, 0, 1}}))
	require.NoError(t, err)
	require.Equal(t, []float64{6, 0}, sums)
}

func TestAllClose(t *testing.T) {
	a := MustDenseFrom(t, [][]float64{{1, math.Inf(1)}})
	b := MustDenseFrom(t, [][]float64{{1 + 1e-10, math.Inf(1)}})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-11)
	require.NoError(t, err)
	require.False(t, ok)

	n := MustDenseFrom(t, [][]float64{{math.NaN(), 0}})
	ok, err = matrix.AllClose(n, n, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
