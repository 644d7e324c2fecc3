// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/matrix"
)

func TestColumnStatistics(t *testing.T) {
	X := MustDenseFrom(t, [][]float64{{1, 2}, {3, 6}, {5, 10}})

	means, err := matrix.ColumnMeans(X)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, means)

	xc, m2, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	require.Equal(t, means, m2)
	require.Equal(t, -2.0, MustAt(t, xc, 0, 0))
	require.Equal(t, 4.0, MustAt(t, xc, 2, 1))
	require.Equal(t, 1.0, MustAt(t, X, 0, 0))

	S, err := matrix.SecondMoments(X)
	require.NoError(t, err)
	require.InDelta(t, 35.0/3, MustAt(t, S, 0, 0), 1e-14)
	require.InDelta(t, 70.0/3, MustAt(t, S, 0, 1), 1e-14)
	require.Equal(t, MustAt(t, S, 0, 1), MustAt(t, S, 1, 0))

	cov, _, err := matrix.Covariance(X)
	require.NoError(t, err)
	RequireClose(t, MustDenseFrom(t, [][]float64{{4, 8}, {8, 16}}), cov, 1e-13)

	// Fallback path gives the same moments.
	S2, err := matrix.SecondMoments(hide{X})
	require.NoError(t, err)
	RequireClose(t, S, S2, 0)
}

func TestColumnStatisticsErrors(t *testing.T) {
	_, err := matrix.ColumnMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.Covariance(MustDense(t, 1, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
