// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/matrix"
)

func TestValidateSameShape(t *testing.T) {
	a, b := MustDense(t, 2, 3), MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, b))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nilDense), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLenIndex(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateIndex(0, 1))
	require.ErrorIs(t, matrix.ValidateIndex(1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(-1, 1), matrix.ErrOutOfRange)
}

func TestValidateSymmetric(t *testing.T) {
	sym := MustDenseFrom(t, [][]float64{{2, 1}, {1, 3}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	near := MustDenseFrom(t, [][]float64{{2, 1}, {1 + 1e-9, 3}})
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-8))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-8))

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)

	withNaN := MustDenseFrom(t, [][]float64{{0, math.NaN()}, {math.NaN(), 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(withNaN, 1), matrix.ErrAsymmetry)
}

func TestIsZeroOffDiagonal(t *testing.T) {
	ok, err := matrix.IsZeroOffDiagonal(MustDenseFrom(t, [][]float64{{5, 1e-13}, {0, 2}}), 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsZeroOffDiagonal(MustDenseFrom(t, [][]float64{{5, 1}, {0, 2}}), 1e-12)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}
