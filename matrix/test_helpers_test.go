// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and the generic base types.
//   - Keep all data finite and well-formed unless a test is about the NaN/Inf policy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xalmath/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Kernels fast-path *Dense; hide{X} forces the interface fallback.
type hide struct{ matrix.Matrix }

// mapAdaptor is an in-memory DataAdaptor.
type mapAdaptor map[string]string

func (m mapAdaptor) SetValue(key, value string) { m[key] = value }

func (m mapAdaptor) GetValue(key string) (string, bool) {
	v, ok := m[key]

	return v, ok
}

// axis is a tiny IIndex used to exercise the indexed accessors.
type axis int

func (a axis) Val() int { return int(a) }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustDenseFrom builds a *Dense from rows or fails the test.
func MustDenseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustReal builds a RealMatrix from rows or fails the test.
func MustReal(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.RealMatrix {
	t.Helper()
	m, err := matrix.NewRealMatrixFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustSquare builds a RealSquareMatrix from rows or fails the test.
func MustSquare(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.RealSquareMatrix {
	t.Helper()
	m, err := matrix.NewRealSquareMatrixFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustVector builds a RealVector from values or fails the test.
func MustVector(t testing.TB, vals ...float64) *matrix.RealVector {
	t.Helper()
	v, err := matrix.NewRealVectorFrom(vals)
	require.NoError(t, err)

	return v
}

// RequireClose fails unless a and b agree element-wise within tol.
func RequireClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g", tol)
}

// fillDenseRand fills m with values in [-1,1) from a seeded source.
func fillDenseRand(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}

// diagDominant returns a random n×n matrix made strictly diagonally dominant,
// hence non-singular and well-conditioned.
func diagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	fillDenseRand(t, m, seed)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, float64(n)+1))
	}

	return m
}
