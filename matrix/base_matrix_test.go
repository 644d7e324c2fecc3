// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/xalmath/matrix"
)

// BaseMatrixSuite exercises the generic base through RealMatrix and
// RealSquareMatrix against a shared 2×2 fixture A = [[1,2],[3,4]].
type BaseMatrixSuite struct {
	suite.Suite
	A *matrix.RealSquareMatrix
}

func (s *BaseMatrixSuite) SetupTest() {
	s.A = MustSquare(s.T(), [][]float64{{1, 2}, {3, 4}})
}

func (s *BaseMatrixSuite) TestConstructors() {
	t := s.T()
	_, err := matrix.NewRealMatrix(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewRealSquareMatrix(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewRealSquareMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.NewRealMatrixFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	I, err := matrix.IdentityRealSquareMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 3, I.Size())
	require.Equal(t, 1.0, MustAt(t, I, 2, 2))
	require.Equal(t, 0.0, MustAt(t, I, 0, 2))
}

// TestTokenRoundTrip covers the "{ { a b }{ c d } }" string form.
func (s *BaseMatrixSuite) TestTokenRoundTrip() {
	t := s.T()
	require.Equal(t, "{ { 1 2 }{ 3 4 } }", s.A.String())

	m, err := matrix.ParseRealSquareMatrix(2, "{ 1 2 3 4 }")
	require.NoError(t, err)
	require.True(t, s.A.IsApproxEqualULPs(m, 0))

	m, err = matrix.ParseRealSquareMatrix(2, "[1, 2] (3, 4)")
	require.NoError(t, err)
	require.True(t, s.A.IsApproxEqualULPs(m, 0))

	odd := MustSquare(t, [][]float64{{0.1, -1e-300}, {math.Pi, 1.0 / 3}})
	back, err := matrix.ParseRealSquareMatrix(2, odd.String())
	require.NoError(t, err)
	require.Equal(t, odd.Array(), back.Array())
	require.Equal(t, odd.Hash(), back.Hash())

	_, err = matrix.ParseRealSquareMatrix(2, "{1 2 3}")
	require.ErrorIs(t, err, matrix.ErrTokenCount)
	_, err = matrix.ParseRealSquareMatrix(2, "{1 2 3 x}")
	require.ErrorIs(t, err, matrix.ErrParse)

	// Overflowing literals are accepted as ±Inf unless the finite policy is on.
	big, err := matrix.ParseRealSquareMatrix(1, "1e400")
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, big, 0, 0), 1))
	_, err = matrix.ParseRealSquareMatrix(1, "1e400", matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func (s *BaseMatrixSuite) TestArithmeticReturnsConcreteType() {
	t := s.T()
	B := MustSquare(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := s.A.Plus(B)
	require.NoError(t, err)
	back, err := sum.Minus(B)
	require.NoError(t, err)
	require.True(t, back.IsApproxEqual(s.A))
	require.Equal(t, 2, back.Size())

	prod, err := s.A.TimesMatrix(B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, prod.Array())

	had, err := s.A.MulElem(B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 12}, {21, 32}}, had.Array())

	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, s.A.Times(2).Array())
	require.Equal(t, 3.0, MustAt(t, s.A.Transpose(), 0, 1))
	require.True(t, s.A.Transpose().Transpose().IsApproxEqualULPs(s.A, 0))

	// Receiver untouched by value-returning operations.
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, s.A.Array())
}

func (s *BaseMatrixSuite) TestInPlace() {
	t := s.T()
	B := MustSquare(t, [][]float64{{1, 1}, {1, 1}})
	require.NoError(t, s.A.PlusEquals(B))
	require.Equal(t, 5.0, MustAt(t, s.A, 1, 1))
	require.NoError(t, s.A.MinusEquals(B))
	s.A.TimesEquals(-1)
	require.Equal(t, -4.0, MustAt(t, s.A, 1, 1))
	s.A.AssignZero()
	require.Equal(t, 0.0, s.A.Max())
}

func (s *BaseMatrixSuite) TestShapeMismatch() {
	t := s.T()
	a := MustReal(t, [][]float64{{1, 2, 3}})
	b := MustReal(t, [][]float64{{1, 2}})
	_, err := a.Plus(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.MinusEquals(b), matrix.ErrDimensionMismatch)
	_, err = a.TimesMatrix(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.False(t, a.IsApproxEqual(b))

	// Rectangular product allocates the right shape through the factory.
	col := MustReal(t, [][]float64{{1}, {1}, {1}})
	p, err := a.TimesMatrix(col)
	require.NoError(t, err)
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 1, p.Cols())
	require.Equal(t, 6.0, MustAt(t, p, 0, 0))

	_, err = a.Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func (s *BaseMatrixSuite) TestInverseCondition() {
	t := s.T()
	M := MustSquare(t, [][]float64{{2, 1}, {1, 1}})
	inv, err := M.Inverse()
	require.NoError(t, err)
	prod, err := M.TimesMatrix(inv)
	require.NoError(t, err)
	I, err := matrix.IdentityRealSquareMatrix(2)
	require.NoError(t, err)
	RequireClose(t, I, prod, 1e-14)

	singular := MustSquare(t, [][]float64{{1, 2}, {2, 4}})
	_, err = singular.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	c, err := I.ConditionNumber()
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-15)
}

func (s *BaseMatrixSuite) TestNormsAndMax() {
	t := s.T()
	M := MustSquare(t, [][]float64{{1, -2}, {3, 4}})
	require.Equal(t, 6.0, M.Norm1())
	require.Equal(t, 7.0, M.NormInf())
	require.InDelta(t, math.Sqrt(30), M.NormF(), 1e-14)
	n2, err := M.Norm2()
	require.NoError(t, err)
	require.True(t, n2 <= M.NormF()+1e-14)
	require.Equal(t, 4.0, M.Max())
}

func (s *BaseMatrixSuite) TestSetSubMatrix() {
	t := s.T()
	m, err := matrix.NewRealMatrix(3, 4)
	require.NoError(t, err)

	require.NoError(t, m.SetSubMatrix(1, 2, 2, 3, [][]float64{{1, 2, 99}, {3, 4, 99}}))
	require.Equal(t, [][]float64{{0, 0, 0, 0}, {0, 0, 1, 2}, {0, 0, 3, 4}}, m.Array())

	require.ErrorIs(t, m.SetSubMatrix(2, 3, 0, 0, [][]float64{{1}, {1}}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSubMatrix(1, 0, 0, 0, [][]float64{{1}}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetSubMatrix(0, 1, 0, 1, [][]float64{{1, 1}}), matrix.ErrBadShape)
	require.ErrorIs(t, m.SetSubMatrix(0, 1, 0, 1, [][]float64{{1, 1}, {1}}), matrix.ErrBadShape)

	strict, err := matrix.NewRealMatrix(2, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.SetSubMatrix(0, 1, 0, 0, [][]float64{{1}, {math.NaN()}}), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, strict, 0, 0))
}

func (s *BaseMatrixSuite) TestSetMatrixAndIndex() {
	t := s.T()
	require.ErrorIs(t, s.A.SetMatrix([][]float64{{1, 2}}), matrix.ErrDimensionMismatch)
	require.NoError(t, s.A.SetMatrix([][]float64{{9, 8}, {7, 6}}))
	v, err := s.A.AtIndex(axis(1), axis(0))
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
	require.NoError(t, s.A.SetIndex(axis(0), axis(1), -1))
	require.Equal(t, -1.0, MustAt(t, s.A, 0, 1))
	_, err = s.A.AtIndex(axis(2), axis(0))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func (s *BaseMatrixSuite) TestCopyIndependence() {
	t := s.T()
	cp := s.A.Copy()
	require.NoError(t, cp.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, s.A, 0, 0))

	arr := s.A.Array()
	arr[0][0] = 42
	require.Equal(t, 1.0, MustAt(t, s.A, 0, 0))
}

func (s *BaseMatrixSuite) TestSaveLoad() {
	t := s.T()
	da := mapAdaptor{}
	s.A.Save(da)
	require.Equal(t, "{ { 1 2 }{ 3 4 } }", da[matrix.AttrValues])

	m, err := matrix.NewRealSquareMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Load(da))
	require.True(t, m.IsApproxEqualULPs(s.A, 0))

	// Missing key: no-op.
	require.NoError(t, m.Load(mapAdaptor{}))
	require.True(t, m.IsApproxEqualULPs(s.A, 0))

	err = m.Load(mapAdaptor{matrix.AttrValues: "{ 1 2 }"})
	require.ErrorIs(t, err, matrix.ErrDataFormat)
	require.ErrorIs(t, err, matrix.ErrTokenCount)
}

func (s *BaseMatrixSuite) TestStringMatrix() {
	out := s.A.StringMatrix(2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(s.T(), lines, 2)
	require.Equal(s.T(), "1.00e+00 2.00e+00", lines[0])
}

func (s *BaseMatrixSuite) TestHashAndApprox() {
	t := s.T()
	B := s.A.Copy()
	require.Equal(t, s.A.Hash(), B.Hash())
	require.NoError(t, B.Set(1, 1, math.Nextafter(4, 5)))
	require.NotEqual(t, s.A.Hash(), B.Hash())
	require.True(t, s.A.IsApproxEqual(B))
	require.False(t, s.A.IsApproxEqualULPs(B, 0))
}

func TestBaseMatrixSuite(t *testing.T) {
	suite.Run(t, new(BaseMatrixSuite))
}
