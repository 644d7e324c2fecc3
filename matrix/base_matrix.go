// SPDX-License-Identifier: MIT

// Package matrix - BaseMatrix, the generic rectangular matrix.
//
// Purpose:
//   - Share storage, indexing, arithmetic, norms, formatting and persistence
//     between every concrete matrix type.
//   - Return the caller's own concrete type from every non-mutating operation:
//     a concrete type M embeds BaseMatrix[M] and supplies a factory that
//     allocates a fresh M of a requested shape.
//
// Contract:
//   - Construct through NewBaseMatrix / NewSquareMatrix; the zero value has no storage.
//   - Non-mutating operations never touch their operands.
//   - In-place operations (*Equals, Set*) validate everything first, so a
//     failed call leaves the receiver unchanged.
//   - Comparison is tolerant only (IsApproxEqual); there is no strict equality
//     at this level.
//
// AI-Hints:
//   - Methods cannot carry extra type parameters in Go; the vector actions
//     (MulVec, Solve, OuterProd) are package-level generics in generic.go.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xalmath/elementary"
)

// method tags used in error wrappers
const (
	ctxBase         = "BaseMatrix"
	ctxSetSub       = ctxBase + ".SetSubMatrix"
	ctxSetMatrix    = ctxBase + ".SetMatrix"
	ctxSetString    = ctxBase + ".SetMatrixString"
	ctxPlus         = ctxBase + ".Plus"
	ctxMinus        = ctxBase + ".Minus"
	ctxTimesMatrix  = ctxBase + ".TimesMatrix"
	ctxMulElem      = ctxBase + ".MulElem"
	ctxBaseInverse  = ctxBase + ".Inverse"
	ctxCondition    = ctxBase + ".ConditionNumber"
	ctxBaseNorm2    = ctxBase + ".Norm2"
	ctxLoad         = "Load"
	panicFactoryNil = "matrix: factory returned nil storage"
	panicFactoryDim = "matrix: factory returned an instance of the wrong shape"
)

// BaseMatrix is the generic storage and algebra shared by every matrix type.
// M is the concrete type that embeds it (usually a pointer, e.g. *RealMatrix).
type BaseMatrix[M MatrixKind] struct {
	store *Dense
	alloc func(rows, cols int) M
}

// NewBaseMatrix returns a zero rows×cols base with the given factory.
//
// alloc(rows, cols) MUST return a fresh M whose storage has exactly that
// shape; it is how Plus/Transpose/Copy produce results of the concrete type.
//
// Errors:
//   - ErrInvalidDimensions for non-positive dimensions.
func NewBaseMatrix[M MatrixKind](rows, cols int, alloc func(rows, cols int) M, opts ...Option) (BaseMatrix[M], error) {
	d, err := NewDense(rows, cols, opts...)
	if err != nil {
		return BaseMatrix[M]{}, matrixErrorf(ctxBase, err)
	}

	return BaseMatrix[M]{store: d, alloc: alloc}, nil
}

func (b *BaseMatrix[M]) dense() *Dense { return b.store }

// newResult allocates a zero M of the given shape through the factory.
func (b *BaseMatrix[M]) newResult(rows, cols int) M {
	res := b.alloc(rows, cols)
	d := res.dense()
	if d == nil {
		panic(panicFactoryNil)
	}
	if d.r != rows || d.c != cols {
		panic(panicFactoryDim)
	}

	return res
}

// Rows returns the row count.
func (b *BaseMatrix[M]) Rows() int { return b.store.r }

// Cols returns the column count.
func (b *BaseMatrix[M]) Cols() int { return b.store.c }

// At returns element (i, j); ErrOutOfRange on bad indices.
func (b *BaseMatrix[M]) At(i, j int) (float64, error) { return b.store.At(i, j) }

// AtIndex returns the element addressed by two enumerated indices.
func (b *BaseMatrix[M]) AtIndex(i, j IIndex) (float64, error) { return b.store.At(i.Val(), j.Val()) }

// Set assigns element (i, j); ErrOutOfRange / ErrNaNInf on violation.
func (b *BaseMatrix[M]) Set(i, j int, v float64) error { return b.store.Set(i, j, v) }

// SetIndex assigns the element addressed by two enumerated indices.
func (b *BaseMatrix[M]) SetIndex(i, j IIndex, v float64) error {
	return b.store.Set(i.Val(), j.Val(), v)
}

// SetSubMatrix overwrites the block of rows i0..i1 and columns j0..j1
// (inclusive) with the leading entries of block.
// Implementation:
//   - Stage 1: the region must lie inside the matrix (ErrOutOfRange).
//   - Stage 2: block must cover the region, extra rows/cols are ignored (ErrBadShape).
//   - Stage 3: finite policy over the copied entries, then write through a View.
//
// Behavior highlights:
//   - All-or-nothing: nothing is written unless every check passes.
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (b *BaseMatrix[M]) SetSubMatrix(i0, i1, j0, j1 int, block [][]float64) error {
	if i0 < 0 || j0 < 0 || i1 < i0 || j1 < j0 || i1 >= b.store.r || j1 >= b.store.c {
		return matrixErrorf(ctxSetSub, fmt.Errorf("region [%d:%d,%d:%d] of %dx%d: %w",
			i0, i1, j0, j1, b.store.r, b.store.c, ErrOutOfRange))
	}
	h, w := i1-i0+1, j1-j0+1
	if len(block) < h {
		return matrixErrorf(ctxSetSub, fmt.Errorf("%d rows for %d: %w", len(block), h, ErrBadShape))
	}
	for i := 0; i < h; i++ {
		if len(block[i]) < w {
			return matrixErrorf(ctxSetSub, fmt.Errorf("row %d has %d values for %d: %w", i, len(block[i]), w, ErrBadShape))
		}
		if b.store.validateNaNInf {
			for j := 0; j < w; j++ {
				if !isFinite(block[i][j]) {
					return matrixErrorf(ctxSetSub, denseErrorf(ctxSet, i0+i, j0+j, ErrNaNInf))
				}
			}
		}
	}

	view, err := b.store.View(i0, j0, h, w)
	if err != nil {
		return matrixErrorf(ctxSetSub, err)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if err = view.Set(i, j, block[i][j]); err != nil {
				return matrixErrorf(ctxSetSub, err)
			}
		}
	}

	return nil
}

// SetMatrix replaces every element from a 2-D slice of exactly the same shape.
//
// Errors:
//   - ErrDimensionMismatch when the slice shape differs (ragged rows included).
//   - ErrNaNInf under the finite policy.
func (b *BaseMatrix[M]) SetMatrix(vals [][]float64) error {
	if len(vals) != b.store.r {
		return matrixErrorf(ctxSetMatrix, fmt.Errorf("%d rows for %dx%d: %w", len(vals), b.store.r, b.store.c, ErrDimensionMismatch))
	}
	for i, row := range vals {
		if len(row) != b.store.c {
			return matrixErrorf(ctxSetMatrix, fmt.Errorf("row %d has %d values for %dx%d: %w", i, len(row), b.store.r, b.store.c, ErrDimensionMismatch))
		}
	}
	if err := b.store.setRows(vals); err != nil {
		return matrixErrorf(ctxSetMatrix, err)
	}

	return nil
}

// SetMatrixString replaces every element from a token string read in
// row-major order, e.g. "{ {1 2}{3 4} }" or "1,2,3,4".
//
// Errors:
//   - ErrTokenCount, ErrParse, ErrNaNInf (policy).
func (b *BaseMatrix[M]) SetMatrixString(s string) error {
	vals, err := parseTokens(s, len(b.store.data), b.store.validateNaNInf)
	if err != nil {
		return matrixErrorf(ctxSetString, err)
	}
	copy(b.store.data, vals)

	return nil
}

// Array returns a deep copy of the elements as a 2-D slice.
func (b *BaseMatrix[M]) Array() [][]float64 { return b.store.rowsCopy() }

// Copy returns a deep copy of the concrete type.
func (b *BaseMatrix[M]) Copy() M {
	res := b.newResult(b.store.r, b.store.c)
	res.dense().copyFrom(b.store)

	return res
}

// AssignZero sets every element to 0.
func (b *BaseMatrix[M]) AssignZero() { b.store.zero() }

// Plus returns b + o.
//
// Errors:
//   - ErrDimensionMismatch when shapes differ.
func (b *BaseMatrix[M]) Plus(o M) (M, error) { return b.addSub(o, +1, ctxPlus) }

// Minus returns b - o.
//
// Errors:
//   - ErrDimensionMismatch when shapes differ.
func (b *BaseMatrix[M]) Minus(o M) (M, error) { return b.addSub(o, -1, ctxMinus) }

func (b *BaseMatrix[M]) addSub(o M, sign float64, tag string) (M, error) {
	od := o.dense()
	if err := ValidateSameShape(b.store, od); err != nil {
		var zero M
		return zero, matrixErrorf(tag, err)
	}
	res := b.newResult(b.store.r, b.store.c)
	addSubInto(res.dense(), b.store, od, sign)

	return res, nil
}

// PlusEquals adds o into b in place.
func (b *BaseMatrix[M]) PlusEquals(o M) error {
	od := o.dense()
	if err := ValidateSameShape(b.store, od); err != nil {
		return matrixErrorf(ctxPlus, err)
	}
	addSubInto(b.store, b.store, od, +1)

	return nil
}

// MinusEquals subtracts o from b in place.
func (b *BaseMatrix[M]) MinusEquals(o M) error {
	od := o.dense()
	if err := ValidateSameShape(b.store, od); err != nil {
		return matrixErrorf(ctxMinus, err)
	}
	addSubInto(b.store, b.store, od, -1)

	return nil
}

// Times returns s·b.
func (b *BaseMatrix[M]) Times(s float64) M {
	res := b.Copy()
	scaleInPlace(res.dense(), s)

	return res
}

// TimesEquals scales b by s in place.
func (b *BaseMatrix[M]) TimesEquals(s float64) { scaleInPlace(b.store, s) }

// TimesMatrix returns the matrix product b·o; b.Cols() must equal o.Rows().
// The product is allocated through the factory with shape (b.Rows(), o.Cols()).
//
// Errors:
//   - ErrDimensionMismatch for incompatible inner dimensions.
func (b *BaseMatrix[M]) TimesMatrix(o M) (M, error) {
	od := o.dense()
	if err := ValidateMulCompatible(b.store, od); err != nil {
		var zero M
		return zero, matrixErrorf(ctxTimesMatrix, err)
	}
	res := b.newResult(b.store.r, od.c)
	mulInto(res.dense(), b.store, od)

	return res, nil
}

// MulElem returns the element-wise (Hadamard) product.
//
// Errors:
//   - ErrDimensionMismatch when shapes differ.
func (b *BaseMatrix[M]) MulElem(o M) (M, error) {
	od := o.dense()
	if err := ValidateSameShape(b.store, od); err != nil {
		var zero M
		return zero, matrixErrorf(ctxMulElem, err)
	}
	res := b.Copy()
	hadamardInPlace(res.dense(), od)

	return res, nil
}

// Transpose returns bᵀ.
func (b *BaseMatrix[M]) Transpose() M {
	res := b.newResult(b.store.c, b.store.r)
	transposeInto(res.dense(), b.store)

	return res
}

// Inverse returns b⁻¹.
//
// Errors:
//   - ErrNonSquare for rectangular matrices.
//   - ErrSingular for exactly singular ones; ErrNaNInf for non-finite data.
func (b *BaseMatrix[M]) Inverse() (M, error) {
	var zero M
	if err := ValidateSquare(b.store); err != nil {
		return zero, matrixErrorf(ctxBaseInverse, err)
	}
	inv, err := Inverse(b.store)
	if err != nil {
		return zero, matrixErrorf(ctxBaseInverse, err)
	}
	res := b.newResult(b.store.r, b.store.c)
	res.dense().copyFrom(inv)

	return res, nil
}

// ConditionNumber returns σmax/σmin from the singular value decomposition.
// A singular matrix yields +Inf.
func (b *BaseMatrix[M]) ConditionNumber() (float64, error) {
	c, err := Cond(b.store)
	if err != nil {
		return 0, matrixErrorf(ctxCondition, err)
	}

	return c, nil
}

// IsApproxEqual compares element-wise within DefaultULPs units in the last place.
func (b *BaseMatrix[M]) IsApproxEqual(o M) bool { return b.IsApproxEqualULPs(o, DefaultULPs) }

// IsApproxEqualULPs compares element-wise within ulps units in the last place.
// Matrices of different shapes are never equal.
func (b *BaseMatrix[M]) IsApproxEqualULPs(o M, ulps int) bool {
	od := o.dense()
	if od.r != b.store.r || od.c != b.store.c {
		return false
	}
	for k, v := range b.store.data {
		if !elementary.ApproxEqULPs(v, od.data[k], ulps) {
			return false
		}
	}

	return true
}

// Max returns max |M[i,j]|.
// Not a matrix norm: it is not sub-multiplicative.
func (b *BaseMatrix[M]) Max() float64 {
	maxAbs := NormZero
	b.store.Do(func(_, _ int, v float64) bool {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}

		return true
	})

	return maxAbs
}

// Norm1 returns the maximum absolute column sum.
func (b *BaseMatrix[M]) Norm1() float64 {
	n, _ := Norm1(b.store)

	return n
}

// NormInf returns the maximum absolute row sum.
func (b *BaseMatrix[M]) NormInf() float64 {
	n, _ := NormInf(b.store)

	return n
}

// NormF returns the Frobenius norm.
func (b *BaseMatrix[M]) NormF() float64 {
	n, _ := NormF(b.store)

	return n
}

// Norm2 returns the largest singular value.
func (b *BaseMatrix[M]) Norm2() (float64, error) {
	n, err := Norm2(b.store)
	if err != nil {
		return 0, matrixErrorf(ctxBaseNorm2, err)
	}

	return n, nil
}

// String renders "{ { a b }{ c d } }"; SetMatrixString reads it back exactly.
func (b *BaseMatrix[M]) String() string { return formatMatrix(b.store) }

// StringMatrix renders one row per line in scientific notation with prec
// fractional digits.
func (b *BaseMatrix[M]) StringMatrix(prec int) string { return formatTable(b.store, prec) }

// Hash folds the IEEE bit patterns of the elements, row-major (bits·31 + next).
// Equal element patterns give equal hashes.
func (b *BaseMatrix[M]) Hash() uint64 { return hashBits(b.store.data) }

// Save writes the token string under AttrValues.
func (b *BaseMatrix[M]) Save(da DataAdaptor) { da.SetValue(AttrValues, b.String()) }

// Load restores the elements from AttrValues. A missing key leaves the matrix
// unchanged and is not an error.
//
// Errors:
//   - ErrDataFormat joined with the parse cause (ErrTokenCount, ErrParse, ErrNaNInf).
func (b *BaseMatrix[M]) Load(da DataAdaptor) error {
	s, ok := da.GetValue(AttrValues)
	if !ok {
		return nil
	}
	if err := b.SetMatrixString(s); err != nil {
		return matrixErrorf(ctxLoad, fmt.Errorf("%w: %w", ErrDataFormat, err))
	}

	return nil
}

func hashBits(data []float64) uint64 {
	var bits uint64
	for _, v := range data {
		bits = bits*31 + math.Float64bits(v)
	}

	return bits
}
