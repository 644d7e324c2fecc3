// SPDX-License-Identifier: MIT

// Package matrix - BaseVector, the generic column vector.
//
// Purpose:
//   - Share storage (an n×1 Dense), indexing, arithmetic, norms, matrix
//     actions, formatting and persistence between every concrete vector type.
//   - Level-1 arithmetic runs through gonum's blas64 (Dot, Axpy, Scal, Asum, Iamax).
//
// Contract:
//   - Equality is strict only (IsEquivalentTo, bit-identical components);
//     there is no tolerant comparison at this level.
//   - Norm2 is the SUM OF SQUARES (no square root). Take math.Sqrt of it for
//     the Euclidean length.
//   - RightMultiply computes Σⱼ M[i,j]·v[i] (the i-th component scaled by
//     the i-th row sum). Use MulVec for the true product M·v.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

const (
	ctxVector        = "BaseVector"
	ctxVecPlus       = ctxVector + ".Plus"
	ctxVecMinus      = ctxVector + ".Minus"
	ctxVecInner      = ctxVector + ".InnerProd"
	ctxVecLeft       = ctxVector + ".LeftMultiply"
	ctxVecRight      = ctxVector + ".RightMultiply"
	ctxVecProject    = ctxVector + ".ProjectOnto"
	ctxVecEmbed      = ctxVector + ".EmbedIn"
	ctxVecSetArray   = ctxVector + ".SetArray"
	ctxVecSetString  = ctxVector + ".SetVector"
	panicVecFactory  = "matrix: vector factory returned an instance of the wrong size"
	panicVecNilStore = "matrix: vector factory returned nil storage"
)

// BaseVector is the generic storage and algebra shared by every vector type.
// V is the concrete type that embeds it (usually a pointer, e.g. *RealVector).
type BaseVector[V VectorKind] struct {
	store *Dense // size×1
	alloc func(size int) V
}

// NewBaseVector returns a zero vector base of the given size.
// alloc(size) MUST return a fresh V of exactly that size.
//
// Errors:
//   - ErrInvalidDimensions for size <= 0.
func NewBaseVector[V VectorKind](size int, alloc func(size int) V, opts ...Option) (BaseVector[V], error) {
	d, err := NewDense(size, 1, opts...)
	if err != nil {
		return BaseVector[V]{}, matrixErrorf(ctxVector, err)
	}

	return BaseVector[V]{store: d, alloc: alloc}, nil
}

func (b *BaseVector[V]) column() *Dense { return b.store }

func (b *BaseVector[V]) newResult() V {
	res := b.alloc(b.store.r)
	col := res.column()
	if col == nil {
		panic(panicVecNilStore)
	}
	if col.r != b.store.r {
		panic(panicVecFactory)
	}

	return res
}

// blas wraps a flat buffer as a unit-stride blas64 vector.
func blas(data []float64) blas64.Vector {
	return blas64.Vector{N: len(data), Data: data, Inc: 1}
}

// Size returns the number of components.
func (b *BaseVector[V]) Size() int { return b.store.r }

// At returns component i; ErrOutOfRange on a bad index.
func (b *BaseVector[V]) At(i int) (float64, error) { return b.store.At(i, 0) }

// AtIndex returns the component addressed by an enumerated index.
func (b *BaseVector[V]) AtIndex(i IIndex) (float64, error) { return b.store.At(i.Val(), 0) }

// Set assigns component i.
func (b *BaseVector[V]) Set(i int, v float64) error { return b.store.Set(i, 0, v) }

// SetIndex assigns the component addressed by an enumerated index.
func (b *BaseVector[V]) SetIndex(i IIndex, v float64) error { return b.store.Set(i.Val(), 0, v) }

// Array returns a copy of the components.
func (b *BaseVector[V]) Array() []float64 {
	out := make([]float64, b.store.r)
	copy(out, b.store.data)

	return out
}

// SetArray replaces every component; len(vals) must equal Size().
//
// Errors:
//   - ErrDimensionMismatch, ErrNaNInf (policy).
func (b *BaseVector[V]) SetArray(vals []float64) error {
	if err := ValidateVecLen(vals, b.store.r); err != nil {
		return matrixErrorf(ctxVecSetArray, err)
	}
	if b.store.validateNaNInf {
		for i, v := range vals {
			if !isFinite(v) {
				return matrixErrorf(ctxVecSetArray, denseErrorf(ctxSet, i, 0, ErrNaNInf))
			}
		}
	}
	copy(b.store.data, vals)

	return nil
}

// SetVector replaces every component from a token string such as "{ 1 2 3 }".
//
// Errors:
//   - ErrTokenCount, ErrParse, ErrNaNInf (policy).
func (b *BaseVector[V]) SetVector(s string) error {
	vals, err := parseTokens(s, b.store.r, b.store.validateNaNInf)
	if err != nil {
		return matrixErrorf(ctxVecSetString, err)
	}
	copy(b.store.data, vals)

	return nil
}

// Copy returns a deep copy of the concrete type.
func (b *BaseVector[V]) Copy() V {
	res := b.newResult()
	res.column().copyFrom(b.store)

	return res
}

// AssignZero sets every component to 0.
func (b *BaseVector[V]) AssignZero() { b.store.zero() }

// AssignUnity sets every component to 1.
func (b *BaseVector[V]) AssignUnity() {
	for i := range b.store.data {
		b.store.data[i] = 1
	}
}

func (b *BaseVector[V]) sameSize(o VectorKind, tag string) error {
	if o.Size() != b.store.r {
		return matrixErrorf(tag, fmt.Errorf("sizes %d and %d: %w", b.store.r, o.Size(), ErrDimensionMismatch))
	}

	return nil
}

// Plus returns b + o.
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
func (b *BaseVector[V]) Plus(o V) (V, error) {
	if err := b.sameSize(o, ctxVecPlus); err != nil {
		var zero V
		return zero, err
	}
	res := b.Copy()
	blas64.Axpy(1, blas(o.column().data), blas(res.column().data))

	return res, nil
}

// PlusEquals adds o in place.
func (b *BaseVector[V]) PlusEquals(o V) error {
	if err := b.sameSize(o, ctxVecPlus); err != nil {
		return err
	}
	blas64.Axpy(1, blas(o.column().data), blas(b.store.data))

	return nil
}

// Minus returns b - o.
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
func (b *BaseVector[V]) Minus(o V) (V, error) {
	if err := b.sameSize(o, ctxVecMinus); err != nil {
		var zero V
		return zero, err
	}
	res := b.Copy()
	blas64.Axpy(-1, blas(o.column().data), blas(res.column().data))

	return res, nil
}

// MinusEquals subtracts o in place.
func (b *BaseVector[V]) MinusEquals(o V) error {
	if err := b.sameSize(o, ctxVecMinus); err != nil {
		return err
	}
	blas64.Axpy(-1, blas(o.column().data), blas(b.store.data))

	return nil
}

// Times returns s·b.
func (b *BaseVector[V]) Times(s float64) V {
	res := b.Copy()
	blas64.Scal(s, blas(res.column().data))

	return res
}

// TimesEquals scales in place.
func (b *BaseVector[V]) TimesEquals(s float64) { blas64.Scal(s, blas(b.store.data)) }

// Negate returns -b.
func (b *BaseVector[V]) Negate() V { return b.Times(-1) }

// NegateEquals negates in place.
func (b *BaseVector[V]) NegateEquals() { b.TimesEquals(-1) }

// InnerProd returns Σ b[i]·o[i].
//
// Errors:
//   - ErrDimensionMismatch when sizes differ.
func (b *BaseVector[V]) InnerProd(o V) (float64, error) {
	if err := b.sameSize(o, ctxVecInner); err != nil {
		return 0, err
	}

	return blas64.Dot(blas(b.store.data), blas(o.column().data)), nil
}

// checkAction validates a square matrix of matching size for the vector actions.
func (b *BaseVector[V]) checkAction(m MatrixKind, tag string) (*Dense, error) {
	md := m.dense()
	if err := ValidateSquare(md); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if md.r != b.store.r {
		return nil, matrixErrorf(tag, fmt.Errorf("matrix %dx%d for vector of size %d: %w", md.r, md.c, b.store.r, ErrDimensionMismatch))
	}

	return md, nil
}

// LeftMultiply returns vᵀ·M as a vector: result[j] = Σᵢ M[i,j]·v[i].
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch.
func (b *BaseVector[V]) LeftMultiply(m MatrixKind) (V, error) {
	md, err := b.checkAction(m, ctxVecLeft)
	if err != nil {
		var zero V
		return zero, err
	}
	n := b.store.r
	res := b.newResult()
	out := res.column().data
	var i, j int
	var sum float64
	for j = 0; j < n; j++ {
		sum = ZeroSum
		for i = 0; i < n; i++ {
			sum += md.data[i*n+j] * b.store.data[i]
		}
		out[j] = sum
	}

	return res, nil
}

// RightMultiply returns result[i] = Σⱼ M[i,j]·v[i].
// Note the repeated v[i]: each component is scaled by its row sum. This is
// not M·v; use MulVec for the matrix-vector product.
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch.
func (b *BaseVector[V]) RightMultiply(m MatrixKind) (V, error) {
	md, err := b.checkAction(m, ctxVecRight)
	if err != nil {
		var zero V
		return zero, err
	}
	n := b.store.r
	res := b.newResult()
	out := res.column().data
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < n; j++ {
			sum += md.data[i*n+j] * b.store.data[i]
		}
		out[i] = sum
	}

	return res, nil
}

// ProjectOnto copies the leading target.Size() components into target.
//
// Errors:
//   - ErrDimensionMismatch when target is larger than this vector.
func (b *BaseVector[V]) ProjectOnto(target VectorKind) error {
	tc := target.column()
	if tc.r > b.store.r {
		return matrixErrorf(ctxVecProject, fmt.Errorf("target size %d exceeds %d: %w", tc.r, b.store.r, ErrDimensionMismatch))
	}
	copy(tc.data, b.store.data[:tc.r])

	return nil
}

// EmbedIn copies every component into the leading positions of target.
//
// Errors:
//   - ErrDimensionMismatch when target is smaller than this vector.
func (b *BaseVector[V]) EmbedIn(target VectorKind) error {
	tc := target.column()
	if tc.r < b.store.r {
		return matrixErrorf(ctxVecEmbed, fmt.Errorf("target size %d below %d: %w", tc.r, b.store.r, ErrDimensionMismatch))
	}
	copy(tc.data[:b.store.r], b.store.data)

	return nil
}

// Norm1 returns Σ |v[i]|.
func (b *BaseVector[V]) Norm1() float64 { return blas64.Asum(blas(b.store.data)) }

// Norm2 returns Σ v[i]² (the squared Euclidean length).
func (b *BaseVector[V]) Norm2() float64 {
	x := blas(b.store.data)

	return blas64.Dot(x, x)
}

// NormInf returns max |v[i]|.
func (b *BaseVector[V]) NormInf() float64 {
	return math.Abs(b.store.data[blas64.Iamax(blas(b.store.data))])
}

// IsEquivalentTo reports bit-identical components of equal-size vectors.
func (b *BaseVector[V]) IsEquivalentTo(o V) bool {
	oc := o.column()
	if oc.r != b.store.r {
		return false
	}
	for i, v := range b.store.data {
		if v != oc.data[i] {
			return false
		}
	}

	return true
}

// String renders "{ e0 e1  }"; SetVector reads it back exactly.
func (b *BaseVector[V]) String() string { return formatVector(b.store) }

// Hash folds the IEEE bit patterns of the components.
func (b *BaseVector[V]) Hash() uint64 { return hashBits(b.store.data) }

// Save writes the token string under AttrValues.
func (b *BaseVector[V]) Save(da DataAdaptor) { da.SetValue(AttrValues, b.String()) }

// Load restores the components from AttrValues. A missing key leaves the
// vector unchanged and is not an error.
//
// Errors:
//   - ErrDataFormat joined with the parse cause.
func (b *BaseVector[V]) Load(da DataAdaptor) error {
	s, ok := da.GetValue(AttrValues)
	if !ok {
		return nil
	}
	if err := b.SetVector(s); err != nil {
		return matrixErrorf(ctxLoad, fmt.Errorf("%w: %w", ErrDataFormat, err))
	}

	return nil
}
