// SPDX-License-Identifier: MIT

// Package matrix - Dense, the owned row-major store behind every matrix and
// vector type.
//
// Layout:
//   - One flat []float64 of length r*c; element (i, j) lives at i*c + j.
//   - A vector is an n×1 Dense, so the same kernels serve both.
//   - Each BaseMatrix / BaseVector holds exactly one *Dense and never shares it;
//     Clone and every non-mutating operation allocate a fresh buffer.
//
// Policy:
//   - validateNaNInf is fixed at construction (WithValidateNaNInf) and travels
//     with every result derived from the store through like().
//
// Complexity quicksheet:
//   - NewDense / Clone: O(r*c); At / Set / View: O(1).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxView = "View"
)

// denseErrorf tags err with the accessor and the offending coordinates:
// "Dense.Set(2,5): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the row-major backing store.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // reject NaN/±Inf on every write
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an r×c zero store.
//
// Errors:
//   - ErrInvalidDimensions unless rows and cols are both positive.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return allocDense(rows, cols, o.validateNaNInf), nil
}

// NewDenseFromRows copies a rectangular 2-D slice into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty slice or empty first row.
//   - ErrBadShape for ragged rows.
//   - ErrNaNInf when the policy is on and a value is not finite.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	if err = m.setRows(rows); err != nil {
		return nil, err
	}

	return m, nil
}

// allocDense skips the shape check; the generic bases call it with sizes
// they have already validated.
func allocDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: validateNaNInf}
}

// like allocates a zero store of the given shape under m's policy.
func (m *Dense) like(rows, cols int) *Dense {
	return allocDense(rows, cols, m.validateNaNInf)
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At reads element (row, col).
//
// Errors:
//   - ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, ok := m.offset(row, col)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set writes element (row, col). Nothing is written on error.
//
// Errors:
//   - ErrOutOfRange; ErrNaNInf under the finite policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, ok := m.offset(row, col)
	if !ok {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy under the same policy.
func (m *Dense) Clone() *Dense {
	cp := m.like(m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// copyFrom overwrites m with src; shapes are checked by the caller.
func (m *Dense) copyFrom(src *Dense) { copy(m.data, src.data) }

// zero resets every element to 0.
func (m *Dense) zero() {
	for k := range m.data {
		m.data[k] = 0
	}
}

// setIdentity writes the identity into a square m.
func (m *Dense) setIdentity() {
	m.zero()
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}
}

// setRows copies a 2-D slice of exactly m's shape into m, all-or-nothing.
func (m *Dense) setRows(rows [][]float64) error {
	if len(rows) != m.r {
		return fmt.Errorf("Dense.setRows: %d rows for %dx%d: %w", len(rows), m.r, m.c, ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return fmt.Errorf("Dense.setRows: row %d has %d values for %dx%d: %w", i, len(row), m.r, m.c, ErrBadShape)
		}
		if m.validateNaNInf {
			for j, v := range row {
				if !isFinite(v) {
					return denseErrorf(ctxSet, i, j, ErrNaNInf)
				}
			}
		}
	}
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return nil
}

// rowsCopy returns the contents as a freshly allocated 2-D slice.
func (m *Dense) rowsCopy() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Array returns the contents as a freshly allocated 2-D slice.
func (m *Dense) Array() [][]float64 { return m.rowsCopy() }

// gonum exposes the buffer as a *mat.Dense sharing the same storage.
// The returned value MUST NOT be resized; gonum writes go straight into m.
func (m *Dense) gonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// String renders the store in the token format, "{ { a b }{ c d } }".
func (m *Dense) String() string { return formatMatrix(m) }

// View returns a window of rows×cols elements with top-left corner (r0, c0)
// that writes straight into m. SetSubMatrix fills blocks through it.
//
// Errors:
//   - ErrBadShape when the window is empty or leaves m.
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// MatrixView is a block of a Dense sharing its storage and policy.
type MatrixView struct {
	base   *Dense
	r0, c0 int
	r, c   int
}

func (v *MatrixView) Rows() int { return v.r }
func (v *MatrixView) Cols() int { return v.c }

func (v *MatrixView) inside(i, j int) bool { return i >= 0 && i < v.r && j >= 0 && j < v.c }

// At reads element (i, j) of the block.
func (v *MatrixView) At(i, j int) (float64, error) {
	if !v.inside(i, j) {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+v.c0+j], nil
}

// Set writes element (i, j) of the block into the base store.
func (v *MatrixView) Set(i, j int, val float64) error {
	if !v.inside(i, j) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && !isFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+v.c0+j] = val

	return nil
}

// Do calls f for every element in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for k, v := range m.data {
		if !f(k/m.c, k%m.c, v) {
			return
		}
	}
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
