// SPDX-License-Identifier: MIT

package r3

// Index enumerates the axes of R3.
type Index int

const (
	X Index = iota
	Y
	Z
)

// Val returns the zero-based position of the axis.
func (i Index) Val() int { return int(i) }

func (i Index) String() string {
	switch i {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}

	return "?"
}

// Pos enumerates the nine element positions of an R3x3.
type Pos int

const (
	XX Pos = iota
	XY
	XZ
	YX
	YY
	YZ
	ZX
	ZY
	ZZ
)

// Row returns the row index of the position.
func (p Pos) Row() Index { return Index(int(p) / 3) }

// Col returns the column index of the position.
func (p Pos) Col() Index { return Index(int(p) % 3) }

// Transpose returns the mirrored position (XY -> YX).
func (p Pos) Transpose() Pos { return Pos(int(p.Col())*3 + int(p.Row())) }

// Diagonal returns XX, YY, ZZ.
func Diagonal() []Pos { return []Pos{XX, YY, ZZ} }

// UpperTriangle returns XY, XZ, YZ.
func UpperTriangle() []Pos { return []Pos{XY, XZ, YZ} }

// LowerTriangle returns YX, ZX, ZY.
func LowerTriangle() []Pos { return []Pos{YX, ZX, ZY} }

// OffDiagonal returns every position off the diagonal, row-major.
func OffDiagonal() []Pos { return []Pos{XY, XZ, YX, YZ, ZX, ZY} }
