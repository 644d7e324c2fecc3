// SPDX-License-Identifier: MIT

package beam

// PhaseIndex enumerates the coordinates of homogeneous phase space.
type PhaseIndex int

const (
	X PhaseIndex = iota
	Xp
	Y
	Yp
	Z
	Zp
	HOM
)

// PhaseSize is the dimension of homogeneous phase space.
const PhaseSize = int(HOM) + 1

var phaseNames = [PhaseSize]string{"x", "xp", "y", "yp", "z", "zp", "hom"}

// Val returns the zero-based position of the coordinate.
func (i PhaseIndex) Val() int { return int(i) }

func (i PhaseIndex) String() string {
	if i < X || i > HOM {
		return "?"
	}

	return phaseNames[i]
}

// PhaseIndices returns the six phase coordinates X..Zp (HOM excluded).
func PhaseIndices() []PhaseIndex { return []PhaseIndex{X, Xp, Y, Yp, Z, Zp} }

// Plane enumerates the three phase planes.
type Plane int

const (
	PlaneX Plane = iota
	PlaneY
	PlaneZ
)

// Planes returns X, Y, Z in order.
func Planes() []Plane { return []Plane{PlaneX, PlaneY, PlaneZ} }

// Position returns the position coordinate of the plane (X, Y or Z).
func (p Plane) Position() PhaseIndex { return PhaseIndex(2 * int(p)) }

// Momentum returns the momentum coordinate of the plane (Xp, Yp or Zp).
func (p Plane) Momentum() PhaseIndex { return PhaseIndex(2*int(p) + 1) }

func (p Plane) String() string { return p.Position().String() }
