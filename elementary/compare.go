// SPDX-License-Identifier: MIT

// Package elementary - scalar helpers shared by the matrix, vector and beam
// packages: ULP-bracketed equality, decimal significant-digit equality,
// sinc/sinch, hyperbolic functions and integer power fast paths.
//
// Purpose:
//   - Give every caller one definition of "equal enough" for float64 values.
//   - Keep the functions pure (no state, no allocation) so they can be used in
//     hot loops of the matrix kernels.
//
// AI-Hints:
//   - Use ApproxEq for machine-precision comparisons (noise from arithmetic).
//   - Use SignificantDigitsEqual when a human-readable precision is meant
//     (e.g. symmetry of a covariance matrix loaded from a text archive).
package elementary

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ---------- Defaults ----------

const (
	// DefaultULPs is the half-width, in units in the last place, of the tolerance
	// window used by ApproxEq.
	DefaultULPs = 100

	// EPS is the double-precision machine epsilon (2^-52).
	EPS = 2.220446049250313e-16
)

// ULP returns the unit in the last place of x, i.e. the gap between |x| and the
// next representable float64 toward +Inf.
//
// Special cases:
//   - ULP(±Inf) = +Inf
//   - ULP(NaN)  = NaN
//   - ULP(0)    = smallest positive subnormal
func ULP(x float64) float64 {
	a := math.Abs(x)
	if math.IsInf(a, 1) {
		return math.Inf(1)
	}

	return math.Nextafter(a, math.Inf(1)) - a
}

// ApproxEq reports whether x and y are equal within DefaultULPs units in the
// last place. See ApproxEqULPs.
func ApproxEq(x, y float64) bool {
	return ApproxEqULPs(x, y, DefaultULPs)
}

// ApproxEqULPs reports whether the tolerance windows of x and y overlap.
// Implementation:
//   - Stage 1: NaN never compares equal; identical values (including equal
//     infinities) always do.
//   - Stage 2: build [x-N*ulp(x), x+N*ulp(x)] and the same window for y.
//   - Stage 3: the values are equal iff the two closed windows intersect.
//
// Behavior highlights:
//   - Symmetric: ApproxEqULPs(x, y, n) == ApproxEqULPs(y, x, n).
//   - Reflexive for every non-NaN x.
//   - The window scales with magnitude, so the test is relative, not absolute.
//     Values close to zero therefore compare strictly: 1e-17 is NOT equal to 0.
//
// Inputs:
//   - x, y: values to compare.
//   - ulps: window half-width; negative values are treated as 0 (exact compare).
//
// Complexity:
//   - Time O(1), Space O(1).
func ApproxEqULPs(x, y float64, ulps int) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if x == y {
		return true
	}
	if ulps < 0 {
		ulps = 0
	}

	n := float64(ulps)
	dx := n * ULP(x)
	dy := n * ULP(y)

	// windows overlap iff each upper bound reaches the other's lower bound
	return x+dx >= y-dy && y+dy >= x-dx
}

// SignificantDigitsEqual rounds x and y half away from zero to digits
// fractional decimal digits and compares the results exactly.
//
// Unlike ApproxEq this is a decimal, human-oriented notion of precision:
// SignificantDigitsEqual(1.00004, 1.00001, 4) is true while the values are
// thousands of ULPs apart.
func SignificantDigitsEqual(x, y float64, digits int) bool {
	return scalar.Round(x, digits) == scalar.Round(y, digits)
}
