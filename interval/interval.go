// SPDX-License-Identifier: MIT

// Package interval - closed and open real intervals.
//
// Purpose:
//   - Membership, measure, midpoint, intersection, convex hull and barycentric
//     ("vertex") coordinates on the real line.
//   - Intersection of disjoint intervals is reported as (nil, false), never as
//     an error: an empty intersection is a normal outcome, not a failure.
//
// Determinism:
//   - Values are immutable after construction; every operation returns a new
//     value or a scalar.
package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/xalmath/elementary"
)

var (
	// ErrInvalidBounds is returned when max < min (or an endpoint is NaN).
	ErrInvalidBounds = errors.New("interval: max is less than min")

	// ErrNotMember is returned when a point outside the interval is used where
	// membership is required (VertexCoordinates).
	ErrNotMember = errors.New("interval: point is not a member")
)

// Interval is the closed set [min, max] of the real line.
type Interval struct {
	min float64
	max float64
}

// New returns [min, max].
//
// Errors:
//   - ErrInvalidBounds if max < min or either endpoint is NaN.
func New(min, max float64) (*Interval, error) {
	if err := checkBounds(min, max); err != nil {
		return nil, fmt.Errorf("interval.New(%g,%g): %w", min, max, err)
	}

	return &Interval{min: min, max: max}, nil
}

// RealLine returns (-Inf, +Inf) represented as a closed interval.
func RealLine() *Interval {
	return &Interval{min: math.Inf(-1), max: math.Inf(1)}
}

// CreateFromMidpoint returns [mid - length/2, mid + length/2].
//
// Errors:
//   - ErrInvalidBounds for a negative length.
func CreateFromMidpoint(mid, length float64) (*Interval, error) {
	half := length / 2.0

	return New(mid-half, mid+half)
}

// CreateFromEndpoints returns [min, max], or (nil, false) when the endpoints
// do not describe an interval.
func CreateFromEndpoints(min, max float64) (*Interval, bool) {
	I, err := New(min, max)
	if err != nil {
		return nil, false
	}

	return I, true
}

func checkBounds(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || max < min {
		return ErrInvalidBounds
	}

	return nil
}

// Min returns the left endpoint.
func (I *Interval) Min() float64 { return I.min }

// Max returns the right endpoint.
func (I *Interval) Max() float64 { return I.max }

// Measure returns max - min.
func (I *Interval) Measure() float64 { return I.max - I.min }

// Midpoint returns (min + max)/2.
func (I *Interval) Midpoint() float64 { return (I.max + I.min) / 2.0 }

// Membership reports whether min <= x <= max.
func (I *Interval) Membership(x float64) bool { return x >= I.min && x <= I.max }

// IsBoundary reports whether x is one of the endpoints.
func (I *Interval) IsBoundary(x float64) bool { return x == I.min || x == I.max }

// IsRealLine reports whether the interval is (-Inf, +Inf).
func (I *Interval) IsRealLine() bool {
	return math.IsInf(I.min, -1) && math.IsInf(I.max, 1)
}

// Equals reports exact endpoint equality.
func (I *Interval) Equals(J *Interval) bool { return I.min == J.min && I.max == J.max }

// ContainsAE reports whether J is a subset of I ("almost everywhere" containment).
func (I *Interval) ContainsAE(J *Interval) bool { return J.min >= I.min && J.max <= I.max }

// MembershipApprox reports membership with endpoints widened by ulps units in
// the last place, for points produced by floating-point arithmetic.
func (I *Interval) MembershipApprox(x float64, ulps int) bool {
	if I.Membership(x) {
		return true
	}

	return elementary.ApproxEqULPs(x, I.min, ulps) || elementary.ApproxEqULPs(x, I.max, ulps)
}

// Intersects reports whether I and J share at least one point.
func (I *Interval) Intersects(J *Interval) bool {
	return math.Max(I.min, J.min) <= math.Min(I.max, J.max)
}

// Intersection returns I ∩ J, or (nil, false) when the intervals are disjoint.
func (I *Interval) Intersection(J *Interval) (*Interval, bool) {
	min := math.Max(I.min, J.min)
	max := math.Min(I.max, J.max)
	if min > max {
		return nil, false
	}

	return &Interval{min: min, max: max}, true
}

// ConvexHull returns the smallest interval containing both I and J.
func (I *Interval) ConvexHull(J *Interval) *Interval {
	return &Interval{min: math.Min(I.min, J.min), max: math.Max(I.max, J.max)}
}

// VertexCoordinates returns the barycentric weights {λ1, λ2} of x with respect
// to the endpoints, so that λ1 + λ2 = 1 and λ1·min + λ2·max = x.
// Implementation:
//   - Stage 1: reject non-members with ErrNotMember.
//   - Stage 2: λ1 = (max - x)/(max - min), λ2 = (x - min)/(max - min).
//
// Behavior highlights:
//   - A degenerate interval [a, a] has every weighting valid; {1, 0} is returned.
//
// Errors:
//   - ErrNotMember if x is outside [min, max].
func (I *Interval) VertexCoordinates(x float64) ([2]float64, error) {
	if !I.Membership(x) {
		return [2]float64{}, fmt.Errorf("VertexCoordinates(%g) on %s: %w", x, I, ErrNotMember)
	}

	return vertexCoordinates(I.min, I.max, x), nil
}

func vertexCoordinates(min, max, x float64) [2]float64 {
	det := max - min
	if det == 0 {
		return [2]float64{1, 0}
	}

	return [2]float64{(max - x) / det, (x - min) / det}
}

// String formats the interval as "[min,max]".
func (I *Interval) String() string {
	return "[" + formatEndpoint(I.min) + "," + formatEndpoint(I.max) + "]"
}

func formatEndpoint(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
