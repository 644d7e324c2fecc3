// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
)

// OpenInterval is the open set (min, max); both endpoints are excluded.
// (a, a) is a valid, empty interval.
type OpenInterval struct {
	min float64
	max float64
}

// NewOpen returns (min, max).
//
// Errors:
//   - ErrInvalidBounds if max < min or either endpoint is NaN.
func NewOpen(min, max float64) (*OpenInterval, error) {
	if err := checkBounds(min, max); err != nil {
		return nil, fmt.Errorf("interval.NewOpen(%g,%g): %w", min, max, err)
	}

	return &OpenInterval{min: min, max: max}, nil
}

// Min returns the (excluded) left endpoint.
func (O *OpenInterval) Min() float64 { return O.min }

// Max returns the (excluded) right endpoint.
func (O *OpenInterval) Max() float64 { return O.max }

// Measure returns max - min.
func (O *OpenInterval) Measure() float64 { return O.max - O.min }

// Midpoint returns (min + max)/2.
func (O *OpenInterval) Midpoint() float64 { return (O.max + O.min) / 2.0 }

// IsEmpty reports whether the interval contains no points.
func (O *OpenInterval) IsEmpty() bool { return O.min == O.max }

// Membership reports whether min < x < max.
func (O *OpenInterval) Membership(x float64) bool { return x > O.min && x < O.max }

// IsBoundary reports whether x is one of the excluded endpoints.
func (O *OpenInterval) IsBoundary(x float64) bool { return x == O.min || x == O.max }

// Closure returns the closed interval [min, max].
func (O *OpenInterval) Closure() *Interval { return &Interval{min: O.min, max: O.max} }

// Intersects reports whether the two open intervals share at least one point.
func (O *OpenInterval) Intersects(P *OpenInterval) bool {
	return math.Max(O.min, P.min) < math.Min(O.max, P.max)
}

// Intersection returns O ∩ P, or (nil, false) when the intervals share no point.
func (O *OpenInterval) Intersection(P *OpenInterval) (*OpenInterval, bool) {
	min := math.Max(O.min, P.min)
	max := math.Min(O.max, P.max)
	if !(min < max) {
		return nil, false
	}

	return &OpenInterval{min: min, max: max}, true
}

// ConvexHull returns the smallest open interval containing both O and P.
func (O *OpenInterval) ConvexHull(P *OpenInterval) *OpenInterval {
	return &OpenInterval{min: math.Min(O.min, P.min), max: math.Max(O.max, P.max)}
}

// VertexCoordinates returns the barycentric weights of x with respect to the
// endpoints; see Interval.VertexCoordinates.
//
// Errors:
//   - ErrNotMember if x is not strictly inside (min, max).
func (O *OpenInterval) VertexCoordinates(x float64) ([2]float64, error) {
	if !O.Membership(x) {
		return [2]float64{}, fmt.Errorf("VertexCoordinates(%g) on %s: %w", x, O, ErrNotMember)
	}

	return vertexCoordinates(O.min, O.max, x), nil
}

// String formats the interval as "(min,max)".
func (O *OpenInterval) String() string {
	return "(" + formatEndpoint(O.min) + "," + formatEndpoint(O.max) + ")"
}
