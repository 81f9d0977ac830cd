// Package space provides Euclidean space primitives: fixed-dimension points
// and vectors, the capability interface that binds a point representation to
// the numeric backend's flat buffer format, validated unit vectors, and
// small scalar helpers.
package space

import (
	"github.com/hupe1980/spatialgo/composite"
	"github.com/hupe1980/spatialgo/lattice"
)

// Space is the capability contract for an N-dimensional Euclidean space
// over float64 scalars. Any concrete point/vector representation that
// implements it can be used by geometric predicates such as plane fitting:
// the contract covers the declared ambient dimension, centroid computation,
// point difference, and an exact coordinate round trip for vectors.
type Space[P, V any] interface {
	// Dimension returns the fixed ambient dimension N.
	Dimension() int

	// Centroid returns the arithmetic mean of the points, or ok=false for
	// an empty collection.
	Centroid(points []P) (P, bool)

	// Minus returns the vector from b to a (point minus point).
	Minus(a, b P) V

	// Coords decomposes v into an ordered sequence of exactly N scalars.
	Coords(v V) []float64

	// FromCoords recomposes a vector from the first N scalars of coords,
	// returning ok=false if fewer are available. Surplus scalars are
	// ignored.
	FromCoords(coords []float64) (V, bool)
}

// E3 is the canonical 3-dimensional Euclidean space over Point3/Vector3.
type E3 struct{}

// Dimension returns 3.
func (E3) Dimension() int { return 3 }

// Centroid returns the arithmetic mean of the points.
func (E3) Centroid(points []Point3) (Point3, bool) {
	return Centroid3(points)
}

// Minus returns a - b.
func (E3) Minus(a, b Point3) Vector3 {
	return a.Sub(b)
}

// Coords returns the coordinates of v.
func (E3) Coords(v Vector3) []float64 {
	return v.Coords()
}

// FromCoords builds a vector from the first three scalars of coords.
func (E3) FromCoords(coords []float64) (Vector3, bool) {
	t, ok := composite.TripleFromItems(coords)
	if !ok {
		return Vector3{}, false
	}
	return Vector3{X: t.A, Y: t.B, Z: t.C}, true
}

// E2 is the 2-dimensional Euclidean space over Point2/Vector2.
type E2 struct{}

// Dimension returns 2.
func (E2) Dimension() int { return 2 }

// Centroid returns the arithmetic mean of the points.
func (E2) Centroid(points []Point2) (Point2, bool) {
	return Centroid2(points)
}

// Minus returns a - b.
func (E2) Minus(a, b Point2) Vector2 {
	return a.Sub(b)
}

// Coords returns the coordinates of v.
func (E2) Coords(v Vector2) []float64 {
	return v.Coords()
}

// FromCoords builds a vector from the first two scalars of coords.
func (E2) FromCoords(coords []float64) (Vector2, bool) {
	p, ok := composite.PairFromItems(coords)
	if !ok {
		return Vector2{}, false
	}
	return Vector2{X: p.A, Y: p.B}, true
}

// Lerp linearly interpolates between a and b. The interpolation factor t is
// clamped to [0, 1] before use.
func Lerp(a, b, t float64) float64 {
	t = lattice.Meet(lattice.Join(t, 0), 1)
	return a*(1-t) + b*t
}
