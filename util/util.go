package util

import (
	"math/rand"

	"github.com/hupe1980/spatialgo/space"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomPoints generates points uniformly distributed in the unit
// cube.
func (r *RNG) GenerateRandomPoints(num int) []space.Point3 {
	points := make([]space.Point3, num)
	for i := range points {
		points[i] = space.Point3{
			X: r.rand.Float64(),
			Y: r.rand.Float64(),
			Z: r.rand.Float64(),
		}
	}

	return points
}

// GeneratePlanarPoints generates points on the plane through origin
// spanned by u and v, displaced along the plane normal by gaussian noise
// with the given standard deviation. With noise 0 the points are exactly
// coplanar.
func (r *RNG) GeneratePlanarPoints(num int, origin space.Point3, u, v space.Vector3, noise float64) []space.Point3 {
	n := u.Cross(v)
	if norm := n.Norm(); norm > 0 {
		n = n.Scale(1 / norm)
	}

	points := make([]space.Point3, num)
	for i := range points {
		p := origin.
			Translate(u.Scale(r.rand.Float64()*2 - 1)).
			Translate(v.Scale(r.rand.Float64()*2 - 1))
		if noise > 0 {
			p = p.Translate(n.Scale(r.rand.NormFloat64() * noise))
		}
		points[i] = p
	}

	return points
}
