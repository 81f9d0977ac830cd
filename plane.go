package spatialgo

import (
	"context"

	"github.com/hupe1980/spatialgo/cloud"
	"github.com/hupe1980/spatialgo/space"
)

// Plane is a best-fit plane: its origin is the centroid of the fitting
// input and its normal is unit length. Both fields are immutable value
// types; a Plane is meaningful only when the input spans a proper subspace
// (at least 3 non-collinear points in 3-space).
type Plane[P any, V space.Normed[V]] struct {
	Origin P
	Normal space.Unit[V]
}

// Plane3 is a plane in the canonical E3 space.
type Plane3 = Plane[space.Point3, space.Vector3]

// PlaneEquation returns the coefficients [a b c d] of the implicit plane
// equation ax + by + cz + d = 0.
func PlaneEquation(p Plane3) [4]float64 {
	n := p.Normal.Get()
	d := -n.Dot(p.Origin.Vector())
	return [4]float64{n.X, n.Y, n.Z, d}
}

// PlaneDistance returns the signed distance from q to the plane, positive
// on the side the normal points to.
func PlaneDistance(p Plane3, q space.Point3) float64 {
	return p.Normal.Get().Dot(q.Sub(p.Origin))
}

// FitCloud fits a plane to the active points of a point cloud.
func FitCloud(ctx context.Context, f *Fitter[space.Point3, space.Vector3], pc *cloud.PointCloud) (Plane3, error) {
	return f.Fit(ctx, pc.Points())
}
