package spatialgo

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialgo/cloud"
	"github.com/hupe1980/spatialgo/space"
	"github.com/hupe1980/spatialgo/util"
)

// assertParallel checks that two unit vectors agree up to sign.
func assertParallel(t *testing.T, want, got space.Vector3) {
	t.Helper()
	assert.InDelta(t, 1.0, math.Abs(want.Dot(got)), 1e-9)
}

func TestFitter_Fit(t *testing.T) {
	f := NewFitter3()

	t.Run("known plane", func(t *testing.T) {
		points := []space.Point3{
			{X: 1, Y: 0, Z: 0},
			{X: 0.5, Y: 0.5, Z: 0},
			{X: 0, Y: 1, Z: 0},
		}

		plane, err := f.Fit(context.Background(), points)
		require.NoError(t, err)

		assert.InDelta(t, 0.5, plane.Origin.X, 1e-12)
		assert.InDelta(t, 0.5, plane.Origin.Y, 1e-12)
		assert.InDelta(t, 0.0, plane.Origin.Z, 1e-12)

		assertParallel(t, space.Vector3{Z: 1}, plane.Normal.Get())
		assert.InDelta(t, 1.0, plane.Normal.Get().Norm(), 1e-12)
	})

	t.Run("triangle normal matches edge cross product", func(t *testing.T) {
		a := space.Point3{X: 1, Y: 2, Z: 3}
		b := space.Point3{X: 4, Y: 0, Z: 1}
		c := space.Point3{X: -2, Y: 5, Z: 2}

		plane, err := f.Fit(context.Background(), []space.Point3{a, b, c})
		require.NoError(t, err)

		cross := b.Sub(a).Cross(c.Sub(a))
		want := cross.Scale(1 / cross.Norm())
		assertParallel(t, want, plane.Normal.Get())
	})

	t.Run("zero residuals on exactly planar input", func(t *testing.T) {
		rng := util.NewRNG(42)
		points := rng.GeneratePlanarPoints(32,
			space.Point3{X: 1, Y: -2, Z: 0.5},
			space.Vector3{X: 1, Y: 1},
			space.Vector3{X: -1, Y: 1, Z: 2},
			0)

		plane, err := f.Fit(context.Background(), points)
		require.NoError(t, err)

		for _, p := range points {
			assert.InDelta(t, 0, PlaneDistance(plane, p), 1e-9)
		}
	})

	t.Run("idempotence", func(t *testing.T) {
		rng := util.NewRNG(99)
		points := rng.GeneratePlanarPoints(24,
			space.Point3{X: -3, Y: 4, Z: 1},
			space.Vector3{X: 2, Z: 1},
			space.Vector3{Y: 3, Z: -1},
			0.1)

		first, err := f.Fit(context.Background(), points)
		require.NoError(t, err)

		second, err := f.Fit(context.Background(), points)
		require.NoError(t, err)

		assert.InDelta(t, first.Origin.X, second.Origin.X, 1e-12)
		assert.InDelta(t, first.Origin.Y, second.Origin.Y, 1e-12)
		assert.InDelta(t, first.Origin.Z, second.Origin.Z, 1e-12)
		assertParallel(t, first.Normal.Get(), second.Normal.Get())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := f.Fit(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("non-finite coordinates", func(t *testing.T) {
		points := []space.Point3{
			{X: 1, Y: 0, Z: 0},
			{X: math.NaN(), Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		}

		_, err := f.Fit(context.Background(), points)
		assert.Error(t, err)
	})
}

func TestFitter_Equivariance(t *testing.T) {
	f := NewFitter3()
	rng := util.NewRNG(1337)

	base := rng.GeneratePlanarPoints(24,
		space.Point3{X: 2, Y: 1, Z: -1},
		space.Vector3{X: 1, Z: 0.5},
		space.Vector3{Y: 1, Z: -0.25},
		0.05)

	plane, err := f.Fit(context.Background(), base)
	require.NoError(t, err)

	t.Run("translation", func(t *testing.T) {
		v := space.Vector3{X: 10, Y: -3, Z: 7}

		moved := make([]space.Point3, len(base))
		for i, p := range base {
			moved[i] = p.Translate(v)
		}

		got, err := f.Fit(context.Background(), moved)
		require.NoError(t, err)

		want := plane.Origin.Translate(v)
		assert.InDelta(t, want.X, got.Origin.X, 1e-9)
		assert.InDelta(t, want.Y, got.Origin.Y, 1e-9)
		assert.InDelta(t, want.Z, got.Origin.Z, 1e-9)
		assertParallel(t, plane.Normal.Get(), got.Normal.Get())
	})

	t.Run("rotation about centroid", func(t *testing.T) {
		r := space.RotationZ(math.Pi / 3)

		rotated := make([]space.Point3, len(base))
		for i, p := range base {
			rotated[i] = plane.Origin.Translate(r.MulVec(p.Sub(plane.Origin)))
		}

		got, err := f.Fit(context.Background(), rotated)
		require.NoError(t, err)

		assert.InDelta(t, plane.Origin.X, got.Origin.X, 1e-9)
		assert.InDelta(t, plane.Origin.Y, got.Origin.Y, 1e-9)
		assert.InDelta(t, plane.Origin.Z, got.Origin.Z, 1e-9)
		assertParallel(t, r.MulVec(plane.Normal.Get()), got.Normal.Get())
	})
}

func TestFitter_TryFit(t *testing.T) {
	f := NewFitter3()

	_, ok := f.TryFit(nil)
	assert.False(t, ok)

	plane, ok := f.TryFit([]space.Point3{
		{X: 1}, {Y: 1}, {Z: 0.5, X: 0.5, Y: 0.5},
	})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, plane.Normal.Get().Norm(), 1e-12)
}

func TestFitter_FitAll(t *testing.T) {
	f := NewFitter3(WithParallelism(2))

	rng := util.NewRNG(7)
	good := rng.GeneratePlanarPoints(12,
		space.Point3{}, space.Vector3{X: 1}, space.Vector3{Y: 1}, 0)

	sets := [][]space.Point3{good, nil, good}

	planes, err := f.FitAll(context.Background(), sets)
	require.Len(t, planes, 3)

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "set 1")

	assertParallel(t, space.Vector3{Z: 1}, planes[0].Normal.Get())
	assertParallel(t, space.Vector3{Z: 1}, planes[2].Normal.Get())

	// Failed entries stay zero-valued.
	assert.Zero(t, planes[1])
}

func TestNewFitter_DimensionCheck(t *testing.T) {
	_, err := NewFitter[space.Point2, space.Vector2](space.E2{})
	require.Error(t, err)

	var invalid *ErrInvalidDimension
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 2, invalid.Dimension)
}

func TestFitter_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	f := NewFitter3(WithMetrics(metrics))

	_, err := f.Fit(context.Background(), []space.Point3{
		{X: 1}, {Y: 1}, {Z: 1},
	})
	require.NoError(t, err)

	_, err = f.Fit(context.Background(), nil)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.FitCount)
	assert.Equal(t, int64(1), stats.FitErrors)
	assert.Equal(t, int64(3), stats.FitPoints)
}

func TestPlaneEquation(t *testing.T) {
	f := NewFitter3()

	plane, err := f.Fit(context.Background(), []space.Point3{
		{X: 1, Y: 0, Z: 2},
		{X: 0, Y: 1, Z: 2},
		{X: -1, Y: -1, Z: 2},
	})
	require.NoError(t, err)

	eq := PlaneEquation(plane)

	// Every input point satisfies ax + by + cz + d = 0.
	for _, p := range []space.Point3{{X: 1, Y: 0, Z: 2}, {X: 0, Y: 1, Z: 2}} {
		assert.InDelta(t, 0, eq[0]*p.X+eq[1]*p.Y+eq[2]*p.Z+eq[3], 1e-9)
	}
}

func TestPlaneDistance(t *testing.T) {
	f := NewFitter3()

	plane, err := f.Fit(context.Background(), []space.Point3{
		{X: 1}, {Y: 1}, {X: -1, Y: -1},
	})
	require.NoError(t, err)

	d := PlaneDistance(plane, space.Point3{Z: 5})
	assert.InDelta(t, 5, math.Abs(d), 1e-9)

	assert.InDelta(t, 0, PlaneDistance(plane, plane.Origin), 1e-12)
}

func TestFitCloud(t *testing.T) {
	pc := cloud.FromSlice([]space.Point3{
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 3, Y: 3, Z: 9}, // outlier
	})
	require.True(t, pc.Remove(3))

	f := NewFitter3()

	plane, err := FitCloud(context.Background(), f, pc)
	require.NoError(t, err)

	assertParallel(t, space.Vector3{Z: 1}, plane.Normal.Get())
	assert.InDelta(t, 0, plane.Origin.Z, 1e-12)
}
