package cloud

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialgo/space"
)

func TestNewCopiesInput(t *testing.T) {
	src := []space.Point3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	c := FromSlice(src)

	src[0] = space.Point3{X: 9, Y: 9, Z: 9}

	p, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, space.Point3{X: 1, Y: 0, Z: 0}, p)
}

func TestRemoveRestore(t *testing.T) {
	c := New(
		space.Point3{X: 0, Y: 0, Z: 0},
		space.Point3{X: 1, Y: 0, Z: 0},
		space.Point3{X: 2, Y: 0, Z: 0},
	)

	assert.Equal(t, 3, c.Len())

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1), "double remove")
	assert.False(t, c.Remove(5), "out of range")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Cap())
	assert.Equal(t, []uint32{1}, c.Removed())

	_, ok := c.At(1)
	assert.False(t, ok)

	// Order and original indices survive removal.
	assert.Equal(t, []space.Point3{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, c.Points())

	var indices []int
	for i := range c.All() {
		indices = append(indices, i)
	}
	assert.Equal(t, []int{0, 2}, indices)

	assert.True(t, c.Restore(1))
	assert.False(t, c.Restore(1))
	assert.Equal(t, 3, c.Len())
}

func TestClone(t *testing.T) {
	c := New(space.Point3{X: 1, Y: 1, Z: 1}, space.Point3{X: 2, Y: 2, Z: 2})
	c.Remove(0)

	clone := c.Clone()
	assert.Equal(t, c.Points(), clone.Points())

	// Mutating the clone leaves the original alone.
	clone.Restore(0)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestCentroid(t *testing.T) {
	c := New(
		space.Point3{X: 1, Y: 0, Z: 0},
		space.Point3{X: 0.5, Y: 0.5, Z: 0},
		space.Point3{X: 0, Y: 1, Z: 0},
	)

	got, ok := c.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 0.5, got.X, 1e-12)
	assert.InDelta(t, 0.5, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)

	// Removed points do not contribute.
	c.Remove(1)
	got, ok = c.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 0.5, got.X, 1e-12)

	empty := New()
	_, ok = empty.Centroid()
	assert.False(t, ok)
}

func TestTranslate(t *testing.T) {
	c := New(space.Point3{X: 1, Y: 2, Z: 3})
	moved := c.Translate(space.Vector3{X: 1, Y: 1, Z: 1})

	p, ok := moved.At(0)
	require.True(t, ok)
	assert.Equal(t, space.Point3{X: 2, Y: 3, Z: 4}, p)

	// Original unchanged.
	p, ok = c.At(0)
	require.True(t, ok)
	assert.Equal(t, space.Point3{X: 1, Y: 2, Z: 3}, p)
}

func TestRotateAboutPivot(t *testing.T) {
	pivot := space.Point3{X: 1, Y: 0, Z: 0}
	c := New(space.Point3{X: 2, Y: 0, Z: 0})

	rotated := c.Rotate(space.RotationZ(math.Pi/2), pivot)

	p, ok := rotated.At(0)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, 0, p.Z, 1e-12)
}
