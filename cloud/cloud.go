// Package cloud provides an ordered, re-iterable point collection for
// 3-dimensional Euclidean space, with a roaring-bitmap removal mask so
// points can be excluded from downstream predicates without reallocating
// the backing slice.
package cloud

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/spatialgo/space"
)

// PointCloud is an ordered collection of points. Indices are stable: Remove
// masks a point out without shifting its successors. A PointCloud is not
// safe for concurrent mutation; concurrent reads are fine.
type PointCloud struct {
	points  []space.Point3
	removed *roaring.Bitmap
}

// New creates a point cloud from the given points. The input is copied.
func New(points ...space.Point3) *PointCloud {
	return FromSlice(points)
}

// FromSlice creates a point cloud copying the given slice.
func FromSlice(points []space.Point3) *PointCloud {
	c := &PointCloud{
		points:  make([]space.Point3, len(points)),
		removed: roaring.New(),
	}
	copy(c.points, points)
	return c
}

// Len returns the number of active (non-removed) points.
func (c *PointCloud) Len() int {
	return len(c.points) - int(c.removed.GetCardinality())
}

// Cap returns the total number of slots, removed points included.
func (c *PointCloud) Cap() int {
	return len(c.points)
}

// At returns the point at index i, or ok=false if i is out of range or
// removed.
func (c *PointCloud) At(i int) (space.Point3, bool) {
	if i < 0 || i >= len(c.points) || c.removed.Contains(uint32(i)) {
		return space.Point3{}, false
	}
	return c.points[i], true
}

// Slot returns the point at index i whether or not it is removed, with
// ok=false only when i is out of range. Persistence uses this to keep
// removal masks positionally valid.
func (c *PointCloud) Slot(i int) (space.Point3, bool) {
	if i < 0 || i >= len(c.points) {
		return space.Point3{}, false
	}
	return c.points[i], true
}

// Remove masks out the point at index i. It reports whether the point was
// active before the call.
func (c *PointCloud) Remove(i int) bool {
	if i < 0 || i >= len(c.points) {
		return false
	}
	return c.removed.CheckedAdd(uint32(i))
}

// Restore unmasks the point at index i. It reports whether the point was
// removed before the call.
func (c *PointCloud) Restore(i int) bool {
	if i < 0 || i >= len(c.points) {
		return false
	}
	return c.removed.CheckedRemove(uint32(i))
}

// Removed returns the removed indices in ascending order.
func (c *PointCloud) Removed() []uint32 {
	return c.removed.ToArray()
}

// Points returns the active points in their original order as a fresh
// slice.
func (c *PointCloud) Points() []space.Point3 {
	out := make([]space.Point3, 0, c.Len())
	for _, p := range c.All() {
		out = append(out, p)
	}
	return out
}

// All iterates the active points in order, yielding index and point.
func (c *PointCloud) All() iter.Seq2[int, space.Point3] {
	return func(yield func(int, space.Point3) bool) {
		for i, p := range c.points {
			if c.removed.Contains(uint32(i)) {
				continue
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// Clone returns a deep copy, removal mask included.
func (c *PointCloud) Clone() *PointCloud {
	out := &PointCloud{
		points:  make([]space.Point3, len(c.points)),
		removed: c.removed.Clone(),
	}
	copy(out.points, c.points)
	return out
}

// Centroid returns the arithmetic mean of the active points, or ok=false if
// none are active.
func (c *PointCloud) Centroid() (space.Point3, bool) {
	return space.Centroid3(c.Points())
}

// Transform returns a new cloud with fn applied to every slot, active or
// removed. The removal mask is preserved.
func (c *PointCloud) Transform(fn func(space.Point3) space.Point3) *PointCloud {
	out := c.Clone()
	for i, p := range out.points {
		out.points[i] = fn(p)
	}
	return out
}

// Translate returns a new cloud displaced by v.
func (c *PointCloud) Translate(v space.Vector3) *PointCloud {
	return c.Transform(func(p space.Point3) space.Point3 {
		return p.Translate(v)
	})
}

// Rotate returns a new cloud rotated by r about the given pivot point.
func (c *PointCloud) Rotate(r space.Mat3, pivot space.Point3) *PointCloud {
	return c.Transform(func(p space.Point3) space.Point3 {
		return pivot.Translate(r.MulVec(p.Sub(pivot)))
	})
}
