// Package snapshot persists point clouds and fitted planes as
// self-describing blobs: a fixed header records the codec and compression
// by name, so any snapshot can be decoded without out-of-band
// configuration.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/hupe1980/spatialgo/cloud"
	"github.com/hupe1980/spatialgo/space"
)

// ErrBadSnapshot is returned when a blob does not parse as a snapshot.
var ErrBadSnapshot = errors.New("snapshot: malformed snapshot")

// Snapshot is the persisted form of a point cloud, optionally together
// with a plane fitted to it.
type Snapshot struct {
	Points  [][3]float64 `json:"points"`
	Removed []uint32     `json:"removed,omitempty"`
	Plane   *PlaneRecord `json:"plane,omitempty"`
}

// PlaneRecord is the persisted form of a fitted plane.
type PlaneRecord struct {
	Origin [3]float64 `json:"origin"`
	Normal [3]float64 `json:"normal"`
}

// FromCloud captures the cloud, removal mask included.
func FromCloud(pc *cloud.PointCloud) *Snapshot {
	snap := &Snapshot{
		Points:  make([][3]float64, 0, pc.Cap()),
		Removed: pc.Removed(),
	}
	// Removed slots keep their index in the snapshot so the mask stays
	// positionally valid.
	for i := 0; i < pc.Cap(); i++ {
		p, _ := pc.Slot(i)
		snap.Points = append(snap.Points, [3]float64{p.X, p.Y, p.Z})
	}
	return snap
}

// Cloud rebuilds the point cloud, reapplying the removal mask.
func (s *Snapshot) Cloud() *cloud.PointCloud {
	points := make([]space.Point3, len(s.Points))
	for i, p := range s.Points {
		points[i] = space.Point3{X: p[0], Y: p[1], Z: p[2]}
	}

	pc := cloud.FromSlice(points)
	for _, i := range s.Removed {
		pc.Remove(int(i))
	}
	return pc
}

// RecordPlane converts a fitted origin and unit normal for persistence.
func RecordPlane(origin space.Point3, normal space.Vector3) *PlaneRecord {
	return &PlaneRecord{
		Origin: [3]float64{origin.X, origin.Y, origin.Z},
		Normal: [3]float64{normal.X, normal.Y, normal.Z},
	}
}

func (s *Snapshot) validate() error {
	for _, i := range s.Removed {
		if int(i) >= len(s.Points) {
			return fmt.Errorf("%w: removed index %d out of range", ErrBadSnapshot, i)
		}
	}
	return nil
}
