package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spatialgo"
	"github.com/hupe1980/spatialgo/blobstore"
	"github.com/hupe1980/spatialgo/cloud"
	"github.com/hupe1980/spatialgo/codec"
	"github.com/hupe1980/spatialgo/resource"
	"github.com/hupe1980/spatialgo/space"
)

func testCloud(t *testing.T) *cloud.PointCloud {
	t.Helper()

	pc := cloud.FromSlice([]space.Point3{
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 2, Y: 2, Z: 5},
	})
	require.True(t, pc.Remove(3))

	return pc
}

func TestFromCloud(t *testing.T) {
	pc := testCloud(t)
	snap := FromCloud(pc)

	// Removed slots are captured positionally.
	assert.Len(t, snap.Points, 4)
	assert.Equal(t, []uint32{3}, snap.Removed)
	assert.Equal(t, [3]float64{2, 2, 5}, snap.Points[3])

	rebuilt := snap.Cloud()
	assert.Equal(t, 3, rebuilt.Len())
	assert.Equal(t, 4, rebuilt.Cap())
	assert.Equal(t, pc.Points(), rebuilt.Points())

	_, ok := rebuilt.At(3)
	assert.False(t, ok)
}

func TestEncodeDecode(t *testing.T) {
	snap := FromCloud(testCloud(t))
	snap.Plane = RecordPlane(space.Point3{X: 0.5, Y: 0.5}, space.Vector3{Z: 1})

	for _, comp := range []Compression{CompressionNone, CompressionLZ4, CompressionS2} {
		t.Run(string(comp), func(t *testing.T) {
			data, err := Encode(snap, WithCompression(comp))
			require.NoError(t, err)

			got, err := Decode(data)
			require.NoError(t, err)

			assert.Equal(t, snap.Points, got.Points)
			assert.Equal(t, snap.Removed, got.Removed)
			require.NotNil(t, got.Plane)
			assert.Equal(t, [3]float64{0, 0, 1}, got.Plane.Normal)
		})
	}
}

func TestEncode_UnknownCompression(t *testing.T) {
	_, err := Encode(&Snapshot{}, WithCompression("zstd"))
	assert.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "bad magic", data: []byte("XXXX\x01")},
		{name: "truncated header", data: []byte("SGEO")},
		{name: "bad version", data: []byte("SGEO\x7f")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, ErrBadSnapshot)
		})
	}
}

func TestDecode_UnknownCodec(t *testing.T) {
	data, err := Encode(&Snapshot{}, WithCompression(CompressionNone))
	require.NoError(t, err)

	// Corrupt the codec name in place. It follows magic and version, and
	// is length-prefixed, so the name bytes start at offset 7.
	name := codec.Default.Name()
	copy(data[7:7+len(name)], "bogusbogus"[:len(name)])

	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrBadSnapshot)
}

func TestDecode_RemovedOutOfRange(t *testing.T) {
	data, err := Encode(&Snapshot{
		Points:  [][3]float64{{1, 2, 3}},
		Removed: []uint32{5},
	})
	require.NoError(t, err)

	_, err = Decode(data)
	assert.ErrorIs(t, err, ErrBadSnapshot)
}

func TestSaveLoad(t *testing.T) {
	store := blobstore.NewMemoryStore()
	snap := FromCloud(testCloud(t))

	require.NoError(t, Save(context.Background(), store, "clouds/a.snap", snap))

	got, err := Load(context.Background(), store, "clouds/a.snap")
	require.NoError(t, err)
	assert.Equal(t, snap.Points, got.Points)

	_, err = Load(context.Background(), store, "clouds/missing.snap")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestSaveLoad_Metrics(t *testing.T) {
	store := blobstore.NewMemoryStore()
	metrics := &spatialgo.BasicMetricsCollector{}
	snap := FromCloud(testCloud(t))

	require.NoError(t, Save(context.Background(), store, "clouds/a.snap", snap, WithMetrics(metrics)))

	_, err := Load(context.Background(), store, "clouds/a.snap", WithMetrics(metrics))
	require.NoError(t, err)

	_, err = Load(context.Background(), store, "clouds/missing.snap", WithMetrics(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SnapshotSaveCount)
	assert.Zero(t, stats.SnapshotSaveErrors)
	assert.Positive(t, stats.SnapshotSaveBytes)
	assert.Equal(t, int64(2), stats.SnapshotLoadCount)
	assert.Equal(t, int64(1), stats.SnapshotLoadErrors)
	assert.Equal(t, stats.SnapshotSaveBytes, stats.SnapshotLoadBytes)
}

func TestUploader(t *testing.T) {
	store := blobstore.NewMemoryStore()
	// An IO limit above the copy chunk size exercises the throttled
	// streaming path without slowing the test down.
	rc := resource.NewController(resource.Config{
		MaxBackgroundWorkers: 1,
		IOLimitBytesPerSec:   1 << 20,
	})
	u := NewUploader(store, rc)

	metrics := &spatialgo.BasicMetricsCollector{}
	snap := FromCloud(testCloud(t))
	require.NoError(t, u.Upload(context.Background(), "clouds/a.snap", snap, WithCompression(CompressionS2), WithMetrics(metrics)))

	got, err := u.Download(context.Background(), "clouds/a.snap", WithMetrics(metrics))
	require.NoError(t, err)
	assert.Equal(t, snap.Points, got.Points)
	assert.Equal(t, snap.Removed, got.Removed)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.SnapshotSaveCount)
	assert.Equal(t, int64(1), stats.SnapshotLoadCount)
	assert.Equal(t, stats.SnapshotSaveBytes, stats.SnapshotLoadBytes)

	// The transfer slot is free again after both operations.
	assert.True(t, rc.TryAcquireBackground())
	rc.ReleaseBackground()
}
