package spatialgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// n is the number of input points, duration is the total time taken,
	// err is nil if successful.
	RecordFit(n int, duration time.Duration, err error)

	// RecordBatchFit is called after each batch fit operation.
	// count is the number of point sets attempted, failed is the number
	// that failed, duration is the total time taken.
	RecordBatchFit(count, failed int, duration time.Duration)

	// RecordSnapshotSave is called after each snapshot save.
	// bytes is the encoded blob size, err is nil if successful.
	RecordSnapshotSave(bytes int, duration time.Duration, err error)

	// RecordSnapshotLoad is called after each snapshot load.
	// bytes is the blob size read, err is nil if successful.
	RecordSnapshotLoad(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordBatchFit(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordSnapshotSave(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshotLoad(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount           atomic.Int64
	FitErrors          atomic.Int64
	FitPoints          atomic.Int64
	FitTotalNanos      atomic.Int64
	BatchFitCount      atomic.Int64
	BatchFitSets       atomic.Int64
	BatchFitFailed     atomic.Int64
	BatchFitTotalNanos atomic.Int64
	SnapshotSaveCount  atomic.Int64
	SnapshotSaveErrors atomic.Int64
	SnapshotSaveBytes  atomic.Int64
	SnapshotLoadCount  atomic.Int64
	SnapshotLoadErrors atomic.Int64
	SnapshotLoadBytes  atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(n int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitPoints.Add(int64(n))
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordBatchFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchFit(count, failed int, duration time.Duration) {
	b.BatchFitCount.Add(1)
	b.BatchFitSets.Add(int64(count))
	b.BatchFitFailed.Add(int64(failed))
	b.BatchFitTotalNanos.Add(duration.Nanoseconds())
}

// RecordSnapshotSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotSave(bytes int, duration time.Duration, err error) {
	b.SnapshotSaveCount.Add(1)
	b.SnapshotSaveBytes.Add(int64(bytes))
	if err != nil {
		b.SnapshotSaveErrors.Add(1)
	}
}

// RecordSnapshotLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotLoad(bytes int, duration time.Duration, err error) {
	b.SnapshotLoadCount.Add(1)
	b.SnapshotLoadBytes.Add(int64(bytes))
	if err != nil {
		b.SnapshotLoadErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	FitCount           int64
	FitErrors          int64
	FitPoints          int64
	FitAvgNanos        int64
	BatchFitCount      int64
	BatchFitSets       int64
	BatchFitFailed     int64
	SnapshotSaveCount  int64
	SnapshotSaveErrors int64
	SnapshotSaveBytes  int64
	SnapshotLoadCount  int64
	SnapshotLoadErrors int64
	SnapshotLoadBytes  int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		FitCount:           b.FitCount.Load(),
		FitErrors:          b.FitErrors.Load(),
		FitPoints:          b.FitPoints.Load(),
		BatchFitCount:      b.BatchFitCount.Load(),
		BatchFitSets:       b.BatchFitSets.Load(),
		BatchFitFailed:     b.BatchFitFailed.Load(),
		SnapshotSaveCount:  b.SnapshotSaveCount.Load(),
		SnapshotSaveErrors: b.SnapshotSaveErrors.Load(),
		SnapshotSaveBytes:  b.SnapshotSaveBytes.Load(),
		SnapshotLoadCount:  b.SnapshotLoadCount.Load(),
		SnapshotLoadErrors: b.SnapshotLoadErrors.Load(),
		SnapshotLoadBytes:  b.SnapshotLoadBytes.Load(),
	}
	if stats.FitCount > 0 {
		stats.FitAvgNanos = b.FitTotalNanos.Load() / stats.FitCount
	}
	return stats
}
