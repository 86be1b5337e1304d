package sightline

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSync is called after each index synchronization.
	// applied is the number of pending scene writes pushed to the index.
	RecordSync(applied int, duration time.Duration, err error)

	// RecordQuery is called after each spatial query.
	// kind is "at" or "within", results is the number of ids or regions returned.
	RecordQuery(kind string, results int, duration time.Duration)

	// RecordField is called after each field-of-view computation.
	RecordField(cells int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSync(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordQuery(string, int, time.Duration) {}
func (NoopMetricsCollector) RecordField(int, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SyncCount       atomic.Int64
	SyncApplied     atomic.Int64
	SyncErrors      atomic.Int64
	QueryCount      atomic.Int64
	QueryResults    atomic.Int64
	QueryTotalNanos atomic.Int64
	FieldCount      atomic.Int64
	FieldCells      atomic.Int64
	FieldTotalNanos atomic.Int64
}

// RecordSync implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSync(applied int, duration time.Duration, err error) {
	b.SyncCount.Add(1)
	b.SyncApplied.Add(int64(applied))
	if err != nil {
		b.SyncErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind string, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordField implements MetricsCollector.
func (b *BasicMetricsCollector) RecordField(cells int, duration time.Duration) {
	b.FieldCount.Add(1)
	b.FieldCells.Add(int64(cells))
	b.FieldTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SyncCount:     b.SyncCount.Load(),
		SyncApplied:   b.SyncApplied.Load(),
		SyncErrors:    b.SyncErrors.Load(),
		QueryCount:    b.QueryCount.Load(),
		QueryResults:  b.QueryResults.Load(),
		QueryAvgNanos: avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		FieldCount:    b.FieldCount.Load(),
		FieldCells:    b.FieldCells.Load(),
		FieldAvgNanos: avg(b.FieldTotalNanos.Load(), b.FieldCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SyncCount     int64
	SyncApplied   int64
	SyncErrors    int64
	QueryCount    int64
	QueryResults  int64
	QueryAvgNanos int64
	FieldCount    int64
	FieldCells    int64
	FieldAvgNanos int64
}
