package roaringview

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Only construction and WriteTo report; searches and decodes stay uninstrumented.
type MetricsCollector interface {
	// RecordLoad is called after a region has been parsed.
	// partitions and extent are zero when err is non-nil.
	RecordLoad(partitions, extent int, duration time.Duration, err error)

	// RecordWrite is called after each WriteTo.
	RecordWrite(written int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordWrite(int64, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadTotalNanos  atomic.Int64
	PartitionsTotal atomic.Int64
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	BytesWritten    atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(partitions, extent int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.PartitionsTotal.Add(int64(partitions))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(written int64, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.BytesWritten.Add(written)
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
		LoadAvgNanos:    b.getAvgLoadNanos(),
		PartitionsTotal: b.PartitionsTotal.Load(),
		WriteCount:      b.WriteCount.Load(),
		WriteErrors:     b.WriteErrors.Load(),
		BytesWritten:    b.BytesWritten.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount       int64
	LoadErrors      int64
	LoadAvgNanos    int64
	PartitionsTotal int64
	WriteCount      int64
	WriteErrors     int64
	BytesWritten    int64
}
