package weights

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting table lifecycle metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called after a table's private storage is allocated.
	RecordAllocate(bytes int64, duration time.Duration, err error)

	// RecordShare is called after each promotion attempt.
	// duration covers mapping and copying.
	RecordShare(bytes int64, duration time.Duration, err error)

	// RecordRelease is called when a table's storage is released.
	RecordRelease(bytes int64, shared bool)

	// RecordSweep is called after each concurrent sweep.
	RecordSweep(buckets uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordShare(int64, time.Duration, error)    {}
func (NoopMetricsCollector) RecordRelease(int64, bool)                  {}
func (NoopMetricsCollector) RecordSweep(uint64, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount   atomic.Int64
	AllocateErrors  atomic.Int64
	AllocatedBytes  atomic.Int64
	ShareCount      atomic.Int64
	ShareErrors     atomic.Int64
	ShareTotalNanos atomic.Int64
	SharedBytes     atomic.Int64
	ReleaseCount    atomic.Int64
	ReleasedBytes   atomic.Int64
	SweepCount      atomic.Int64
	SweepErrors     atomic.Int64
	SweepBuckets    atomic.Int64
	SweepTotalNanos atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(bytes int64, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.AllocatedBytes.Add(bytes)
}

// RecordShare implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShare(bytes int64, duration time.Duration, err error) {
	b.ShareCount.Add(1)
	b.ShareTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ShareErrors.Add(1)
		return
	}
	b.SharedBytes.Add(bytes)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int64, shared bool) {
	b.ReleaseCount.Add(1)
	b.ReleasedBytes.Add(bytes)
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(buckets uint64, duration time.Duration, err error) {
	b.SweepCount.Add(1)
	b.SweepTotalNanos.Add(duration.Nanoseconds())
	b.SweepBuckets.Add(int64(buckets)) //nolint:gosec // bucket counts fit in int64
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocateCount:  b.AllocateCount.Load(),
		AllocateErrors: b.AllocateErrors.Load(),
		AllocatedBytes: b.AllocatedBytes.Load(),
		ShareCount:     b.ShareCount.Load(),
		ShareErrors:    b.ShareErrors.Load(),
		ShareAvgNanos:  avg(b.ShareTotalNanos.Load(), b.ShareCount.Load()),
		SharedBytes:    b.SharedBytes.Load(),
		ReleaseCount:   b.ReleaseCount.Load(),
		ReleasedBytes:  b.ReleasedBytes.Load(),
		SweepCount:     b.SweepCount.Load(),
		SweepErrors:    b.SweepErrors.Load(),
		SweepBuckets:   b.SweepBuckets.Load(),
		SweepAvgNanos:  avg(b.SweepTotalNanos.Load(), b.SweepCount.Load()),
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
	AllocateCount  int64
	AllocateErrors int64
	AllocatedBytes int64
	ShareCount     int64
	ShareErrors    int64
	ShareAvgNanos  int64
	SharedBytes    int64
	ReleaseCount   int64
	ReleasedBytes  int64
	SweepCount     int64
	SweepErrors    int64
	SweepBuckets   int64
	SweepAvgNanos  int64
}
