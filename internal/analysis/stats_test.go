package analysis

import (
	"testing"
	"time"
)

func TestStatsSnapshotPercentiles(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(100, OutcomeOK)
	stats.Record(200, OutcomeOK)
	stats.Record(300, OutcomeOK)
	stats.Record(400, OutcomeOK)
	stats.Record(500, OutcomeOK)

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestStatsCountsOutcomes(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(10, OutcomeOK)
	stats.Record(20, OutcomeOK)
	stats.Record(30, OutcomeRetryable)
	stats.Record(40, OutcomeFailed)

	snap := stats.Snapshot()
	if snap.Count != 4 {
		t.Fatalf("expected count=4, got %d", snap.Count)
	}
	if snap.OK != 2 {
		t.Errorf("expected ok=2, got %d", snap.OK)
	}
	if snap.Retryable != 1 {
		t.Errorf("expected retryable=1, got %d", snap.Retryable)
	}
	if snap.Failed != 1 {
		t.Errorf("expected failed=1, got %d", snap.Failed)
	}
	if snap.OK+snap.Retryable+snap.Failed != snap.Count {
		t.Errorf("outcome counts do not sum to count: %+v", snap)
	}
}

func TestStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewStats(10 * time.Millisecond)
	stats.Record(100, OutcomeRetryable)
	time.Sleep(25 * time.Millisecond)

	snap := stats.Snapshot()
	if snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}
	if snap.Retryable != 0 {
		t.Fatalf("expected pruned sample to leave no outcome count, got %d", snap.Retryable)
	}

	stats.Record(200, OutcomeOK)
	snap = stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected fresh sample to define the range, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
	if snap.OK != 1 {
		t.Fatalf("expected ok=1, got %d", snap.OK)
	}
}

func TestStatsRecordClampsNegativeDuration(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(-10, OutcomeOK)
	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}
