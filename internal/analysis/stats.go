package analysis

import (
	"slices"
	"sync"
	"time"
)

// Outcome classifies one call to the analysis service.
type Outcome string

const (
	// OutcomeOK is a 200 with a usable summary.
	OutcomeOK Outcome = "ok"
	// OutcomeRetryable is a 429 or 5xx, worth another attempt.
	OutcomeRetryable Outcome = "retryable"
	// OutcomeFailed covers everything else, including missing analyses,
	// transport errors, and unusable payloads.
	OutcomeFailed Outcome = "failed"
)

type sample struct {
	at         time.Time
	durationMs int64
	outcome    Outcome
}

// StatsSnapshot aggregates recent upstream calls: how each one ended plus
// the latency distribution across all of them.
type StatsSnapshot struct {
	Count     int `json:"count"`
	OK        int `json:"ok"`
	Retryable int `json:"retryable"`
	Failed    int `json:"failed"`

	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Stats tracks analysis-service calls within a rolling window.
type Stats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func NewStats(maxAge time.Duration) *Stats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Stats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one call observation.
func (s *Stats) Record(durationMs int64, outcome Outcome) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{at: now, durationMs: durationMs, outcome: outcome})
}

// Snapshot aggregates the samples still inside the window.
func (s *Stats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	snap := StatsSnapshot{Count: len(s.samples)}
	durations := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		switch sm.outcome {
		case OutcomeOK:
			snap.OK++
		case OutcomeRetryable:
			snap.Retryable++
		default:
			snap.Failed++
		}
		durations = append(durations, sm.durationMs)
		sum += sm.durationMs
	}
	slices.Sort(durations)

	snap.MinMs = durations[0]
	snap.MaxMs = durations[len(durations)-1]
	snap.AvgMs = float64(sum) / float64(len(durations))
	snap.P50Ms = percentile(durations, 50)
	snap.P95Ms = percentile(durations, 95)
	snap.P99Ms = percentile(durations, 99)
	return snap
}

func (s *Stats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	s.samples = slices.DeleteFunc(s.samples, func(sm sample) bool {
		return sm.at.Before(cutoff)
	})
}

// percentile interpolates linearly between the two nearest sorted samples.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}

	pos := float64(len(sorted)-1) * pct / 100
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo]) + frac*(float64(sorted[hi])-float64(sorted[lo]))
}
