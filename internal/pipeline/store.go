package pipeline

import (
	"sync"
	"time"

	"github.com/datahalo/briefing/internal/report"
)

// ReportStore caches the latest parsed report per journalist. Entries expire
// by fetch age; the dashboard triggers a refresh job when it sees a miss.
type ReportStore struct {
	mu      sync.Mutex
	reports map[string]*report.Report
	maxAge  time.Duration
}

func NewReportStore(maxAge time.Duration) *ReportStore {
	return &ReportStore{
		reports: make(map[string]*report.Report),
		maxAge:  maxAge,
	}
}

// Put stores (or replaces) the cached report for its journalist.
func (s *ReportStore) Put(r *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.JournalistID] = r
}

// Get returns the cached report, or nil when absent or expired. Callers must
// treat the result as read-only.
func (s *ReportStore) Get(journalistID string) *report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[journalistID]
	if !ok {
		return nil
	}
	if time.Since(r.FetchedAt) > s.maxAge {
		delete(s.reports, journalistID)
		return nil
	}
	return r
}

// Cleanup removes expired reports.
func (s *ReportStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, r := range s.reports {
		if now.Sub(r.FetchedAt) > s.maxAge {
			delete(s.reports, id)
		}
	}
}

// Len reports the number of cached entries, expired or not.
func (s *ReportStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}
