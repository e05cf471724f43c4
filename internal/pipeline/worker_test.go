package pipeline

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datahalo/briefing/internal/analysis"
	"github.com/datahalo/briefing/internal/report"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorker_ProcessSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":"CURRENT AFFAIRS ANALYSIS\n• point one\n• point two","model":"halo-v2","credibility_score":0.9}`))
	}))
	defer srv.Close()

	client := analysis.NewClient(srv.URL, "k")
	defer client.Close()
	reports := NewReportStore(time.Hour)
	w := NewWorker(client, reports, discardLogger())

	job := &Job{ID: "job-1", JournalistID: "jr-1", Status: StatusQueued, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q (errors: %v)", snap.Status, snap.Errors)
	}
	if snap.BlockCount != 2 {
		t.Errorf("expected 2 blocks, got %d", snap.BlockCount)
	}

	cached := reports.Get("jr-1")
	if cached == nil {
		t.Fatal("expected cached report")
	}
	if cached.Model != "halo-v2" || cached.CredibilityScore != 0.9 {
		t.Errorf("metadata not carried over: %+v", cached)
	}
	if cached.Blocks[0].Kind != report.KindHeading || cached.Blocks[1].Kind != report.KindBullets {
		t.Errorf("unexpected block kinds: %+v", cached.Blocks)
	}
}

func TestWorker_ProcessHTMLWrappedSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":"<p>CURRENT AFFAIRS ANALYSIS</p><p>Some intro line.</p>","model":"halo-v2"}`))
	}))
	defer srv.Close()

	client := analysis.NewClient(srv.URL, "k")
	defer client.Close()
	reports := NewReportStore(time.Hour)
	w := NewWorker(client, reports, discardLogger())

	job := &Job{ID: "job-2", JournalistID: "jr-2", Status: StatusQueued}
	w.Process(context.Background(), job)

	cached := reports.Get("jr-2")
	if cached == nil {
		t.Fatal("expected cached report")
	}
	if cached.Blocks[0].Kind != report.KindHeading || cached.Blocks[0].Level != 2 {
		t.Errorf("expected level-2 heading after markup strip, got %+v", cached.Blocks[0])
	}
}

func TestWorker_ProcessFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unknown journalist"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := analysis.NewClient(srv.URL, "k")
	defer client.Close()
	reports := NewReportStore(time.Hour)
	w := NewWorker(client, reports, discardLogger())

	job := &Job{ID: "job-3", JournalistID: "nobody", Status: StatusQueued}
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", snap.Status)
	}
	if len(snap.Errors) == 0 {
		t.Error("expected a recorded error")
	}
	// A 404 is not retryable, so exactly one attempt.
	if snap.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", snap.Attempts)
	}
	if reports.Get("nobody") != nil {
		t.Error("expected no cached report after failure")
	}
}

func TestWorker_ProcessSummaryWithNoContent(t *testing.T) {
	// Markup-only summaries strip down to nothing renderable.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":"<script>alert(1)</script>","model":"halo-v2"}`))
	}))
	defer srv.Close()

	client := analysis.NewClient(srv.URL, "k")
	defer client.Close()
	reports := NewReportStore(time.Hour)
	w := NewWorker(client, reports, discardLogger())

	job := &Job{ID: "job-4", JournalistID: "jr-4", Status: StatusQueued}
	w.Process(context.Background(), job)

	if snap := job.Snapshot(); snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", snap.Status)
	}
}
