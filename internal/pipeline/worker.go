package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/datahalo/briefing/internal/analysis"
	"github.com/datahalo/briefing/internal/parser"
	"github.com/datahalo/briefing/internal/report"
	"github.com/datahalo/briefing/internal/sanitize"
)

// Worker processes a single refresh job.
type Worker struct {
	analysis *analysis.Client
	reports  *ReportStore
	log      *slog.Logger
}

func NewWorker(client *analysis.Client, reports *ReportStore, log *slog.Logger) *Worker {
	return &Worker{
		analysis: client,
		reports:  reports,
		log:      log,
	}
}

// Process runs the full refresh for a job: fetch the summary from the
// analysis service, parse it into blocks, and cache the result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "journalist_id", job.JournalistID)

	// Phase 1: Fetch, retrying transient upstream failures.
	job.SetStatus(StatusFetching, "fetching summary")
	var summary *analysis.Summary
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		job.IncrAttempts()
		summary, lastErr = w.analysis.Fetch(ctx, job.JournalistID)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable fetch error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "fetching")
			return
		}
	}
	if lastErr != nil {
		log.Error("fetch failed", "error", lastErr)
		job.AddError(fmt.Sprintf("fetch: %s", lastErr))
		job.SetStatus(StatusFailed, "fetching")
		return
	}

	// Phase 2: Parse.
	job.SetStatus(StatusParsing, "parsing summary")
	blocks := parser.Parse(sanitize.Clean(summary.Summary))
	if len(blocks) == 0 {
		log.Warn("summary produced no blocks")
		job.AddError("no renderable content")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 3: Cache.
	w.reports.Put(&report.Report{
		JournalistID:     job.JournalistID,
		Blocks:           blocks,
		Model:            summary.Model,
		CredibilityScore: summary.CredibilityScore,
		GeneratedAt:      summary.GeneratedAt,
		FetchedAt:        time.Now(),
	})

	job.SetBlockCount(len(blocks))
	job.SetStatus(StatusCompleted, "done")
	log.Info("report refreshed", "blocks", len(blocks))
}
