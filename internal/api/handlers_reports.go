package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/datahalo/briefing/internal/parser"
	"github.com/datahalo/briefing/internal/pipeline"
	"github.com/datahalo/briefing/internal/render"
	"github.com/datahalo/briefing/internal/report"
	"github.com/datahalo/briefing/internal/sanitize"
)

// handleParse parses a raw summary synchronously. The dashboard uses this to
// preview report text without touching the cache or the analysis service.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	blocks := parser.Parse(sanitize.Clean(req.Text))
	if blocks == nil {
		blocks = []report.Block{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"blocks": blocks})
}

// handleRefresh enqueues a refresh job for one journalist's report.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	journalistID := chi.URLParam(r, "journalistID")
	if journalistID == "" {
		jsonError(w, "journalist id is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:           uuid.NewString(),
		JournalistID: journalistID,
		Status:       pipeline.StatusQueued,
		Phase:        "queued",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":        job.ID,
		"journalist_id": job.JournalistID,
		"status":        job.Status,
		"poll_url":      fmt.Sprintf("/api/jobs/%s", job.ID),
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	journalistID := chi.URLParam(r, "journalistID")
	rep := s.orchestrator.Report(journalistID)
	if rep == nil {
		jsonError(w, "no cached report; trigger a refresh first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func (s *Server) handleGetReportHTML(w http.ResponseWriter, r *http.Request) {
	journalistID := chi.URLParam(r, "journalistID")
	rep := s.orchestrator.Report(journalistID)
	if rep == nil {
		jsonError(w, "no cached report; trigger a refresh first", http.StatusNotFound)
		return
	}

	out, err := render.HTML(rep.Blocks)
	if err != nil {
		s.log.Error("html render failed", "journalist_id", journalistID, "error", err)
		jsonError(w, "failed to render report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
