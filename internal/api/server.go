package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/datahalo/briefing/internal/config"
	"github.com/datahalo/briefing/internal/pipeline"
)

// Server is the HTTP API server for briefing.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.BriefingAPIKey, s.log))

		r.Post("/api/reports/parse", s.handleParse)
		r.Post("/api/journalists/{journalistID}/refresh", s.handleRefresh)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/journalists/{journalistID}/report", s.handleGetReport)
		r.Get("/api/journalists/{journalistID}/report.html", s.handleGetReportHTML)
		r.Get("/api/stats/analysis", s.handleAnalysisStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
