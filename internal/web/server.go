package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/config"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/pipeline"
)

// Server is the thin wrapper around the core: it serves the dashboard page,
// the generated report file, and trigger endpoints for ETL runs and report
// generation. Runs are serialized and bounded by the configured timeout.
type Server struct {
	cfg      *config.Config
	pipeline *pipeline.Service
	logger   *slog.Logger

	// one ETL run or report generation in flight at a time
	mu sync.Mutex
}

func NewServer(cfg *config.Config, p *pipeline.Service, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, pipeline: p, logger: logger}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /interactive_report.html", s.handleReportFile)
	mux.HandleFunc("GET /get-subreddits", s.handleGetSubreddits)
	mux.HandleFunc("POST /run-etl", s.handleRunETL)
	mux.HandleFunc("POST /run-report", s.handleRunReport)

	s.logger.Info("Starting dashboard", "port", s.cfg.Port)
	return http.ListenAndServe(":"+s.cfg.Port, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func (s *Server) handleReportFile(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.cfg.ReportPath)
}

func (s *Server) handleGetSubreddits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RunTimeout())
	defer cancel()

	subs, err := s.pipeline.RefreshSubreddits(ctx)
	if err != nil {
		s.logger.Error("Subreddit refresh failed", "kind", domain.ErrorKind(err), "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

type etlRequest struct {
	Subreddit string `json:"subreddit"`
	Title     string `json:"title"`
}

func (s *Server) handleRunETL(w http.ResponseWriter, r *http.Request) {
	var req etlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, "error", "invalid request body")
		return
	}
	if req.Subreddit == "" {
		req.Subreddit = "r/India"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RunTimeout())
	defer cancel()

	if err := s.pipeline.Run(ctx, req.Subreddit, req.Title); err != nil {
		s.logger.Error("ETL run failed", "subreddit", req.Subreddit,
			"kind", domain.ErrorKind(err), "err", err)
		writeStatus(w, http.StatusBadRequest, "error", err.Error())
		return
	}
	s.logger.Info("ETL run complete", "subreddit", req.Subreddit, "title", req.Title)
	writeStatus(w, http.StatusOK, "success", "ETL completed")
}

func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RunTimeout())
	defer cancel()

	if err := s.pipeline.GenerateReport(ctx); err != nil {
		s.logger.Error("Report generation failed", "kind", domain.ErrorKind(err), "err", err)
		writeStatus(w, http.StatusBadRequest, "error", err.Error())
		return
	}
	s.logger.Info("Report generated", "path", s.cfg.ReportPath)
	writeStatus(w, http.StatusOK, "success", "Report generated")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, code int, status, msg string) {
	body := map[string]string{"status": status}
	if status == "error" {
		body["error"] = msg
	} else {
		body["message"] = msg
	}
	writeJSON(w, code, body)
}
