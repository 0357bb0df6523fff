package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/collector"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/config"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(dir, "posts.db")
	cfg.ReportPath = filepath.Join(dir, "interactive_report.html")
	cfg.CachePath = filepath.Join(dir, "subreddits.json")
	cfg.FetchLimit = 5

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cfg, pipeline.New(cfg, collector.NewMockClient()), logger)
}

func TestIndexPage(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()

	srv.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reddit ETL Dashboard")
}

func TestGetSubreddits(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()

	srv.handleGetSubreddits(rec, httptest.NewRequest(http.MethodGet, "/get-subreddits", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "r/mock0")
}

func TestRunETLThenReport(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/run-etl",
		strings.NewReader(`{"subreddit": "r/Test", "title": "Test"}`))
	srv.handleRunETL(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success"`)

	rec = httptest.NewRecorder()
	srv.handleRunReport(rec, httptest.NewRequest(http.MethodPost, "/run-report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success"`)

	// the generated report is served back
	rec = httptest.NewRecorder()
	srv.handleReportFile(rec, httptest.NewRequest(http.MethodGet, "/interactive_report.html", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Top 10 Reddit Posts for r/Test")
}

func TestRunETLBadBody(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/run-etl", strings.NewReader("{broken"))
	srv.handleRunETL(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
