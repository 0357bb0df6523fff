package pipeline

import (
	"context"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/config"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/report"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/storage"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/transform"
)

// topN is the row budget of the report query; both chart panels are derived
// from this one result set.
const topN = 10

// Service wires extract, transform, load and report into the two operations
// the wrapper invokes. The store handle is opened per run and closed before
// the run returns.
type Service struct {
	cfg     *config.Config
	fetcher domain.Fetcher
}

func New(cfg *config.Config, fetcher domain.Fetcher) *Service {
	return &Service{cfg: cfg, fetcher: fetcher}
}

// Run executes one extract → transform → load pass for the given community.
// The display title is informational only; a failed stage aborts the run and
// leaves the previous table contents intact.
func (s *Service) Run(ctx context.Context, subreddit, title string) error {
	raw, err := s.fetcher.FetchTopPosts(ctx, subreddit, s.cfg.FetchLimit)
	if err != nil {
		return err
	}

	rows, err := transform.Transform(raw)
	if err != nil {
		return err
	}

	store, err := storage.Open(s.cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Replace(ctx, rows)
}

// GenerateReport reads the stored posts and writes the two-panel HTML report.
// An empty or absent posts table still produces a valid (empty) report.
func (s *Service) GenerateReport(ctx context.Context) error {
	store, err := storage.Open(s.cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.TopPostsByScore(ctx, topN)
	if err != nil {
		if !domain.IsKind(err, domain.ErrEmptyResult) {
			return err
		}
		rows = nil
	}

	gen := &report.Generator{OutPath: s.cfg.ReportPath}
	return gen.Generate(rows)
}

// RefreshSubreddits fetches the popular-subreddit directory and rewrites the
// file cache. On fetch failure the previous cache contents are preserved and
// returned if available.
func (s *Service) RefreshSubreddits(ctx context.Context) ([]domain.Subreddit, error) {
	cache := &storage.FileCache{Path: s.cfg.CachePath}

	subs, err := s.fetcher.FetchPopularSubreddits(ctx, s.cfg.FetchLimit)
	if err != nil {
		var cached []domain.Subreddit
		if ok, cerr := cache.Get(&cached); cerr == nil && ok {
			return cached, nil
		}
		return nil, err
	}

	if err := cache.Put(subs); err != nil {
		return nil, domain.NewAppError(domain.ErrPersistence, "caching subreddit list", err)
	}
	return subs, nil
}
