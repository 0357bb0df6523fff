package collector

import (
	"fmt"

	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/config"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
)

// New selects the fetcher implementation based on the configured mode.
func New(cfg *config.Config) (domain.Fetcher, error) {
	switch cfg.CollectorMode {
	case "http", "":
		return NewClient(cfg.BaseURL, cfg.UserAgent, cfg.TimeWindow)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown collector_mode: %s (use 'http' or 'mock')", cfg.CollectorMode)
	}
}
