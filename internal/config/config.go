package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	BaseURL       string `yaml:"base_url"`
	UserAgent     string `yaml:"user_agent"`
	DatabasePath  string `yaml:"database_path"`
	ReportPath    string `yaml:"report_path"`
	CachePath     string `yaml:"cache_path"`
	Port          string `yaml:"port"`
	FetchLimit    int    `yaml:"fetch_limit"`
	TimeWindow    string `yaml:"time_window"`
	CollectorMode string `yaml:"collector_mode"`
	// RunTimeoutSec bounds one ETL run or report generation triggered by the wrapper.
	RunTimeoutSec int `yaml:"run_timeout_seconds"`
}

func (c *Config) RunTimeout() time.Duration {
	return time.Duration(c.RunTimeoutSec) * time.Second
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		BaseURL:       "https://www.reddit.com",
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		DatabasePath:  "posts.db",
		ReportPath:    "interactive_report.html",
		CachePath:     "subreddits.json",
		Port:          "5000",
		FetchLimit:    100,
		TimeWindow:    "year",
		CollectorMode: "http",
		RunTimeoutSec: 60,
	}
}

// Load reads and unmarshals the configuration file located at the given path.
// A missing file is not an error: defaults apply, adjusted by env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Env overrides, highest precedence.
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("REDDIT_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("COLLECTOR_MODE"); v != "" {
		cfg.CollectorMode = v
	}

	// Basic validation
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user_agent is required (Reddit rejects default user agents)")
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = 100
	}
	if cfg.TimeWindow == "" {
		cfg.TimeWindow = "year"
	}
	if cfg.RunTimeoutSec <= 0 {
		cfg.RunTimeoutSec = 60
	}

	return cfg, nil
}
