package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/collector"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/config"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/domain"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/pipeline"
	"github.com/satyadeep11singh/reddit-etl-dashboard/internal/web"
)

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	fetcher, err := collector.New(cfg)
	if err != nil {
		logger.Error("Failed to initialize collector", "error", err)
		os.Exit(1)
	}
	logger.Info("Collector initialized", "mode", cfg.CollectorMode)

	svc := pipeline.New(cfg, fetcher)

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		server := web.NewServer(cfg, svc, logger)
		if err := server.Start(); err != nil {
			logger.Error("Dashboard failed", "err", err)
			os.Exit(1)
		}

	case "etl":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: redditetl etl <subreddit> [title]")
			os.Exit(2)
		}
		subreddit := os.Args[2]
		title := ""
		if len(os.Args) > 3 {
			title = os.Args[3]
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout())
		defer cancel()
		if err := svc.Run(ctx, subreddit, title); err != nil {
			logger.Error("ETL run failed", "subreddit", subreddit,
				"kind", domain.ErrorKind(err), "err", err)
			os.Exit(1)
		}
		logger.Info("ETL run complete", "subreddit", subreddit, "title", title)

	case "report":
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout())
		defer cancel()
		if err := svc.GenerateReport(ctx); err != nil {
			logger.Error("Report generation failed", "kind", domain.ErrorKind(err), "err", err)
			os.Exit(1)
		}
		logger.Info("Report generated", "path", cfg.ReportPath)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (use 'serve', 'etl' or 'report')\n", cmd)
		os.Exit(2)
	}
}
