package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/notune/lqo-leaderboard/internal/app"
	"github.com/notune/lqo-leaderboard/internal/config"
	"github.com/notune/lqo-leaderboard/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_VIEWER_RUN") == "1" {
		return
	}

	envLoadErr := loadDotEnv()

	once := flag.Bool("once", false, "fetch and render a single frame, then exit")
	providerFlag := flag.String("provider", "", "snapshot provider (fixture, lqoweb)")
	formatFlag := flag.String("format", "", "render surface (term, html)")
	urlFlag := flag.String("url", "", "leaderboard JSON url for the lqoweb provider")
	filterFlag := flag.String("filter", "", "fuzzy player name filter")
	flag.Parse()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "lqo-leaderboard",
		Version: appVersion,
	})
	if envLoadErr != nil {
		logger.Warn("could not load .env file", "error", envLoadErr)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *providerFlag, *formatFlag, *urlFlag, *filterFlag)

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to build viewer", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		if err := a.RunOnce(ctx); err != nil {
			logger.Error("refresh failed", "error", err)
			os.Exit(1)
		}
		return
	}

	a.Run(ctx)
}

// loadDotEnv seeds the environment from .env when one exists. A missing file
// is the normal case and not an error.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// applyFlags lets command line flags override environment configuration.
func applyFlags(cfg *config.Config, provider, format, url, filter string) {
	if provider != "" {
		cfg.Provider = provider
	}
	if format != "" {
		cfg.UI.Format = format
	}
	if url != "" {
		cfg.Board.URL = url
	}
	if filter != "" {
		cfg.UI.PlayerFilter = filter
	}
}
