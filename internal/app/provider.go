package app

import (
	"log/slog"

	"github.com/notune/lqo-leaderboard/internal/config"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/metrics"
	"github.com/notune/lqo-leaderboard/internal/providers"
	"github.com/notune/lqo-leaderboard/internal/providers/fixture"
	"github.com/notune/lqo-leaderboard/internal/providers/lqoweb"
)

// buildProvider assembles the snapshot provider with the shared wrappers:
// min-gap spacing toward the upstream, then logging and fetch metrics.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.SnapshotProvider, error) {
	base, name, err := selectProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	gapped := providers.NewMinGapProvider(base, cfg.Board.MinFetchGap, logger)
	return providers.NewInstrumentedProvider(gapped, name, logger, recorder), nil
}

func selectProvider(cfg config.Config, logger *slog.Logger) (providers.SnapshotProvider, string, error) {
	switch cfg.Provider {
	case fixture.Name, "":
		return fixture.New(cfg.DemoInterval), fixture.Name, nil
	case lqoweb.Name:
		client, err := lqoweb.NewClient(lqoweb.Config{
			URL:     cfg.Board.URL,
			Timeout: cfg.Board.HTTPTimeout,
		})
		if err != nil {
			return nil, "", err
		}
		return client, lqoweb.Name, nil
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(cfg.DemoInterval), fixture.Name, nil
	}
}
