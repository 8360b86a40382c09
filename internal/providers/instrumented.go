package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/notune/lqo-leaderboard/internal/domain"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/metrics"
)

// instrumentedProvider decorates a SnapshotProvider with logging and fetch
// metrics so callers see uniform telemetry regardless of the upstream.
type instrumentedProvider struct {
	next    SnapshotProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider wraps next with per-fetch logging and metrics. The
// name tags every log line and metric sample.
func NewInstrumentedProvider(next SnapshotProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) SnapshotProvider {
	return &instrumentedProvider{
		next:    next,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if p == nil || p.next == nil {
		logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, p.name))
		return domain.Snapshot{}, ErrProviderUnavailable
	}

	start := time.Now()
	snap, err := p.next.FetchSnapshot(ctx)
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordFetchAttempt(p.name, elapsed, err)
	}
	if err != nil {
		logging.Error(p.logger, "snapshot fetch failed", err,
			slog.String(logging.FieldProvider, p.name),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return domain.Snapshot{}, err
	}

	logging.Debug(p.logger, "snapshot fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldCount, len(snap.Players)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return snap, nil
}
