package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/notune/lqo-leaderboard/internal/domain"
	"github.com/notune/lqo-leaderboard/internal/logging"
)

// defaultMinFetchGap keeps accidental refresh storms off the public site.
const defaultMinFetchGap = 10 * time.Second

// minGapProvider wraps a SnapshotProvider and enforces a minimum spacing
// between upstream calls to stay polite toward the public endpoint.
type minGapProvider struct {
	next    SnapshotProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewMinGapProvider returns a SnapshotProvider that admits the first call
// immediately and spaces later calls at least gap apart, blocking until the
// gap elapses or the context ends.
func NewMinGapProvider(next SnapshotProvider, gap time.Duration, logger *slog.Logger) SnapshotProvider {
	if gap <= 0 {
		gap = defaultMinFetchGap
	}
	return &minGapProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(gap), 1),
		logger:  logger,
	}
}

func (p *minGapProvider) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	if p == nil || p.next == nil {
		logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, "min-gap"))
		return domain.Snapshot{}, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logging.Warn(p.logger, "min-gap fetch canceled", slog.String(logging.FieldProvider, "min-gap"))
		return domain.Snapshot{}, err
	}
	return p.next.FetchSnapshot(ctx)
}
