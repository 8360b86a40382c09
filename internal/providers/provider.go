package providers

import (
	"context"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

// SnapshotProvider defines how a leaderboard snapshot is fetched. Every call
// reaches upstream; callers own caching decisions, providers own transport.
type SnapshotProvider interface {
	FetchSnapshot(ctx context.Context) (domain.Snapshot, error)
}

// SnapshotFunc adapts a plain function to a SnapshotProvider.
type SnapshotFunc func(ctx context.Context) (domain.Snapshot, error)

// FetchSnapshot calls the wrapped function.
func (f SnapshotFunc) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	return f(ctx)
}
