package fixture

import (
	"context"
	"sync"
	"time"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

// Name tags log lines and metrics emitted for this provider.
const Name = "fixture"

// DefaultInterval is the update_interval the fixture advertises, kept short
// so local runs re-fetch visibly.
const DefaultInterval = 30 * time.Second

// Provider serves deterministic snapshots useful for local runs and tests.
// Each fetch advances last_update_timestamp and drifts ratings slightly so a
// live viewer visibly changes.
type Provider struct {
	now      func() time.Time
	interval time.Duration

	mu      sync.Mutex
	fetches int
}

// New creates a fixture provider advertising the given update interval.
func New(interval time.Duration) *Provider {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Provider{
		now:      time.Now,
		interval: interval,
	}
}

// FetchSnapshot returns the canned leaderboard with a fresh timestamp.
func (p *Provider) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	_ = ctx

	p.mu.Lock()
	p.fetches++
	n := p.fetches
	p.mu.Unlock()

	now := p.now()
	lastGame := now.Add(-90 * time.Minute).UTC().Format("2006-01-02")
	drift := float64((n-1)%5) * 1.5

	players := []domain.PlayerEntry{
		{Name: "QueenSideCastle", Record: domain.PlayerRecord{Rating: 2466.1 + drift, Wins: 312, Draws: 18, Losses: 240, LastGame: lastGame, AverageTC: "3+2"}},
		{Name: "PawnStorm99", Record: domain.PlayerRecord{Rating: 2391.7, Wins: 148, Draws: 9, Losses: 133, LastGame: lastGame, AverageTC: "5+3"}},
		{Name: "FianchettoFox", Record: domain.PlayerRecord{Rating: 2287.4 - drift, Wins: 86, Draws: 12, Losses: 95, LastGame: lastGame, AverageTC: "5+0"}},
		{Name: "CaroKannon", Record: domain.PlayerRecord{Rating: 2201.0, Wins: 64, Draws: 3, Losses: 71, LastGame: lastGame, AverageTC: "3+0"}},
		{Name: "EnPassantFan", Record: domain.PlayerRecord{Rating: 2201.0, Wins: 51, Draws: 7, Losses: 66, LastGame: lastGame, AverageTC: "10+0"}},
		{Name: "ZugzwangZed", Record: domain.PlayerRecord{Rating: 2104.9, Wins: 33, Draws: 2, Losses: 48, LastGame: lastGame, AverageTC: "5+3"}},
		{Name: "BackRankBandit", Record: domain.PlayerRecord{Rating: 1998.3, Wins: 21, Draws: 1, Losses: 39, LastGame: lastGame, AverageTC: "3+2"}},
		{Name: "RookieMistake", Record: domain.PlayerRecord{Rating: 1840.6, Wins: 9, Draws: 0, Losses: 27, LastGame: lastGame, AverageTC: "5+0"}},
	}

	return domain.Snapshot{
		Players: players,
		Metadata: domain.Metadata{
			LastUpdateTimestamp: now.UnixMilli(),
			UpdateInterval:      p.interval.Milliseconds(),
			LastGameTimestamp:   now.Add(-90 * time.Minute).UnixMilli(),
		},
	}, nil
}
