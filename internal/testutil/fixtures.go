package testutil

import (
	"fmt"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

// SnapshotJSON returns a two-player leaderboard document with the provided
// metadata values. bob leads alice in document order.
func SnapshotJSON(ts, interval int64) string {
	return fmt.Sprintf(`{
	"bob": {"rating": 2105.0, "W": 1, "D": 0, "L": 2, "last_game": "2023-11-14", "Average_TC": "3+2"},
	"alice": {"rating": 1900.4, "W": 5, "D": 1, "L": 2, "last_game": "2023-11-13", "Average_TC": "5+3"},
	"metadata": {"last_update_timestamp": %d, "update_interval": %d}
}`, ts, interval)
}

// SampleSnapshot builds the decoded form of SnapshotJSON.
func SampleSnapshot(ts, interval int64) domain.Snapshot {
	return domain.Snapshot{
		Players: []domain.PlayerEntry{
			{Name: "bob", Record: domain.PlayerRecord{
				Rating: 2105.0, Wins: 1, Draws: 0, Losses: 2,
				LastGame: "2023-11-14", AverageTC: "3+2",
			}},
			{Name: "alice", Record: domain.PlayerRecord{
				Rating: 1900.4, Wins: 5, Draws: 1, Losses: 2,
				LastGame: "2023-11-13", AverageTC: "5+3",
			}},
		},
		Metadata: domain.Metadata{LastUpdateTimestamp: ts, UpdateInterval: interval},
	}
}
