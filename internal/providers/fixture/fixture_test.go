package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

func TestFetchSnapshotAdvancesTimestamp(t *testing.T) {
	p := New(time.Minute)
	current := time.UnixMilli(1700000000000)
	p.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}

	first, err := p.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("expected first fetch to succeed, got %v", err)
	}
	second, err := p.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("expected second fetch to succeed, got %v", err)
	}

	if second.Metadata.LastUpdateTimestamp <= first.Metadata.LastUpdateTimestamp {
		t.Fatalf("expected timestamp to advance, got %d then %d",
			first.Metadata.LastUpdateTimestamp, second.Metadata.LastUpdateTimestamp)
	}
}

func TestFetchSnapshotAdvertisesInterval(t *testing.T) {
	p := New(2 * time.Minute)

	snap, err := p.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	if snap.Metadata.UpdateInterval != 120000 {
		t.Fatalf("expected 120000ms interval, got %d", snap.Metadata.UpdateInterval)
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	p := New(0)
	snap, err := p.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	if snap.Metadata.UpdateInterval != DefaultInterval.Milliseconds() {
		t.Fatalf("expected default interval, got %d", snap.Metadata.UpdateInterval)
	}
}

func TestFetchSnapshotRanksCleanly(t *testing.T) {
	p := New(time.Minute)

	snap, err := p.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}

	rows := domain.Rank(snap)
	if len(rows) != len(snap.Players) {
		t.Fatalf("expected every fixture player ranked, got %d of %d", len(rows), len(snap.Players))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Rating > rows[i-1].Rating {
			t.Fatalf("expected descending ratings, got %v after %v", rows[i].Rating, rows[i-1].Rating)
		}
	}
	for _, row := range rows {
		if row.Games == 0 {
			t.Fatalf("expected fixture players to carry games, got %+v", row)
		}
	}
}
