package domain

import (
	"testing"
	"time"
)

func TestPlayerRecordGamesSumsResults(t *testing.T) {
	record := PlayerRecord{Wins: 5, Draws: 1, Losses: 2}
	if got := record.Games(); got != 8 {
		t.Fatalf("expected 8 games, got %d", got)
	}
}

func TestPlayerRecordGamesZeroValue(t *testing.T) {
	if got := (PlayerRecord{}).Games(); got != 0 {
		t.Fatalf("expected 0 games, got %d", got)
	}
}

func TestEffectiveTimestampUsesSnapshotValue(t *testing.T) {
	now := time.UnixMilli(1800000000000)
	meta := Metadata{LastUpdateTimestamp: 1700000000000}
	if got := meta.EffectiveTimestamp(now); got != 1700000000000 {
		t.Fatalf("expected snapshot timestamp, got %d", got)
	}
}

func TestEffectiveTimestampFallsBackToNow(t *testing.T) {
	now := time.UnixMilli(1800000000000)
	for _, ts := range []int64{0, -5} {
		meta := Metadata{LastUpdateTimestamp: ts}
		if got := meta.EffectiveTimestamp(now); got != 1800000000000 {
			t.Fatalf("expected fallback to now for %d, got %d", ts, got)
		}
	}
}

func TestEffectiveIntervalUsesSnapshotValue(t *testing.T) {
	meta := Metadata{UpdateInterval: 120000}
	if got := meta.EffectiveInterval(); got != 120000 {
		t.Fatalf("expected snapshot interval, got %d", got)
	}
}

func TestEffectiveIntervalFallsBackToDefault(t *testing.T) {
	for _, interval := range []int64{0, -1} {
		meta := Metadata{UpdateInterval: interval}
		if got := meta.EffectiveInterval(); got != DefaultUpdateIntervalMillis {
			t.Fatalf("expected default interval for %d, got %d", interval, got)
		}
	}
}
