package domain

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestRankOrdersByRatingDescending(t *testing.T) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(sampleDoc), &snap); err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}

	rows := Rank(snap)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "bob" || rows[0].Rank != 1 {
		t.Fatalf("expected bob at rank 1, got %+v", rows[0])
	}
	if rows[1].Name != "alice" || rows[1].Rank != 2 {
		t.Fatalf("expected alice at rank 2, got %+v", rows[1])
	}
}

func TestRankComputesGamesTotal(t *testing.T) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(sampleDoc), &snap); err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}

	rows := Rank(snap)
	if rows[0].Games != 3 {
		t.Fatalf("expected bob games 3, got %d", rows[0].Games)
	}
	if rows[1].Games != 8 {
		t.Fatalf("expected alice games 8, got %d", rows[1].Games)
	}
}

func TestRankNeverEmitsMetadataRow(t *testing.T) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(sampleDoc), &snap); err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}

	for _, row := range Rank(snap) {
		if row.Name == MetadataKey {
			t.Fatal("expected metadata to never appear as a row")
		}
	}
}

func TestRankTiesKeepDocumentOrder(t *testing.T) {
	snap := Snapshot{Players: []PlayerEntry{
		{Name: "first", Record: PlayerRecord{Rating: 2000}},
		{Name: "second", Record: PlayerRecord{Rating: 2000}},
		{Name: "third", Record: PlayerRecord{Rating: 2000}},
	}}

	rows := Rank(snap)
	for i, want := range []string{"first", "second", "third"} {
		if rows[i].Name != want {
			t.Fatalf("expected tie at index %d to stay %s, got %s", i, want, rows[i].Name)
		}
	}
}

func TestRankCapsAtMaxRows(t *testing.T) {
	snap := Snapshot{}
	for i := 0; i < MaxRows+50; i++ {
		snap.Players = append(snap.Players, PlayerEntry{
			Name:   fmt.Sprintf("player%03d", i),
			Record: PlayerRecord{Rating: float64(3000 - i)},
		})
	}

	rows := Rank(snap)
	if len(rows) != MaxRows {
		t.Fatalf("expected %d rows, got %d", MaxRows, len(rows))
	}
	if rows[0].Rank != 1 || rows[len(rows)-1].Rank != MaxRows {
		t.Fatalf("expected ranks 1..%d, got %d..%d", MaxRows, rows[0].Rank, rows[len(rows)-1].Rank)
	}
	if rows[0].Name != "player000" {
		t.Fatalf("expected strongest player first, got %s", rows[0].Name)
	}
}

func TestRankEmptySnapshot(t *testing.T) {
	rows := Rank(Snapshot{})
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestRankDoesNotMutateSnapshot(t *testing.T) {
	snap := Snapshot{Players: []PlayerEntry{
		{Name: "low", Record: PlayerRecord{Rating: 1000}},
		{Name: "high", Record: PlayerRecord{Rating: 2000}},
	}}

	Rank(snap)
	if snap.Players[0].Name != "low" || snap.Players[1].Name != "high" {
		t.Fatalf("expected snapshot order untouched, got %+v", snap.Players)
	}
}

func BenchmarkRank(b *testing.B) {
	snap := Snapshot{}
	for i := 0; i < 250; i++ {
		snap.Players = append(snap.Players, PlayerEntry{
			Name:   fmt.Sprintf("player%03d", i),
			Record: PlayerRecord{Rating: float64(1200 + (i*37)%900), Wins: i, Losses: i / 2},
		})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rank(snap)
	}
}
