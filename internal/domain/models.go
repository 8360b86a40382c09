package domain

import "time"

// MetadataKey is the reserved snapshot key carrying refresh control data
// rather than a player record.
const MetadataKey = "metadata"

// DefaultUpdateIntervalMillis is assumed when a snapshot omits or zeroes
// its update_interval (ten minutes).
const DefaultUpdateIntervalMillis int64 = 600000

// MaxRows caps how many ranked rows a snapshot yields.
const MaxRows = 100

// PlayerRecord is the per-player value in the upstream snapshot.
type PlayerRecord struct {
	Rating    float64 `json:"rating"`
	Wins      int     `json:"W"`
	Draws     int     `json:"D"`
	Losses    int     `json:"L"`
	LastGame  string  `json:"last_game"`
	AverageTC string  `json:"Average_TC"`
	Bot       bool    `json:"BOT"`
}

// Games returns the record's total game count.
func (r PlayerRecord) Games() int {
	return r.Wins + r.Draws + r.Losses
}

// Metadata is the snapshot's refresh control block.
type Metadata struct {
	LastUpdateTimestamp int64 `json:"last_update_timestamp"`
	UpdateInterval      int64 `json:"update_interval"`
	LastGameTimestamp   int64 `json:"last_game_timestamp"`
}

// EffectiveTimestamp returns last_update_timestamp in epoch milliseconds,
// substituting now when the snapshot carries no usable value.
func (m Metadata) EffectiveTimestamp(now time.Time) int64 {
	if m.LastUpdateTimestamp <= 0 {
		return now.UnixMilli()
	}
	return m.LastUpdateTimestamp
}

// EffectiveInterval returns update_interval in milliseconds, substituting
// the default when the snapshot carries no usable value.
func (m Metadata) EffectiveInterval() int64 {
	if m.UpdateInterval <= 0 {
		return DefaultUpdateIntervalMillis
	}
	return m.UpdateInterval
}

// PlayerEntry pairs a player name with its record, preserving the position
// the pair held in the snapshot document.
type PlayerEntry struct {
	Name   string
	Record PlayerRecord
}

// Row is one display row of the ranked leaderboard. Rank is 1-based and
// survives downstream filtering.
type Row struct {
	Rank      int
	Name      string
	Rating    float64
	Games     int
	LastGame  string
	AverageTC string
	Bot       bool
}
