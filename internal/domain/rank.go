package domain

import "sort"

// Rank converts a snapshot into the ordered display list: rating descending,
// ties kept in document order, capped at MaxRows. Games is the sum of wins,
// draws and losses.
func Rank(snap Snapshot) []Row {
	rows := make([]Row, 0, len(snap.Players))
	for _, p := range snap.Players {
		rows = append(rows, Row{
			Name:      p.Name,
			Rating:    p.Record.Rating,
			Games:     p.Record.Games(),
			LastGame:  p.Record.LastGame,
			AverageTC: p.Record.AverageTC,
			Bot:       p.Record.Bot,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rating > rows[j].Rating
	})

	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
