package render

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

// FilterSurface narrows rendered rows to fuzzy matches of a query while
// keeping each row's original rank. Timer updates pass through untouched.
type FilterSurface struct {
	next  Surface
	query string
}

// NewFilterSurface wraps next with a fuzzy name filter. An empty query
// leaves rendering unchanged.
func NewFilterSurface(next Surface, query string) *FilterSurface {
	return &FilterSurface{next: next, query: query}
}

// ReplaceRows forwards only rows whose name fuzzy-matches the query.
func (f *FilterSurface) ReplaceRows(rows []domain.Row) {
	if f.query == "" {
		f.next.ReplaceRows(rows)
		return
	}

	filtered := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if fuzzy.MatchNormalizedFold(f.query, row.Name) {
			filtered = append(filtered, row)
		}
	}
	f.next.ReplaceRows(filtered)
}

// SetTimer passes the timer line through.
func (f *FilterSurface) SetTimer(text string) {
	f.next.SetTimer(text)
}
