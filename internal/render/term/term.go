// Package term renders the leaderboard as a full-frame redraw on a
// terminal: title, timer line, then the ranked table.
package term

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/notune/lqo-leaderboard/internal/domain"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/render"
)

const (
	defaultTitle   = "Leaderboard"
	defaultNameLen = 24

	timerPrefix = "Next update in: "

	ansiClear  = "\x1b[2J\x1b[H"
	ansiReset  = "\x1b[0m"
	ansiGold   = "\x1b[1;33m"
	ansiSilver = "\x1b[1;37m"
	ansiBronze = "\x1b[0;33m"
)

var topColors = [render.TopRanks]string{ansiGold, ansiSilver, ansiBronze}

// Options controls terminal rendering.
type Options struct {
	Title      string
	Color      bool // ANSI colors and clear-screen redraws
	MaxNameLen int
	Logger     *slog.Logger
}

// Surface draws the whole frame on every update so the terminal always
// mirrors the latest state.
type Surface struct {
	mu      sync.Mutex
	w       io.Writer
	title   string
	color   bool
	nameLen int
	logger  *slog.Logger

	rows  []domain.Row
	timer string
}

// New constructs a terminal surface writing to w.
func New(w io.Writer, opts Options) *Surface {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	nameLen := opts.MaxNameLen
	if nameLen <= 0 {
		nameLen = defaultNameLen
	}
	return &Surface{
		w:       w,
		title:   title,
		color:   opts.Color,
		nameLen: nameLen,
		logger:  opts.Logger,
	}
}

// ReplaceRows swaps the table contents and redraws the frame.
func (s *Surface) ReplaceRows(rows []domain.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows[:0], rows...)
	s.redrawLocked()
}

// SetTimer swaps the timer line and redraws the frame.
func (s *Surface) SetTimer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = text
	s.redrawLocked()
}

func (s *Surface) redrawLocked() {
	var buf bytes.Buffer

	if s.color {
		buf.WriteString(ansiClear)
	}
	buf.WriteString(s.title)
	buf.WriteByte('\n')
	buf.WriteString(timerPrefix)
	buf.WriteString(s.timer)
	buf.WriteString("\n\n")

	fmt.Fprintf(&buf, "  %4s  %-*s  %6s  %6s  %-10s  %s\n",
		"#", s.nameLen, "Player", "Rating", "Games", "Last Game", "TC")

	for _, row := range s.rows {
		s.writeRow(&buf, row)
	}
	if !s.color {
		buf.WriteByte('\n')
	}

	if _, err := s.w.Write(buf.Bytes()); err != nil {
		logging.Error(s.logger, "terminal draw failed", err, slog.String(logging.FieldSurface, "term"))
	}
}

func (s *Surface) writeRow(buf *bytes.Buffer, row domain.Row) {
	top := row.Rank >= 1 && row.Rank <= render.TopRanks

	marker := "  "
	if top && !s.color {
		marker = "* "
	}
	if top && s.color {
		buf.WriteString(topColors[row.Rank-1])
	}

	fmt.Fprintf(buf, "%s%4d. %-*s  %6d  %6d  %-10s  %s",
		marker,
		row.Rank,
		s.nameLen, s.trimName(render.DisplayName(row)),
		render.RoundRating(row.Rating),
		row.Games,
		row.LastGame,
		row.AverageTC,
	)

	if top && s.color {
		buf.WriteString(ansiReset)
	}
	buf.WriteByte('\n')
}

func (s *Surface) trimName(name string) string {
	runes := []rune(name)
	if len(runes) <= s.nameLen {
		return name
	}
	if s.nameLen <= 1 {
		return string(runes[:s.nameLen])
	}
	return string(runes[:s.nameLen-1]) + "…"
}
