// Package web exports the leaderboard as a standalone HTML document shaped
// like the public page: countdown line on top, ranked table below.
package web

import (
	"bytes"
	"errors"
	"html"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/notune/lqo-leaderboard/internal/domain"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/render"
	"github.com/notune/lqo-leaderboard/internal/timeutil"
)

const defaultTitle = "Leaderboard"

var placeClasses = [render.TopRanks]string{"first-place", "second-place", "third-place"}

// ErrNoTarget is returned when neither an output path nor a writer is given.
var ErrNoTarget = errors.New("web surface: output path or writer required")

// Options controls the HTML surface.
type Options struct {
	// Path receives the rendered document via temp-file-and-rename, so
	// readers never observe a half-written page.
	Path string
	// Writer receives the document directly and wins over Path.
	Writer io.Writer
	Title  string
	Logger *slog.Logger
}

// Surface renders the full document on every update.
type Surface struct {
	mu     sync.Mutex
	path   string
	w      io.Writer
	title  string
	logger *slog.Logger
	policy *bluemonday.Policy
	now    func() time.Time

	rows  []domain.Row
	timer string
}

// New constructs an HTML surface.
func New(opts Options) (*Surface, error) {
	if opts.Path == "" && opts.Writer == nil {
		return nil, ErrNoTarget
	}
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	return &Surface{
		path:   opts.Path,
		w:      opts.Writer,
		title:  title,
		logger: opts.Logger,
		policy: bluemonday.StrictPolicy(),
		now:    time.Now,
	}, nil
}

// ReplaceRows swaps the table contents and rewrites the document.
func (s *Surface) ReplaceRows(rows []domain.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows[:0], rows...)
	s.flushLocked()
}

// SetTimer swaps the timer line and rewrites the document.
func (s *Surface) SetTimer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = text
	s.flushLocked()
}

type rowView struct {
	Rank     int
	Name     string
	URL      string
	Rating   int
	Games    int
	LastGame string
	TC       string
	Class    string
}

type pageView struct {
	Title       string
	Timer       string
	Rows        []rowView
	GeneratedAt string
}

func (s *Surface) flushLocked() {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, s.viewLocked()); err != nil {
		logging.Error(s.logger, "html render failed", err, slog.String(logging.FieldSurface, "web"))
		return
	}

	if s.w != nil {
		if _, err := s.w.Write(buf.Bytes()); err != nil {
			logging.Error(s.logger, "html write failed", err, slog.String(logging.FieldSurface, "web"))
		}
		return
	}

	if err := s.writeFile(buf.Bytes()); err != nil {
		logging.Error(s.logger, "html export failed", err,
			slog.String(logging.FieldSurface, "web"),
			slog.String(logging.FieldURL, s.path),
		)
	}
}

func (s *Surface) viewLocked() pageView {
	view := pageView{
		Title:       s.title,
		Timer:       s.timer,
		GeneratedAt: timeutil.FormatClock(s.now()),
	}

	for _, row := range s.rows {
		sanitized := row
		sanitized.Name = html.UnescapeString(s.policy.Sanitize(row.Name))

		view.Rows = append(view.Rows, rowView{
			Rank:     row.Rank,
			Name:     render.DisplayName(sanitized),
			URL:      render.ProfileURL(render.CleanName(sanitized.Name)),
			Rating:   render.RoundRating(row.Rating),
			Games:    row.Games,
			LastGame: row.LastGame,
			TC:       row.AverageTC,
			Class:    placeClass(row.Rank),
		})
	}
	return view
}

func (s *Surface) writeFile(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".leaderboard-*.html")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

func placeClass(rank int) string {
	if rank >= 1 && rank <= render.TopRanks {
		return placeClasses[rank-1]
	}
	return ""
}

var pageTmpl = template.Must(template.New("leaderboard").Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 720px; }
table { border-collapse: collapse; width: 100%; }
th, td { padding: 4px 10px; text-align: left; border-bottom: 1px solid #ddd; }
tr.first-place td { background: #ffd700; }
tr.second-place td { background: #c0c0c0; }
tr.third-place td { background: #cd7f32; }
.countdown { margin: 0.5rem 0 1rem; }
.generated { color: #777; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="countdown">Next update in: <span id="timer">{{.Timer}}</span></div>
<table>
<thead><tr><th>#</th><th>Player</th><th>Rating</th><th>Games</th><th>Last Game</th><th>TC</th></tr></thead>
<tbody>
{{range .Rows}}<tr{{if .Class}} class="{{.Class}}"{{end}}>
<td>{{.Rank}}</td>
<td><a class="lichess-link" href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a></td>
<td>{{.Rating}}</td>
<td>{{.Games}}</td>
<td>{{.LastGame}}</td>
<td>{{.TC}}</td>
</tr>
{{end}}</tbody>
</table>
<p class="generated">Rendered at {{.GeneratedAt}}</p>
</body>
</html>
`
