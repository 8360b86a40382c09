package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/notune/lqo-leaderboard/internal/config"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/render"
	"github.com/notune/lqo-leaderboard/internal/render/term"
	"github.com/notune/lqo-leaderboard/internal/render/web"
)

// termOut remains a var for tests to capture frames.
var termOut io.Writer = os.Stdout

// buildSurface assembles the render surface for the configured format and
// wraps it in the fuzzy row filter when PLAYER_FILTER is set.
func buildSurface(cfg config.Config, logger *slog.Logger) (render.Surface, error) {
	base, err := selectSurface(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.UI.PlayerFilter != "" {
		return render.NewFilterSurface(base, cfg.UI.PlayerFilter), nil
	}
	return base, nil
}

func selectSurface(cfg config.Config, logger *slog.Logger) (render.Surface, error) {
	switch cfg.UI.Format {
	case "term", "":
		return newTermSurface(cfg, logger), nil
	case "html":
		return web.New(web.Options{
			Path:   cfg.UI.HTMLOut,
			Title:  cfg.UI.Title,
			Logger: logger,
		})
	default:
		logging.Warn(logger, "unknown ui format, falling back to term", slog.String(logging.FieldSurface, cfg.UI.Format))
		return newTermSurface(cfg, logger), nil
	}
}

func newTermSurface(cfg config.Config, logger *slog.Logger) *term.Surface {
	return term.New(termOut, term.Options{
		Title:  cfg.UI.Title,
		Color:  cfg.UI.Color,
		Logger: logger,
	})
}
