package render

import (
	"math"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

// Surface is a rendering target: a table region holding the ranked rows and
// a single timer line. Implementations must tolerate concurrent calls.
type Surface interface {
	// ReplaceRows clears the table region and draws the given rows in order.
	ReplaceRows(rows []domain.Row)
	// SetTimer replaces the timer line: countdown text or a halt notice.
	SetTimer(text string)
}

// TopRanks is how many leading rows get a distinct visual marker.
const TopRanks = 3

const profileBaseURL = "https://lichess.org/@/"

// ProfileURL returns the player's public profile link.
func ProfileURL(name string) string {
	return profileBaseURL + url.PathEscape(name)
}

// RoundRating rounds a rating to the integer shown on screen.
func RoundRating(rating float64) int {
	return int(math.Round(rating))
}

// CleanName scrubs an untrusted player name for display: control runes and
// invalid UTF-8 are dropped, surrounding whitespace is trimmed.
func CleanName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == utf8.RuneError || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(cleaned)
}

// DisplayName is the scrubbed name with the upstream BOT marker restored,
// the way lichess prefixes bot accounts.
func DisplayName(row domain.Row) string {
	name := CleanName(row.Name)
	if row.Bot {
		return "BOT " + name
	}
	return name
}
