package config

import "time"

// BoardConfig controls how the viewer talks to the leaderboard host.
type BoardConfig struct {
	URL         string        `yaml:"url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	MinFetchGap time.Duration `yaml:"min_fetch_gap"`
}
