package config

// UIConfig controls the render surface.
type UIConfig struct {
	Format       string `yaml:"format"` // term | html
	Color        bool   `yaml:"color"`
	Title        string `yaml:"title"`
	HTMLOut      string `yaml:"html_out"`
	PlayerFilter string `yaml:"player_filter"`
}
