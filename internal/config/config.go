package config

import (
	"os"
	"time"
)

// Config holds runtime configuration for the viewer.
type Config struct {
	Provider     string        `yaml:"provider"`
	DemoInterval time.Duration `yaml:"demo_interval"`
	Board        BoardConfig   `yaml:"board"`
	UI           UIConfig      `yaml:"ui"`
	Metrics      MetricsConfig `yaml:"metrics"`
}

// Load reads configuration with the usual precedence: environment variables
// win over the optional YAML file (LQO_CONFIG_FILE), which wins over built-in
// defaults. The only error case is a configured file that cannot be used.
func Load() (Config, error) {
	cfg := defaults()
	if err := applyFile(&cfg); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Provider:     defaultProvider,
		DemoInterval: defaultDemoInterval,
		Board: BoardConfig{
			HTTPTimeout: defaultHTTPTimeout,
			MinFetchGap: defaultMinFetchGap,
		},
		UI: UIConfig{
			Format:  defaultFormat,
			Color:   true,
			Title:   defaultTitle,
			HTMLOut: defaultHTMLOut,
		},
		Metrics: MetricsConfig{
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Provider = envOrDefault(envProvider, cfg.Provider)
	cfg.DemoInterval = durationEnvOrDefault(envDemoInterval, cfg.DemoInterval)

	cfg.Board.URL = envOrDefault(envBoardURL, cfg.Board.URL)
	cfg.Board.HTTPTimeout = durationEnvOrDefault(envHTTPTimeout, cfg.Board.HTTPTimeout)
	cfg.Board.MinFetchGap = durationEnvOrDefault(envMinFetchGap, cfg.Board.MinFetchGap)

	cfg.UI.Format = envOrDefault(envUIFormat, cfg.UI.Format)
	// NO_COLOR (any value) suppresses color unless UI_COLOR explicitly
	// turns it back on.
	color := cfg.UI.Color
	if os.Getenv(envNoColor) != "" {
		color = false
	}
	cfg.UI.Color = boolEnvOrDefault(envUIColor, color)
	cfg.UI.Title = envOrDefault(envUITitle, cfg.UI.Title)
	cfg.UI.HTMLOut = envOrDefault(envHTMLOut, cfg.UI.HTMLOut)
	cfg.UI.PlayerFilter = envOrDefault(envPlayerFilter, cfg.UI.PlayerFilter)

	cfg.Metrics.Enabled = boolEnvOrDefault(envMetricsOn, cfg.Metrics.Enabled)
	cfg.Metrics.Port = envOrDefault(envMetricsPort, cfg.Metrics.Port)
	cfg.Metrics.OtlpEndpoint = envOrDefault(envOtelEndpoint, cfg.Metrics.OtlpEndpoint)
	cfg.Metrics.ServiceName = envOrDefault(envOtelService, cfg.Metrics.ServiceName)
	cfg.Metrics.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, cfg.Metrics.OtlpInsecure)
}
