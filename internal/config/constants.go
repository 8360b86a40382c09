package config

import "time"

const (
	envProvider     = "PROVIDER"
	envConfigFile   = "LQO_CONFIG_FILE"
	envBoardURL     = "LQO_BOARD_URL"
	envHTTPTimeout  = "LQO_HTTP_TIMEOUT"
	envMinFetchGap  = "LQO_MIN_FETCH_GAP"
	envDemoInterval = "DEMO_INTERVAL"
	envUIFormat     = "UI_FORMAT"
	envUIColor      = "UI_COLOR"
	envNoColor      = "NO_COLOR"
	envUITitle      = "UI_TITLE"
	envHTMLOut      = "HTML_OUT"
	envPlayerFilter = "PLAYER_FILTER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider = "fixture"
	defaultFormat   = "term"
	defaultTitle    = "LeelaQueenOdds Leaderboard"
	defaultHTMLOut  = "leaderboard.html"
	// The fixture advertises a short interval so the demo loop re-fetches
	// visibly instead of sitting on a ten minute countdown.
	defaultDemoInterval = 30 * time.Second
	// A stuck request must not outlive the refresh window.
	defaultHTTPTimeout = 15 * time.Second
	// Spaces scheduler fires and manual retries against the public host.
	defaultMinFetchGap = 10 * time.Second
	defaultMetricsPort = "9090"
	defaultServiceName = "lqo-leaderboard-viewer"
)
