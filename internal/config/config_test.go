package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.DemoInterval != defaultDemoInterval {
		t.Fatalf("expected default demo interval %s, got %s", defaultDemoInterval, cfg.DemoInterval)
	}
	if cfg.Board.URL != "" {
		t.Fatalf("expected empty board url by default, got %s", cfg.Board.URL)
	}
	if cfg.Board.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default http timeout %s, got %s", defaultHTTPTimeout, cfg.Board.HTTPTimeout)
	}
	if cfg.Board.MinFetchGap != defaultMinFetchGap {
		t.Fatalf("expected default min fetch gap %s, got %s", defaultMinFetchGap, cfg.Board.MinFetchGap)
	}
	if cfg.UI.Format != defaultFormat {
		t.Fatalf("expected default format %s, got %s", defaultFormat, cfg.UI.Format)
	}
	if !cfg.UI.Color {
		t.Fatal("expected color on by default")
	}
	if cfg.UI.Title != defaultTitle {
		t.Fatalf("expected default title %q, got %q", defaultTitle, cfg.UI.Title)
	}
	if cfg.UI.HTMLOut != defaultHTMLOut {
		t.Fatalf("expected default html path %s, got %s", defaultHTMLOut, cfg.UI.HTMLOut)
	}
	if cfg.UI.PlayerFilter != "" {
		t.Fatalf("expected empty player filter by default, got %s", cfg.UI.PlayerFilter)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected default metrics port %s, got %s", defaultMetricsPort, cfg.Metrics.Port)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
	if !cfg.Metrics.OtlpInsecure {
		t.Fatal("expected otlp insecure by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(envProvider, "lqoweb")
	t.Setenv(envDemoInterval, "10s")
	t.Setenv(envBoardURL, "https://example.com/leaderboard.json")
	t.Setenv(envHTTPTimeout, "5s")
	t.Setenv(envMinFetchGap, "3s")
	t.Setenv(envUIFormat, "html")
	t.Setenv(envUIColor, "0")
	t.Setenv(envUITitle, "Custom Title")
	t.Setenv(envHTMLOut, "/tmp/board.html")
	t.Setenv(envPlayerFilter, "queen")
	t.Setenv(envMetricsOn, "1")
	t.Setenv(envMetricsPort, "9191")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Provider != "lqoweb" {
		t.Fatalf("expected provider lqoweb, got %s", cfg.Provider)
	}
	if cfg.DemoInterval != 10*time.Second {
		t.Fatalf("expected demo interval 10s, got %s", cfg.DemoInterval)
	}
	if cfg.Board.URL != "https://example.com/leaderboard.json" {
		t.Fatalf("expected board url override, got %s", cfg.Board.URL)
	}
	if cfg.Board.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected http timeout 5s, got %s", cfg.Board.HTTPTimeout)
	}
	if cfg.Board.MinFetchGap != 3*time.Second {
		t.Fatalf("expected min fetch gap 3s, got %s", cfg.Board.MinFetchGap)
	}
	if cfg.UI.Format != "html" {
		t.Fatalf("expected format html, got %s", cfg.UI.Format)
	}
	if cfg.UI.Color {
		t.Fatal("expected color off")
	}
	if cfg.UI.Title != "Custom Title" {
		t.Fatalf("expected title override, got %q", cfg.UI.Title)
	}
	if cfg.UI.HTMLOut != "/tmp/board.html" {
		t.Fatalf("expected html path override, got %s", cfg.UI.HTMLOut)
	}
	if cfg.UI.PlayerFilter != "queen" {
		t.Fatalf("expected player filter override, got %s", cfg.UI.PlayerFilter)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
	if cfg.Metrics.Port != "9191" {
		t.Fatalf("expected metrics port 9191, got %s", cfg.Metrics.Port)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Board.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default http timeout on invalid value, got %s", cfg.Board.HTTPTimeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envDemoInterval, "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.DemoInterval != defaultDemoInterval {
		t.Fatalf("expected default demo interval on non-positive value, got %s", cfg.DemoInterval)
	}
}

func TestLoadNoColorDisablesColor(t *testing.T) {
	t.Setenv(envNoColor, "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.UI.Color {
		t.Fatal("expected NO_COLOR to disable color")
	}
}

func TestLoadExplicitColorBeatsNoColor(t *testing.T) {
	t.Setenv(envNoColor, "1")
	t.Setenv(envUIColor, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if !cfg.UI.Color {
		t.Fatal("expected UI_COLOR to override NO_COLOR")
	}
}
