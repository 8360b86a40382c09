package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/notune/lqo-leaderboard/internal/config"
	"github.com/notune/lqo-leaderboard/internal/countdown"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/metrics"
	"github.com/notune/lqo-leaderboard/internal/poller"
	"github.com/notune/lqo-leaderboard/internal/providers"
	"github.com/notune/lqo-leaderboard/internal/render"
)

var metricsSetup = metrics.Setup

// Poller defines the minimal refresh loop behavior the app needs.
type Poller interface {
	Start(ctx context.Context)
	Stop()
	Status() poller.Status
	RefreshOnce(ctx context.Context) error
}

// App wires provider, surface, countdown and refresh loop for one viewer
// process.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.SnapshotProvider
	surface       render.Surface
	poller        Poller
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs the app from configuration. It fails when the configuration
// names a provider or surface that cannot be built.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	surface, err := buildSurface(cfg, logger)
	if err != nil {
		return nil, err
	}
	provider, err := buildProvider(cfg, logger, recorder)
	if err != nil {
		return nil, err
	}

	clock := clockwork.NewRealClock()
	cd := countdown.New(surface, clock, logger, recorder)
	plr := poller.New(provider, surface, cd, logger, recorder, clock)

	return &App{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		surface:       surface,
		poller:        plr,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// Run starts the refresh loop (plus the metrics listener when enabled) and
// blocks until the context ends. A halted loop keeps the process alive so
// the final notice stays on screen.
func (a *App) Run(ctx context.Context) {
	a.startMetrics()

	a.surface.SetTimer(countdown.UpdatingText)
	a.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(a.logger, "shutdown signal received")
	a.gracefulShutdown()
}

// RunOnce performs a single fetch and render, then flushes telemetry.
func (a *App) RunOnce(ctx context.Context) error {
	err := a.poller.RefreshOnce(ctx)
	a.stopTelemetry()
	return err
}

func (a *App) startMetrics() {
	if a.metricsServer == nil {
		return
	}
	logging.Info(a.logger, "metrics server starting", slog.String("addr", a.metricsServer.Addr()))
	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(a.logger, "metrics server failed", "error", err)
		}
	}()
}

func (a *App) gracefulShutdown() {
	a.poller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics server shutdown failed", "error", err)
		}
	}
	a.stopTelemetry()

	logging.Info(a.logger, "shutdown complete")
}

func (a *App) stopTelemetry() {
	if a.metricsStop == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metricsStop(shutdownCtx); err != nil {
		logging.Warn(a.logger, "metrics shutdown failed", "error", err)
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	telCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), telCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && telCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:         ":" + telCfg.Port,
				Handler:      handler,
				ReadTimeout:  readTimeout,
				WriteTimeout: writeTimeout,
				IdleTimeout:  idleTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}
