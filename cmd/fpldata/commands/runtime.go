package commands

import (
	"context"
	"log/slog"
	"net/http"

	"fpl-data-collector/internal/collector"
	"fpl-data-collector/internal/config"
	"fpl-data-collector/internal/logging"
	"fpl-data-collector/internal/metrics"
	"fpl-data-collector/internal/output"
	"fpl-data-collector/internal/providers"
	"fpl-data-collector/internal/providers/fixture"
	"fpl-data-collector/internal/providers/fpl"
)

// runtime bundles the wired collaborators every command starts from.
type runtime struct {
	cfg             config.Config
	logger          *slog.Logger
	recorder        *metrics.Recorder
	promHandler     http.Handler
	shutdownMetrics func(context.Context) error
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		File:    cfg.Logging.File,
		Service: "fpl-data-collector",
		Version: appVersion,
	})

	recorder, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:             cfg,
		logger:          logger,
		recorder:        recorder,
		promHandler:     promHandler,
		shutdownMetrics: shutdown,
	}, nil
}

func (r *runtime) statsProvider() providers.StatsProvider {
	switch r.cfg.Provider {
	case "fixture":
		return fixture.New()
	default:
		return fpl.NewClient(fpl.Config{
			BaseURL:    r.cfg.FPL.BaseURL,
			HTTPClient: &http.Client{Timeout: r.cfg.FPL.Timeout},
			UserAgent:  r.cfg.FPL.UserAgent,
		})
	}
}

func (r *runtime) service() *collector.Service {
	return collector.NewService(
		r.statsProvider(),
		output.NewWriter(r.cfg.OutputDir),
		r.logger,
		r.recorder,
	)
}

// close flushes metrics; one-shot commands call it before exiting so the
// final OTLP export happens.
func (r *runtime) close(ctx context.Context) {
	if r.shutdownMetrics != nil {
		if err := r.shutdownMetrics(ctx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", "error", err)
		}
	}
}
