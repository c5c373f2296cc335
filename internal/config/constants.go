package config

import "time"

const (
	envProvider     = "PROVIDER"
	envOutputDir    = "OUTPUT_DIR"
	envPollInterval = "POLL_INTERVAL"
	envFplBaseURL   = "FPL_BASE_URL"
	envFplTimeout   = "FPL_HTTP_TIMEOUT"
	envFplUserAgent = "FPL_USER_AGENT"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"

	defaultProvider  = "fpl"
	defaultOutputDir = "."
	// Watch-mode cadence; FPL stats settle slowly, so a few runs a day is plenty.
	defaultPollInterval = 6 * Duration(time.Hour)
	defaultFplBaseURL   = "https://fantasy.premierleague.com/api"
	defaultFplTimeout   = 10 * Duration(time.Second)
	defaultFplUserAgent = "fpl-data-collector"
	defaultMetricsPort  = "9090"
	defaultOtelService  = "fpl-data-collector"
)
