package config

// Config holds runtime configuration for the collector.
type Config struct {
	Provider     string
	OutputDir    string
	PollInterval Duration
	FPL          FPLConfig
	Metrics      MetricsConfig
	Logging      LoggingConfig
}

// FPLConfig controls how the FPL API client is built.
type FPLConfig struct {
	BaseURL   string
	Timeout   Duration
	UserAgent string
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:     envOrDefault(envProvider, defaultProvider),
		OutputDir:    envOrDefault(envOutputDir, defaultOutputDir),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		FPL:          loadFPL(),
		Metrics:      loadMetrics(),
		Logging:      loadLogging(),
	}
}

func loadFPL() FPLConfig {
	return FPLConfig{
		BaseURL:   envOrDefault(envFplBaseURL, defaultFplBaseURL),
		Timeout:   durationEnvOrDefault(envFplTimeout, defaultFplTimeout),
		UserAgent: envOrDefault(envFplUserAgent, defaultFplUserAgent),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultOtelService),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, "info"),
		Format: envOrDefault(envLogFormat, "text"),
		File:   envOrDefault(envLogFile, ""),
	}
}
