package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and an
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function; the shutdown flushes a final export so
// one-shot runs still report.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "fpl-data-collector"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	meter          metric.Meter
	fetchAttempts  metric.Int64Counter
	fetchErrors    metric.Int64Counter
	fetchLatencyMs metric.Float64Histogram
	runCycles      metric.Int64Counter
	runErrors      metric.Int64Counter
	runLatencyMs   metric.Float64Histogram
	rowsWritten    metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("fpl-data-collector")

	fetchAttempts, err := meter.Int64Counter("fpl_fetch_attempts_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("fpl_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("fpl_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	runCycles, err := meter.Int64Counter("collector_runs_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("collector_run_errors_total")
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("collector_run_duration_ms")
	if err != nil {
		return nil, err
	}
	rowsWritten, err := meter.Int64Counter("collector_rows_written_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		meter:          meter,
		fetchAttempts:  fetchAttempts,
		fetchErrors:    fetchErrors,
		fetchLatencyMs: fetchLatency,
		runCycles:      runCycles,
		runErrors:      runErrors,
		runLatencyMs:   runLatency,
		rowsWritten:    rowsWritten,
	}, nil
}

func (o *otelInstruments) recordFetchAttempt(endpoint string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(AttrEndpoint, endpoint))
	o.fetchAttempts.Add(ctx, 1, attrs)
	o.fetchLatencyMs.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.fetchErrors.Add(ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRunCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	ctx := context.Background()
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(attribute.String(AttrOutcome, outcome))
	o.runCycles.Add(ctx, 1, attrs)
	o.runLatencyMs.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.runErrors.Add(ctx, 1)
	}
}

func (o *otelInstruments) recordRowsWritten(count int) {
	if o == nil {
		return
	}
	o.rowsWritten.Add(context.Background(), int64(count))
}
