package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/articledry/dryer/logger"
)

// MeterConfig configures the OTLP metric exporter.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP host:port, e.g. "localhost:4318".
	Endpoint string
	Insecure bool
	// Interval is the export period.
	Interval time.Duration
}

// DefaultMeterConfig exports every 15s against a local collector.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs the global meter provider. The returned provider
// must be shut down on exit to flush pending metrics.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by the processing core.
type Metrics struct {
	runsStarted   metric.Int64Counter
	runsFailed    metric.Int64Counter
	stageDuration metric.Float64Histogram
}

// NewMetrics creates the core instruments on the given meter.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	runsStarted, err := m.Int64Counter("dryer.pipeline.runs",
		metric.WithDescription("Pipeline runs started"))
	if err != nil {
		return nil, err
	}
	runsFailed, err := m.Int64Counter("dryer.pipeline.failures",
		metric.WithDescription("Pipeline runs that failed"))
	if err != nil {
		return nil, err
	}
	stageDuration, err := m.Float64Histogram("dryer.pipeline.stage.duration",
		metric.WithDescription("Per-stage processing duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return &Metrics{
		runsStarted:   runsStarted,
		runsFailed:    runsFailed,
		stageDuration: stageDuration,
	}, nil
}

// RecordRunStart counts a pipeline run.
func (m *Metrics) RecordRunStart(ctx context.Context) {
	if m == nil {
		return
	}
	m.runsStarted.Add(ctx, 1)
}

// RecordRunFailure counts a failed pipeline run, attributed to the plugin.
func (m *Metrics) RecordRunFailure(ctx context.Context, pluginName string) {
	if m == nil {
		return
	}
	m.runsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrPlugin, pluginName)))
}

// RecordStageDuration records one stage's duration.
func (m *Metrics) RecordStageDuration(ctx context.Context, pluginName string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.Record(ctx, float64(d.Milliseconds()),
		metric.WithAttributes(attribute.String(AttrPlugin, pluginName)))
}
