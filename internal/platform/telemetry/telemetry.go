// Package telemetry sets up OpenTelemetry tracing and metrics and holds the
// service's metric instruments.
//
//	tp, err := telemetry.InitTracer(ctx, "sprintboard", telemetry.ExporterOTLP, "http://collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "sprintboard", telemetry.ExporterOTLP, "http://collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "sprintboard")
//
// A nil *Metrics is valid and records nothing, so tests and a disabled
// telemetry config need no special casing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrEndpointRequired is returned for the OTLP exporter without an endpoint.
var ErrEndpointRequired = errors.New("telemetry: otlp exporter requires an endpoint")

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
	AttrRole        = attribute.Key("role")
)

// Metrics holds the registered instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// AccessDenied counts board operations rejected by the access gate.
	AccessDenied metric.Int64Counter
	// BulkMoveItems counts tickets handled by bulk moves, by result.
	BulkMoveItems metric.Int64Counter
}

// InitTracer registers a global TracerProvider exporting to exporter and
// installs the W3C trace context and baggage propagators. The caller must
// shut the provider down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var opts []otlptracehttp.Option
		opts, err = otlpOptions(endpoint, otlptracehttp.WithEndpoint, otlptracehttp.WithInsecure)
		if err == nil {
			exp, err = otlptracehttp.New(ctx, opts...)
		}
	default:
		err = unsupported(exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter registers a global MeterProvider exporting to exporter. The
// caller must shut the provider down.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		var opts []otlpmetrichttp.Option
		opts, err = otlpOptions(endpoint, otlpmetrichttp.WithEndpoint, otlpmetrichttp.WithInsecure)
		if err == nil {
			exp, err = otlpmetrichttp.New(ctx, opts...)
		}
	default:
		err = unsupported(exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the service's instruments on a meter named after
// serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var (
		m    Metrics
		errs []error
	)

	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		errs = append(errs, wrapName(name, err))
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		errs = append(errs, wrapName(name, err))
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram("http.client.request.duration", "Duration of outgoing HTTP requests")
	m.ClientRequestTotal = counter("http.client.request.total", "Outgoing HTTP requests", "{request}")
	m.AccessDenied = counter("board.access.denied", "Board operations rejected by the access gate", "{operation}")
	m.BulkMoveItems = counter("sprint.bulk_move.items", "Tickets handled by bulk moves", "{ticket}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordAccessDenied counts a rejected operation and the role it required.
func (m *Metrics) RecordAccessDenied(ctx context.Context, operation, required string) {
	if m == nil {
		return
	}
	m.AccessDenied.Add(ctx, 1, metric.WithAttributes(
		AttrOperation.String(operation),
		AttrRole.String(required),
	))
}

// RecordBulkMove counts the moved and failed items of one bulk move.
func (m *Metrics) RecordBulkMove(ctx context.Context, moved, failed int) {
	if m == nil {
		return
	}
	if moved > 0 {
		m.BulkMoveItems.Add(ctx, int64(moved), metric.WithAttributes(AttrResult.String("moved")))
	}
	if failed > 0 {
		m.BulkMoveItems.Add(ctx, int64(failed), metric.WithAttributes(AttrResult.String("failed")))
	}
}

func wrapName(name string, err error) error {
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	return nil
}

func unsupported(exporter string) error {
	return fmt.Errorf("telemetry: unsupported exporter %q (want %s or %s)", exporter, ExporterStdout, ExporterOTLP)
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

// otlpOptions turns an endpoint URL into exporter options. The OTLP HTTP
// exporters want host:port; plain http endpoints also need the insecure
// option.
func otlpOptions[O any](endpoint string, withEndpoint func(string) O, withInsecure func() O) ([]O, error) {
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return []O{withEndpoint(endpoint)}, nil
	}
	opts := []O{withEndpoint(u.Host)}
	if u.Scheme != "https" {
		opts = append(opts, withInsecure())
	}
	return opts, nil
}
