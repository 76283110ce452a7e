// Package observer provides OTEL-based observability for model calls.
//
// It wraps a poliscope.Provider with an instrumented version that emits
// traces and metrics via OpenTelemetry. Export goes to any OTEL-compatible
// backend through the standard OTEL env vars.
package observer

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/mwiersma/poliscope/observer"

// Instruments holds the OTEL instruments used by the provider wrapper.
type Instruments struct {
	Tracer trace.Tracer
	Meter  metric.Meter

	LLMRequests metric.Int64Counter
	TokenUsage  metric.Int64Counter
	LLMDuration metric.Float64Histogram
}

// Init sets up OTEL trace and metric providers with OTLP HTTP exporters.
// Configuration comes from standard OTEL env vars
// (OTEL_EXPORTER_OTLP_ENDPOINT, etc.). Returns a shutdown function that must
// be called on application exit.
func Init(ctx context.Context) (*Instruments, func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName("poliscope")),
		resource.WithFromEnv(),
	)
	if err != nil {
		return nil, nil, err
	}

	traceExp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricExp, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	inst, err := newInstruments(tp.Tracer(scopeName), mp.Meter(scopeName))
	if err != nil {
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		return errors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
	}
	return inst, shutdown, nil
}

// newInstruments creates the counters and histograms on the given tracer and
// meter.
func newInstruments(tracer trace.Tracer, meter metric.Meter) (*Instruments, error) {
	requests, err := meter.Int64Counter("llm.requests",
		metric.WithDescription("Number of LLM chat requests"))
	if err != nil {
		return nil, err
	}
	tokens, err := meter.Int64Counter("llm.tokens",
		metric.WithDescription("Token usage by direction"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("llm.duration",
		metric.WithDescription("LLM request duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}
	return &Instruments{
		Tracer:      tracer,
		Meter:       meter,
		LLMRequests: requests,
		TokenUsage:  tokens,
		LLMDuration: duration,
	}, nil
}
