package observer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	poliscope "github.com/mwiersma/poliscope"
)

// ObservedProvider wraps a poliscope.Provider with OTEL instrumentation.
type ObservedProvider struct {
	inner poliscope.Provider
	inst  *Instruments
}

// WrapProvider returns an instrumented provider that emits traces and metrics.
func WrapProvider(inner poliscope.Provider, inst *Instruments) *ObservedProvider {
	return &ObservedProvider{inner: inner, inst: inst}
}

func (o *ObservedProvider) Name() string { return o.inner.Name() }

func (o *ObservedProvider) Chat(ctx context.Context, req poliscope.ChatRequest) (poliscope.ChatResponse, error) {
	ctx, span := o.inst.Tracer.Start(ctx, "llm.chat", trace.WithAttributes(
		AttrLLMProvider.String(o.inner.Name()),
	))
	defer span.End()
	start := time.Now()

	resp, err := o.inner.Chat(ctx, req)

	durationMs := float64(time.Since(start).Milliseconds())
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.SetAttributes(
		AttrTokensInput.Int(resp.Usage.InputTokens),
		AttrTokensOutput.Int(resp.Usage.OutputTokens),
	)

	provider := AttrLLMProvider.String(o.inner.Name())
	o.inst.TokenUsage.Add(ctx, int64(resp.Usage.InputTokens), metric.WithAttributes(
		provider, attribute.String("direction", "input")))
	o.inst.TokenUsage.Add(ctx, int64(resp.Usage.OutputTokens), metric.WithAttributes(
		provider, attribute.String("direction", "output")))
	o.inst.LLMRequests.Add(ctx, 1, metric.WithAttributes(
		provider, attribute.String("status", status)))
	o.inst.LLMDuration.Record(ctx, durationMs, metric.WithAttributes(provider))

	return resp, err
}

// Compile-time interface check.
var _ poliscope.Provider = (*ObservedProvider)(nil)
