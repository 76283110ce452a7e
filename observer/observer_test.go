package observer

import (
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	poliscope "github.com/mwiersma/poliscope"
)

type stubProvider struct {
	resp poliscope.ChatResponse
	err  error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Chat(ctx context.Context, req poliscope.ChatRequest) (poliscope.ChatResponse, error) {
	return s.resp, s.err
}

func testInstruments(t *testing.T) (*Instruments, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	inst, err := newInstruments(tp.Tracer(scopeName), mp.Meter(scopeName))
	if err != nil {
		t.Fatal(err)
	}
	return inst, sr, reader
}

func TestObservedProviderPassthrough(t *testing.T) {
	inst, sr, _ := testInstruments(t)
	inner := &stubProvider{resp: poliscope.ChatResponse{
		Content: "answer",
		Usage:   poliscope.Usage{InputTokens: 4, OutputTokens: 2},
	}}
	p := WrapProvider(inner, inst)

	if p.Name() != "stub" {
		t.Errorf("name = %q", p.Name())
	}
	resp, err := p.Chat(context.Background(), poliscope.ChatRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content != "answer" {
		t.Errorf("content = %q", resp.Content)
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name() != "llm.chat" {
		t.Errorf("span name = %q", spans[0].Name())
	}
}

func TestObservedProviderRecordsError(t *testing.T) {
	inst, sr, reader := testInstruments(t)
	inner := &stubProvider{err: errors.New("boom")}
	p := WrapProvider(inner, inst)

	if _, err := p.Chat(context.Background(), poliscope.ChatRequest{}); err == nil {
		t.Fatal("expected error to propagate")
	}

	spans := sr.Ended()
	if len(spans) != 1 || len(spans[0].Events()) == 0 {
		t.Error("expected error recorded on span")
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	if len(rm.ScopeMetrics) == 0 {
		t.Error("expected metrics recorded")
	}
}
