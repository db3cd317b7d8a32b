//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	atrace "github.com/0xC0DE666/xai-sdk/telemetry/trace"
)

// recordingExporter keeps exported spans across Shutdown.
type recordingExporter struct {
	mu    sync.Mutex
	spans []sdktrace.ReadOnlySpan
	err   error
}

func (r *recordingExporter) ExportSpans(_ context.Context, ss []sdktrace.ReadOnlySpan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.spans = append(r.spans, ss...)
	return nil
}

func (r *recordingExporter) Shutdown(context.Context) error { return nil }

func (r *recordingExporter) recorded() []sdktrace.ReadOnlySpan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sdktrace.ReadOnlySpan(nil), r.spans...)
}

func attrMap(s sdktrace.ReadOnlySpan) map[string]attribute.Value {
	m := make(map[string]attribute.Value)
	for _, kv := range s.Attributes() {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func chatSpan(status sdktrace.Status) sdktrace.ReadOnlySpan {
	return tracetest.SpanStub{
		Name: "chat.stream grok-4",
		Attributes: []attribute.KeyValue{
			attribute.String("gen_ai.operation.name", "chat"),
			attribute.String("gen_ai.request.model", "grok-4"),
			attribute.Int("gen_ai.request.message.count", 2),
			attribute.Int("gen_ai.request.max_tokens", 64),
			attribute.Float64("gen_ai.request.temperature", 0.5),
			attribute.Int("gen_ai.usage.input_tokens", 7),
			attribute.Int("gen_ai.usage.output_tokens", 3),
			attribute.Int("gen_ai.usage.total_tokens", 12),
			attribute.Int("gen_ai.usage.reasoning_tokens", 2),
			attribute.String("xai.stream.first_chunk_time", "2025-01-02T03:04:05Z"),
			attribute.String("user_id", "u-1"),
		},
		Status: status,
	}.Snapshot()
}

func TestTransformChat(t *testing.T) {
	next := &recordingExporter{}
	e := newExporter(next, &config{environment: "staging", release: "v1"})

	require.NoError(t, e.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{chatSpan(sdktrace.Status{})}))
	spans := next.recorded()
	require.Len(t, spans, 1)
	m := attrMap(spans[0])

	assert.Equal(t, "chat.stream grok-4", spans[0].Name())
	assert.Equal(t, "generation", m[observationType].AsString())
	assert.Equal(t, "grok-4", m[observationModel].AsString())
	assert.Equal(t, "2025-01-02T03:04:05Z", m[observationCompletionStartTime].AsString())
	assert.Equal(t, "u-1", m[traceUserID].AsString())
	assert.Equal(t, "staging", m[environment].AsString())
	assert.Equal(t, "v1", m[release].AsString())
	assert.Equal(t, "grok-4", m["gen_ai.request.model"].AsString(), "original attributes are kept")
	_, hasLevel := m[observationLevel]
	assert.False(t, hasLevel)

	var params map[string]any
	require.NoError(t, json.Unmarshal([]byte(m[observationModelParameters].AsString()), &params))
	assert.Equal(t, map[string]any{"max_tokens": float64(64), "temperature": 0.5}, params)

	var usage map[string]int64
	require.NoError(t, json.Unmarshal([]byte(m[observationUsageDetails].AsString()), &usage))
	assert.Equal(t, map[string]int64{"input": 7, "output": 3, "total": 12, "reasoning": 2}, usage)
}

func TestTransformChatError(t *testing.T) {
	next := &recordingExporter{}
	e := newExporter(next, &config{})

	span := chatSpan(sdktrace.Status{Code: codes.Error, Description: "overloaded"})
	require.NoError(t, e.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{span}))
	m := attrMap(next.recorded()[0])
	assert.Equal(t, "ERROR", m[observationLevel].AsString())
	assert.Equal(t, "overloaded", m[observationStatusMessage].AsString())
	_, hasEnv := m[environment]
	assert.False(t, hasEnv)
}

func TestTransformOtherSpans(t *testing.T) {
	other := tracetest.SpanStub{
		Name:       "chat.stream_batch grok-4",
		Attributes: []attribute.KeyValue{attribute.Int("xai.batch.size", 3)},
	}.Snapshot()

	next := &recordingExporter{}
	require.NoError(t, newExporter(next, &config{}).ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{other}))
	assert.Equal(t, other, next.recorded()[0], "untouched without general attributes")

	next = &recordingExporter{}
	require.NoError(t, newExporter(next, &config{environment: "dev"}).ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{other}))
	m := attrMap(next.recorded()[0])
	assert.Equal(t, "dev", m[environment].AsString())
	assert.Equal(t, int64(3), m["xai.batch.size"].AsInt64())
	_, hasType := m[observationType]
	assert.False(t, hasType)
}

func TestExportError(t *testing.T) {
	next := &recordingExporter{err: errors.New("unreachable")}
	err := newExporter(next, &config{}).ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{chatSpan(sdktrace.Status{})})
	assert.ErrorContains(t, err, "unreachable")
}

func TestStartRequiresCredentials(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	_, err := Start(context.Background(), WithHost("localhost:3000"))
	assert.Error(t, err)
}

func TestStartInstallsTracer(t *testing.T) {
	old := atrace.Tracer
	defer func() { atrace.Tracer = old }()

	next := &recordingExporter{}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	clean, err := start(ctx, next, &config{release: "v9"})
	require.NoError(t, err)

	_, s := atrace.Tracer.Start(ctx, "chat.sample grok-4")
	s.SetAttributes(
		attribute.String("gen_ai.operation.name", "chat"),
		attribute.String("gen_ai.request.model", "grok-4"),
	)
	s.End()
	require.NoError(t, clean())

	spans := next.recorded()
	require.Len(t, spans, 1)
	m := attrMap(spans[0])
	assert.Equal(t, "generation", m[observationType].AsString())
	assert.Equal(t, "v9", m[release].AsString())
}
