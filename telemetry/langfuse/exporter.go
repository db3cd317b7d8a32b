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
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	itelemetry "github.com/0xC0DE666/xai-sdk/internal/telemetry"
)

var _ sdktrace.SpanExporter = (*exporter)(nil)

// exporter rewrites span attributes into Langfuse's vocabulary and hands the
// spans to next.
type exporter struct {
	next sdktrace.SpanExporter
	cfg  *config
}

func newExporter(next sdktrace.SpanExporter, cfg *config) *exporter {
	return &exporter{next: next, cfg: cfg}
}

func (e *exporter) ExportSpans(ctx context.Context, ss []sdktrace.ReadOnlySpan) error {
	out := make([]sdktrace.ReadOnlySpan, len(ss))
	for i, s := range ss {
		out[i] = e.transform(s)
	}
	if err := e.next.ExportSpans(ctx, out); err != nil {
		return fmt.Errorf("exporting spans: %w", err)
	}
	return nil
}

func (e *exporter) Shutdown(ctx context.Context) error {
	return e.next.Shutdown(ctx)
}

// span overrides the attributes of a finished span.
type span struct {
	sdktrace.ReadOnlySpan
	attrs []attribute.KeyValue
}

func (s span) Attributes() []attribute.KeyValue {
	return s.attrs
}

func (e *exporter) general() []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if e.cfg.environment != "" {
		attrs = append(attrs, attribute.String(environment, e.cfg.environment))
	}
	if e.cfg.release != "" {
		attrs = append(attrs, attribute.String(release, e.cfg.release))
	}
	return attrs
}

func (e *exporter) transform(s sdktrace.ReadOnlySpan) sdktrace.ReadOnlySpan {
	general := e.general()
	if operation(s) != itelemetry.OperationChat {
		if len(general) == 0 {
			return s
		}
		return span{ReadOnlySpan: s, attrs: append(append([]attribute.KeyValue{}, s.Attributes()...), general...)}
	}
	attrs := append(transformChat(s), general...)
	return span{ReadOnlySpan: s, attrs: attrs}
}

func operation(s sdktrace.ReadOnlySpan) string {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == itelemetry.KeyOperation {
			return kv.Value.AsString()
		}
	}
	return ""
}

// transformChat marks a completion span as a generation. Original attributes
// are kept.
func transformChat(s sdktrace.ReadOnlySpan) []attribute.KeyValue {
	var (
		attrs  = []attribute.KeyValue{attribute.String(observationType, typeGeneration)}
		params = make(map[string]any)
		usage  = make(map[string]int64)
	)
	for _, kv := range s.Attributes() {
		attrs = append(attrs, kv)
		switch key := string(kv.Key); key {
		case itelemetry.KeyRequestModel:
			attrs = append(attrs, attribute.String(observationModel, kv.Value.AsString()))
		case itelemetry.KeyInputTokens:
			usage["input"] = kv.Value.AsInt64()
		case itelemetry.KeyOutputTokens:
			usage["output"] = kv.Value.AsInt64()
		case itelemetry.KeyTotalTokens:
			usage["total"] = kv.Value.AsInt64()
		case itelemetry.KeyReasonTokens:
			usage["reasoning"] = kv.Value.AsInt64()
		case itelemetry.KeyFirstChunkAt:
			attrs = append(attrs, attribute.String(observationCompletionStartTime, kv.Value.AsString()))
		case itelemetry.KeyUserID:
			attrs = append(attrs, attribute.String(traceUserID, kv.Value.AsString()))
		case "gen_ai.request.message.count":
		default:
			if name, ok := strings.CutPrefix(key, itelemetry.RequestAttributePrefix); ok {
				params[name] = kv.Value.AsInterface()
			}
		}
	}
	if len(params) > 0 {
		if b, err := json.Marshal(params); err == nil {
			attrs = append(attrs, attribute.String(observationModelParameters, string(b)))
		}
	}
	if len(usage) > 0 {
		if b, err := json.Marshal(usage); err == nil {
			attrs = append(attrs, attribute.String(observationUsageDetails, string(b)))
		}
	}
	if st := s.Status(); st.Code == codes.Error {
		attrs = append(attrs,
			attribute.String(observationLevel, levelError),
			attribute.String(observationStatusMessage, st.Description),
		)
	}
	return attrs
}
