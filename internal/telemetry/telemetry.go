//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds the names and attribute helpers shared by the
// tracing and metrics packages and the chat client.
package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/0xC0DE666/xai-sdk/api"
)

// telemetry service constants.
const (
	ServiceName      = "xai-sdk"
	ServiceVersion   = "v0.1.0"
	ServiceNamespace = "xai"
	InstrumentName   = "github.com/0xC0DE666/xai-sdk"

	SpanNamePrefixSample      = "chat.sample"
	SpanNamePrefixStream      = "chat.stream"
	SpanNamePrefixStreamBatch = "chat.stream_batch"
)

const (
	// ProtocolGRPC uses gRPC protocol for OTLP exporter.
	ProtocolGRPC string = "grpc"
	// ProtocolHTTP uses HTTP protocol for OTLP exporter.
	ProtocolHTTP string = "http"
)

// metric names.
const (
	MetricRequests     = "xai.chat.requests"
	MetricChunks       = "xai.chat.stream.chunks"
	MetricTokens       = "xai.chat.usage.tokens"
	MetricDuration     = "xai.chat.request.duration"
	MetricFirstChunk   = "xai.chat.stream.first_chunk"
	MetricStreamErrors = "xai.chat.stream.errors"
)

// telemetry attribute keys.
const (
	KeyRequestID     = "xai.request_id"
	KeyOperation     = "gen_ai.operation.name"
	KeySystem        = "gen_ai.system"
	KeyRequestModel  = "gen_ai.request.model"
	KeyResponseID    = "gen_ai.response.id"
	KeyResponseModel = "gen_ai.response.model"
	KeyFinishReasons = "gen_ai.response.finish_reasons"
	KeyInputTokens   = "gen_ai.usage.input_tokens"
	KeyOutputTokens  = "gen_ai.usage.output_tokens"
	KeyTotalTokens   = "gen_ai.usage.total_tokens"
	KeyReasonTokens  = "gen_ai.usage.reasoning_tokens"
	KeyUserID        = "user_id"
	KeyTokenType     = "gen_ai.token.type"
	KeyChunkCount    = "xai.stream.chunks"
	KeyFirstChunkAt  = "xai.stream.first_chunk_time"
)

// OperationChat is the gen_ai.operation.name of completion spans.
const OperationChat = "chat"

// RequestAttributePrefix prefixes the sampling parameters of a request.
const RequestAttributePrefix = "gen_ai.request."

// SystemName identifies the provider in gen_ai attributes.
const SystemName = "xai"

// NewSpanName joins a span name prefix and the model name, e.g. "chat.stream grok-4".
func NewSpanName(prefix, model string) string {
	if model == "" {
		return prefix
	}
	return prefix + " " + model
}

// RequestAttributes describes a completion request on a span.
func RequestAttributes(operation string, req *api.GetCompletionsRequest) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(KeyOperation, operation),
		attribute.String(KeySystem, SystemName),
		attribute.String(KeyRequestModel, req.Model),
		attribute.Int("gen_ai.request.message.count", len(req.Messages)),
		attribute.Bool("gen_ai.request.logprobs", req.Logprobs),
	}
	if req.N != nil {
		attrs = append(attrs, attribute.Int("gen_ai.request.choice.count", int(*req.N)))
	}
	if req.MaxTokens != nil {
		attrs = append(attrs, attribute.Int("gen_ai.request.max_tokens", int(*req.MaxTokens)))
	}
	if req.Temperature != nil {
		attrs = append(attrs, attribute.Float64("gen_ai.request.temperature", float64(*req.Temperature)))
	}
	if req.TopP != nil {
		attrs = append(attrs, attribute.Float64("gen_ai.request.top_p", float64(*req.TopP)))
	}
	if req.Seed != nil {
		attrs = append(attrs, attribute.Int("gen_ai.request.seed", int(*req.Seed)))
	}
	if len(req.Stop) > 0 {
		attrs = append(attrs, attribute.StringSlice("gen_ai.request.stop_sequences", req.Stop))
	}
	if req.ReasoningEffort != nil {
		attrs = append(attrs, attribute.String("gen_ai.request.reasoning_effort", req.ReasoningEffort.String()))
	}
	if req.ResponseFormat != nil {
		attrs = append(attrs, attribute.String("gen_ai.output.type", req.ResponseFormat.FormatType.String()))
	}
	if len(req.Tools) > 0 {
		attrs = append(attrs, attribute.Int("gen_ai.request.tool.count", len(req.Tools)))
	}
	if req.User != "" {
		attrs = append(attrs, attribute.String(KeyUserID, req.User))
	}
	return attrs
}

// ResponseAttributes describes a completed response on a span.
func ResponseAttributes(resp *api.GetChatCompletionResponse) []attribute.KeyValue {
	if resp == nil {
		return nil
	}
	reasons := make([]string, 0, len(resp.Outputs))
	for _, out := range resp.Outputs {
		if out != nil {
			reasons = append(reasons, out.FinishReason.String())
		}
	}
	attrs := []attribute.KeyValue{
		attribute.String(KeyResponseID, resp.ID),
		attribute.String(KeyResponseModel, resp.Model),
		attribute.String("gen_ai.response.system_fingerprint", resp.SystemFingerprint),
		attribute.StringSlice(KeyFinishReasons, reasons),
	}
	return append(attrs, UsageAttributes(resp.Usage)...)
}

// UsageAttributes describes token usage on a span.
func UsageAttributes(u *api.SamplingUsage) []attribute.KeyValue {
	if u == nil {
		return nil
	}
	return []attribute.KeyValue{
		attribute.Int(KeyInputTokens, int(u.PromptTokens)),
		attribute.Int(KeyOutputTokens, int(u.CompletionTokens)),
		attribute.Int(KeyTotalTokens, int(u.TotalTokens)),
		attribute.Int(KeyReasonTokens, int(u.ReasoningTokens)),
	}
}

// NewGRPCConn creates a new gRPC connection to the OpenTelemetry Collector.
func NewGRPCConn(endpoint string) (*grpc.ClientConn, error) {
	// Note the use of insecure transport here. TLS is recommended in production.
	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}
	return conn, nil
}
