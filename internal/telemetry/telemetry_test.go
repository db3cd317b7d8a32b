//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/0xC0DE666/xai-sdk/api"
)

func toMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestRequestAttributes(t *testing.T) {
	n, maxTokens := int32(2), int32(128)
	temp := float32(0.5)
	effort := api.ReasoningEffortHigh
	req := &api.GetCompletionsRequest{
		Model:           "grok-4",
		Messages:        []*api.Message{{Role: api.MessageRoleUser}},
		N:               &n,
		MaxTokens:       &maxTokens,
		Temperature:     &temp,
		Stop:            []string{"END"},
		ReasoningEffort: &effort,
		User:            "u-1",
	}

	m := toMap(RequestAttributes("chat", req))
	assert.Equal(t, "chat", m[KeyOperation].AsString())
	assert.Equal(t, SystemName, m[KeySystem].AsString())
	assert.Equal(t, "grok-4", m[KeyRequestModel].AsString())
	assert.Equal(t, int64(1), m["gen_ai.request.message.count"].AsInt64())
	assert.Equal(t, int64(2), m["gen_ai.request.choice.count"].AsInt64())
	assert.Equal(t, int64(128), m["gen_ai.request.max_tokens"].AsInt64())
	assert.InDelta(t, 0.5, m["gen_ai.request.temperature"].AsFloat64(), 1e-6)
	assert.Equal(t, []string{"END"}, m["gen_ai.request.stop_sequences"].AsStringSlice())
	assert.Equal(t, "high", m["gen_ai.request.reasoning_effort"].AsString())
	assert.Equal(t, "u-1", m["user_id"].AsString())

	_, ok := m["gen_ai.request.top_p"]
	assert.False(t, ok, "unset fields are not reported")
}

func TestResponseAttributes(t *testing.T) {
	assert.Nil(t, ResponseAttributes(nil))

	resp := &api.GetChatCompletionResponse{
		ID:    "resp-1",
		Model: "grok-4",
		Outputs: []*api.CompletionOutput{
			{FinishReason: api.FinishReasonStop},
			{FinishReason: api.FinishReasonToolCalls},
		},
		Usage: &api.SamplingUsage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7, ReasoningTokens: 1},
	}
	m := toMap(ResponseAttributes(resp))
	assert.Equal(t, "resp-1", m[KeyResponseID].AsString())
	assert.Equal(t, "grok-4", m[KeyResponseModel].AsString())
	assert.Equal(t, []string{"stop", "tool_calls"}, m[KeyFinishReasons].AsStringSlice())
	assert.Equal(t, int64(3), m[KeyInputTokens].AsInt64())
	assert.Equal(t, int64(4), m[KeyOutputTokens].AsInt64())
	assert.Equal(t, int64(7), m[KeyTotalTokens].AsInt64())
}

func TestNewGRPCConn(t *testing.T) {
	conn, err := NewGRPCConn("localhost:4317")
	require.NoError(t, err)
	require.NotNil(t, conn)
	require.NoError(t, conn.Close())
}
