//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xC0DE666/xai-sdk/api"
)

func TestToMessages(t *testing.T) {
	calls := []*api.ToolCall{{
		ID:       "call-1",
		Type:     api.ToolCallTypeClientSideTool,
		Function: &api.FunctionCall{Name: "get_weather", Arguments: `{"city":"Paris"}`},
	}}
	outputs := []*api.CompletionOutput{
		{
			Index: 0,
			Message: &api.CompletionMessage{
				Content:          "It is sunny.",
				ReasoningContent: "check the weather",
				Role:             api.MessageRoleAssistant,
				ToolCalls:        calls,
				EncryptedContent: "enc",
			},
		},
		{Index: 1},
		nil,
		{Index: 2, Message: &api.CompletionMessage{Role: api.MessageRoleAssistant}},
	}

	msgs := ToMessages(outputs)
	require.Len(t, msgs, 2)

	m := msgs[0]
	assert.Equal(t, api.MessageRoleAssistant, m.Role)
	require.Len(t, m.Content, 1)
	assert.Equal(t, "It is sunny.", m.Content[0].Text)
	require.NotNil(t, m.ReasoningContent)
	assert.Equal(t, "check the weather", *m.ReasoningContent)
	assert.Equal(t, calls, m.ToolCalls)
	assert.Equal(t, "enc", m.EncryptedContent)
	assert.Empty(t, m.Name)
	assert.Nil(t, m.ToolCallID)

	empty := msgs[1]
	require.Len(t, empty.Content, 1)
	assert.Equal(t, "", empty.Content[0].Text)
	require.NotNil(t, empty.ReasoningContent)
	assert.Equal(t, "", *empty.ReasoningContent)
}

func TestToMessages_Empty(t *testing.T) {
	assert.Empty(t, ToMessages(nil))
}

func TestMessageConstructors(t *testing.T) {
	img := ImageContent("https://example.com/cat.png", api.ImageDetailHigh)
	u := User("describe", img, FileContent("file-1"))
	assert.Equal(t, api.MessageRoleUser, u.Role)
	require.Len(t, u.Content, 3)
	assert.Equal(t, "describe", u.Content[0].Text)
	assert.Equal(t, api.ImageDetailHigh, u.Content[1].ImageURL.Detail)
	assert.Equal(t, "file-1", u.Content[2].File.FileID)

	assert.Equal(t, api.MessageRoleSystem, System("be brief").Role)
	assert.Equal(t, api.MessageRoleAssistant, Assistant("ok").Role)

	tr := ToolResult("call-1", `{"temp":21}`)
	assert.Equal(t, api.MessageRoleTool, tr.Role)
	require.NotNil(t, tr.ToolCallID)
	assert.Equal(t, "call-1", *tr.ToolCallID)
	assert.Nil(t, ToolResult("", "x").ToolCallID)

	assert.Panics(t, func() { User(42) })
}

type weather struct {
	City  string  `json:"city" jsonschema:"description=City name"`
	TempC float64 `json:"temp_c"`
}

func TestNewRequest(t *testing.T) {
	req := NewRequest("grok-4",
		WithMessages(System("sys"), User("hi")),
		WithN(2),
		WithMaxTokens(128),
		WithTemperature(0.5),
		WithTopP(0.9),
		WithSeed(7),
		WithStop("END"),
		WithLogprobs(3),
		WithReasoningEffort(api.ReasoningEffortHigh),
		WithParallelToolCalls(false),
		WithUser("u-1"),
		WithInclude(api.IncludeOptionInlineCitations),
	)
	assert.Equal(t, "grok-4", req.Model)
	assert.Len(t, req.Messages, 2)
	assert.Equal(t, int32(2), *req.N)
	assert.Equal(t, int32(128), *req.MaxTokens)
	assert.Equal(t, float32(0.5), *req.Temperature)
	assert.Equal(t, float32(0.9), *req.TopP)
	assert.Equal(t, int32(7), *req.Seed)
	assert.Equal(t, []string{"END"}, req.Stop)
	assert.True(t, req.Logprobs)
	assert.Equal(t, int32(3), *req.TopLogprobs)
	assert.Equal(t, api.ReasoningEffortHigh, *req.ReasoningEffort)
	assert.False(t, *req.ParallelToolCalls)
	assert.Equal(t, "u-1", req.User)
	assert.Equal(t, []api.IncludeOption{api.IncludeOptionInlineCitations}, req.Include)
}

func TestWithResponseSchema(t *testing.T) {
	req := NewRequest("grok-4", WithResponseSchema(&weather{}))
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, api.FormatTypeJSONSchema, req.ResponseFormat.FormatType)
	require.NotNil(t, req.ResponseFormat.Schema)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(*req.ResponseFormat.Schema), &schema))
	assert.Contains(t, *req.ResponseFormat.Schema, "temp_c")
	assert.Contains(t, *req.ResponseFormat.Schema, "City name")
}

func TestFunctionTool(t *testing.T) {
	tool, err := FunctionTool("get_weather", "Current weather.", &weather{})
	require.NoError(t, err)
	require.NotNil(t, tool.Function)
	assert.Equal(t, "get_weather", tool.Function.Name)

	var params map[string]any
	require.NoError(t, json.Unmarshal([]byte(tool.Function.Parameters), &params))
	assert.Equal(t, "object", params["type"])
	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "city")
	assert.Contains(t, props, "temp_c")
}
