//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishReason_StringAndParse(t *testing.T) {
	cases := []struct {
		reason FinishReason
		name   string
	}{
		{FinishReasonInvalid, "invalid"},
		{FinishReasonMaxLen, "max_len"},
		{FinishReasonMaxContext, "max_context"},
		{FinishReasonStop, "stop"},
		{FinishReasonToolCalls, "tool_calls"},
		{FinishReasonTimeLimit, "time_limit"},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.reason.String())
		got, err := ParseFinishReason(c.name)
		require.NoError(t, err)
		assert.Equal(t, c.reason, got)
	}

	got, err := ParseFinishReason("REASON_STOP")
	require.NoError(t, err)
	assert.Equal(t, FinishReasonStop, got)

	got, err = ParseFinishReason("  Tool_Calls ")
	require.NoError(t, err)
	assert.Equal(t, FinishReasonToolCalls, got)

	_, err = ParseFinishReason("bogus")
	assert.EqualError(t, err, "invalid finish reason: 'bogus'")
	assert.Equal(t, "finish reason(42)", FinishReason(42).String())
}

func TestFinishReason_IsFinished(t *testing.T) {
	assert.False(t, FinishReasonInvalid.IsFinished())
	assert.True(t, FinishReasonStop.IsFinished())
	assert.True(t, FinishReasonMaxLen.IsFinished())
}

func TestToolCallType_Parse(t *testing.T) {
	cases := map[string]ToolCallType{
		"client_side_tool":        ToolCallTypeClientSideTool,
		"clientside":              ToolCallTypeClientSideTool,
		"websearch":               ToolCallTypeWebSearchTool,
		"x_search_tool":           ToolCallTypeXSearchTool,
		"codeexecution":           ToolCallTypeCodeExecutionTool,
		"collections_search_tool": ToolCallTypeCollectionsSearchTool,
		"MCP":                     ToolCallTypeMCPTool,
		"attachment_search_tool":  ToolCallTypeAttachmentSearchTool,
	}
	for in, want := range cases {
		got, err := ParseToolCallType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseToolCallType("shell")
	assert.Error(t, err)
}

func TestToolCallType_IsClientSide(t *testing.T) {
	assert.True(t, ToolCallTypeClientSideTool.IsClientSide())
	for _, typ := range []ToolCallType{
		ToolCallTypeInvalid,
		ToolCallTypeWebSearchTool,
		ToolCallTypeXSearchTool,
		ToolCallTypeCodeExecutionTool,
		ToolCallTypeCollectionsSearchTool,
		ToolCallTypeMCPTool,
		ToolCallTypeAttachmentSearchTool,
	} {
		assert.False(t, typ.IsClientSide(), typ.String())
	}
}

func TestOtherEnums_Parse(t *testing.T) {
	role, err := ParseMessageRole("ROLE_ASSISTANT")
	require.NoError(t, err)
	assert.Equal(t, MessageRoleAssistant, role)
	assert.Equal(t, "developer", MessageRoleDeveloper.String())

	status, err := ParseToolCallStatus("done")
	require.NoError(t, err)
	assert.Equal(t, ToolCallStatusCompleted, status)
	assert.Equal(t, "in_progress", ToolCallStatusInProgress.String())

	effort, err := ParseReasoningEffort("High")
	require.NoError(t, err)
	assert.Equal(t, ReasoningEffortHigh, effort)

	format, err := ParseFormatType("schema")
	require.NoError(t, err)
	assert.Equal(t, FormatTypeJSONSchema, format)
	format, err = ParseFormatType("json")
	require.NoError(t, err)
	assert.Equal(t, FormatTypeJSONObject, format)

	mode, err := ParseToolMode("required")
	require.NoError(t, err)
	assert.Equal(t, ToolModeRequired, mode)

	detail, err := ParseImageDetail("DETAIL_LOW")
	require.NoError(t, err)
	assert.Equal(t, ImageDetailLow, detail)

	opt, err := ParseIncludeOption("inline_citations")
	require.NoError(t, err)
	assert.Equal(t, IncludeOptionInlineCitations, opt)

	_, err = ParseReasoningEffort("extreme")
	assert.EqualError(t, err, "invalid reasoning effort: 'extreme'")
}
