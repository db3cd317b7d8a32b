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
	"fmt"
	"strings"
)

// FinishReason tells why generation of an output stopped.
// FinishReasonInvalid is the in-progress sentinel.
type FinishReason int32

// FinishReason values.
const (
	FinishReasonInvalid    FinishReason = 0
	FinishReasonMaxLen     FinishReason = 1
	FinishReasonMaxContext FinishReason = 2
	FinishReasonStop       FinishReason = 3
	FinishReasonToolCalls  FinishReason = 4
	FinishReasonTimeLimit  FinishReason = 5
)

// IsFinished reports whether r marks the output as terminal.
func (r FinishReason) IsFinished() bool {
	return r != FinishReasonInvalid
}

// MessageRole is the author of a message. MessageRoleInvalid means unset.
type MessageRole int32

// MessageRole values.
const (
	MessageRoleInvalid   MessageRole = 0
	MessageRoleUser      MessageRole = 1
	MessageRoleAssistant MessageRole = 2
	MessageRoleSystem    MessageRole = 3
	MessageRoleFunction  MessageRole = 4
	MessageRoleTool      MessageRole = 5
	MessageRoleDeveloper MessageRole = 6
)

// ToolCallType tells who executes a tool call.
type ToolCallType int32

// ToolCallType values.
const (
	ToolCallTypeInvalid               ToolCallType = 0
	ToolCallTypeClientSideTool        ToolCallType = 1
	ToolCallTypeWebSearchTool         ToolCallType = 2
	ToolCallTypeXSearchTool           ToolCallType = 3
	ToolCallTypeCodeExecutionTool     ToolCallType = 4
	ToolCallTypeCollectionsSearchTool ToolCallType = 5
	ToolCallTypeMCPTool               ToolCallType = 6
	ToolCallTypeAttachmentSearchTool  ToolCallType = 7
)

// IsClientSide reports whether the calling application has to execute the call.
// Every other type, including the invalid sentinel, is run by the server.
func (t ToolCallType) IsClientSide() bool {
	return t == ToolCallTypeClientSideTool
}

// ToolCallStatus is the execution state of a server-side tool call.
type ToolCallStatus int32

// ToolCallStatus values.
const (
	ToolCallStatusInProgress ToolCallStatus = 0
	ToolCallStatusCompleted  ToolCallStatus = 1
	ToolCallStatusIncomplete ToolCallStatus = 2
	ToolCallStatusFailed     ToolCallStatus = 3
)

// ReasoningEffort bounds how long a reasoning model thinks.
type ReasoningEffort int32

// ReasoningEffort values.
const (
	ReasoningEffortInvalid ReasoningEffort = 0
	ReasoningEffortLow     ReasoningEffort = 1
	ReasoningEffortMedium  ReasoningEffort = 2
	ReasoningEffortHigh    ReasoningEffort = 3
)

// FormatType selects the shape of the generated content.
type FormatType int32

// FormatType values.
const (
	FormatTypeInvalid    FormatType = 0
	FormatTypeText       FormatType = 1
	FormatTypeJSONObject FormatType = 2
	FormatTypeJSONSchema FormatType = 3
)

// ToolMode controls whether the model may or must call tools.
type ToolMode int32

// ToolMode values.
const (
	ToolModeInvalid  ToolMode = 0
	ToolModeAuto     ToolMode = 1
	ToolModeNone     ToolMode = 2
	ToolModeRequired ToolMode = 3
)

// ImageDetail is the resolution at which an input image is analysed.
type ImageDetail int32

// ImageDetail values.
const (
	ImageDetailInvalid ImageDetail = 0
	ImageDetailAuto    ImageDetail = 1
	ImageDetailLow     ImageDetail = 2
	ImageDetailHigh    ImageDetail = 3
)

// IncludeOption asks the server to include optional data in the response.
type IncludeOption int32

// IncludeOption values.
const (
	IncludeOptionInvalid                     IncludeOption = 0
	IncludeOptionWebSearchCallOutput         IncludeOption = 1
	IncludeOptionXSearchCallOutput           IncludeOption = 2
	IncludeOptionCodeExecutionCallOutput     IncludeOption = 3
	IncludeOptionCollectionsSearchCallOutput IncludeOption = 4
	IncludeOptionAttachmentSearchCallOutput  IncludeOption = 5
	IncludeOptionMCPCallOutput               IncludeOption = 6
	IncludeOptionInlineCitations             IncludeOption = 7
	IncludeOptionVerboseStreaming            IncludeOption = 8
)

// enumValue describes one enum value: its display name, its schema name and
// any extra spellings accepted when parsing.
type enumValue[T ~int32] struct {
	value   T
	display string
	schema  string
	aliases []string
}

type enumTable[T ~int32] struct {
	kind   string
	values []enumValue[T]
}

func (e enumTable[T]) name(v T) string {
	for _, ev := range e.values {
		if ev.value == v {
			return ev.display
		}
	}
	return fmt.Sprintf("%s(%d)", e.kind, int32(v))
}

func (e enumTable[T]) parse(s string) (T, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, ev := range e.values {
		if in == ev.display || in == strings.ToLower(ev.schema) {
			return ev.value, nil
		}
		for _, alias := range ev.aliases {
			if in == alias {
				return ev.value, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid %s: '%s'", e.kind, s)
}

var finishReasons = enumTable[FinishReason]{kind: "finish reason", values: []enumValue[FinishReason]{
	{FinishReasonInvalid, "invalid", "REASON_INVALID", nil},
	{FinishReasonMaxLen, "max_len", "REASON_MAX_LEN", []string{"length"}},
	{FinishReasonMaxContext, "max_context", "REASON_MAX_CONTEXT", nil},
	{FinishReasonStop, "stop", "REASON_STOP", nil},
	{FinishReasonToolCalls, "tool_calls", "REASON_TOOL_CALLS", nil},
	{FinishReasonTimeLimit, "time_limit", "REASON_TIME_LIMIT", nil},
}}

var messageRoles = enumTable[MessageRole]{kind: "message role", values: []enumValue[MessageRole]{
	{MessageRoleInvalid, "invalid", "INVALID_ROLE", nil},
	{MessageRoleUser, "user", "ROLE_USER", nil},
	{MessageRoleAssistant, "assistant", "ROLE_ASSISTANT", nil},
	{MessageRoleSystem, "system", "ROLE_SYSTEM", nil},
	{MessageRoleFunction, "function", "ROLE_FUNCTION", nil},
	{MessageRoleTool, "tool", "ROLE_TOOL", nil},
	{MessageRoleDeveloper, "developer", "ROLE_DEVELOPER", nil},
}}

var toolCallTypes = enumTable[ToolCallType]{kind: "tool call type", values: []enumValue[ToolCallType]{
	{ToolCallTypeInvalid, "invalid", "TOOL_CALL_TYPE_INVALID", nil},
	{ToolCallTypeClientSideTool, "client_side_tool", "TOOL_CALL_TYPE_CLIENT_SIDE_TOOL", []string{"clientside", "function"}},
	{ToolCallTypeWebSearchTool, "web_search_tool", "TOOL_CALL_TYPE_WEB_SEARCH_TOOL", []string{"websearch"}},
	{ToolCallTypeXSearchTool, "x_search_tool", "TOOL_CALL_TYPE_X_SEARCH_TOOL", []string{"xsearch"}},
	{ToolCallTypeCodeExecutionTool, "code_execution_tool", "TOOL_CALL_TYPE_CODE_EXECUTION_TOOL", []string{"codeexecution"}},
	{ToolCallTypeCollectionsSearchTool, "collections_search_tool", "TOOL_CALL_TYPE_COLLECTIONS_SEARCH_TOOL", []string{"collectionssearch"}},
	{ToolCallTypeMCPTool, "mcp_tool", "TOOL_CALL_TYPE_MCP_TOOL", []string{"mcp"}},
	{ToolCallTypeAttachmentSearchTool, "attachment_search_tool", "TOOL_CALL_TYPE_ATTACHMENT_SEARCH_TOOL", []string{"attachmentsearch"}},
}}

var toolCallStatuses = enumTable[ToolCallStatus]{kind: "tool call status", values: []enumValue[ToolCallStatus]{
	{ToolCallStatusInProgress, "in_progress", "TOOL_CALL_STATUS_IN_PROGRESS", []string{"inprogress"}},
	{ToolCallStatusCompleted, "completed", "TOOL_CALL_STATUS_COMPLETED", []string{"done"}},
	{ToolCallStatusIncomplete, "incomplete", "TOOL_CALL_STATUS_INCOMPLETE", nil},
	{ToolCallStatusFailed, "failed", "TOOL_CALL_STATUS_FAILED", nil},
}}

var reasoningEfforts = enumTable[ReasoningEffort]{kind: "reasoning effort", values: []enumValue[ReasoningEffort]{
	{ReasoningEffortInvalid, "invalid", "INVALID_EFFORT", nil},
	{ReasoningEffortLow, "low", "EFFORT_LOW", nil},
	{ReasoningEffortMedium, "medium", "EFFORT_MEDIUM", nil},
	{ReasoningEffortHigh, "high", "EFFORT_HIGH", nil},
}}

var formatTypes = enumTable[FormatType]{kind: "format type", values: []enumValue[FormatType]{
	{FormatTypeInvalid, "invalid", "FORMAT_TYPE_INVALID", nil},
	{FormatTypeText, "text", "FORMAT_TYPE_TEXT", nil},
	{FormatTypeJSONObject, "json_object", "FORMAT_TYPE_JSON_OBJECT", []string{"json"}},
	{FormatTypeJSONSchema, "json_schema", "FORMAT_TYPE_JSON_SCHEMA", []string{"schema"}},
}}

var toolModes = enumTable[ToolMode]{kind: "tool mode", values: []enumValue[ToolMode]{
	{ToolModeInvalid, "invalid", "TOOL_MODE_INVALID", nil},
	{ToolModeAuto, "auto", "TOOL_MODE_AUTO", nil},
	{ToolModeNone, "none", "TOOL_MODE_NONE", nil},
	{ToolModeRequired, "required", "TOOL_MODE_REQUIRED", nil},
}}

var imageDetails = enumTable[ImageDetail]{kind: "image detail", values: []enumValue[ImageDetail]{
	{ImageDetailInvalid, "invalid", "DETAIL_INVALID", nil},
	{ImageDetailAuto, "auto", "DETAIL_AUTO", nil},
	{ImageDetailLow, "low", "DETAIL_LOW", nil},
	{ImageDetailHigh, "high", "DETAIL_HIGH", nil},
}}

var includeOptions = enumTable[IncludeOption]{kind: "include option", values: []enumValue[IncludeOption]{
	{IncludeOptionInvalid, "invalid", "INCLUDE_OPTION_INVALID", nil},
	{IncludeOptionWebSearchCallOutput, "web_search_call_output", "INCLUDE_OPTION_WEB_SEARCH_CALL_OUTPUT", []string{"websearch"}},
	{IncludeOptionXSearchCallOutput, "x_search_call_output", "INCLUDE_OPTION_X_SEARCH_CALL_OUTPUT", []string{"xsearch"}},
	{IncludeOptionCodeExecutionCallOutput, "code_execution_call_output", "INCLUDE_OPTION_CODE_EXECUTION_CALL_OUTPUT", []string{"codeexecution"}},
	{IncludeOptionCollectionsSearchCallOutput, "collections_search_call_output", "INCLUDE_OPTION_COLLECTIONS_SEARCH_CALL_OUTPUT", []string{"collectionssearch"}},
	{IncludeOptionAttachmentSearchCallOutput, "attachment_search_call_output", "INCLUDE_OPTION_ATTACHMENT_SEARCH_CALL_OUTPUT", []string{"attachmentsearch"}},
	{IncludeOptionMCPCallOutput, "mcp_call_output", "INCLUDE_OPTION_MCP_CALL_OUTPUT", []string{"mcp"}},
	{IncludeOptionInlineCitations, "inline_citations", "INCLUDE_OPTION_INLINE_CITATIONS", []string{"citations"}},
	{IncludeOptionVerboseStreaming, "verbose_streaming", "INCLUDE_OPTION_VERBOSE_STREAMING", []string{"verbose"}},
}}

func (r FinishReason) String() string    { return finishReasons.name(r) }
func (r MessageRole) String() string     { return messageRoles.name(r) }
func (t ToolCallType) String() string    { return toolCallTypes.name(t) }
func (s ToolCallStatus) String() string  { return toolCallStatuses.name(s) }
func (e ReasoningEffort) String() string { return reasoningEfforts.name(e) }
func (f FormatType) String() string      { return formatTypes.name(f) }
func (m ToolMode) String() string        { return toolModes.name(m) }
func (d ImageDetail) String() string     { return imageDetails.name(d) }
func (o IncludeOption) String() string   { return includeOptions.name(o) }

// ParseFinishReason parses a display name ("stop"), an alias or a schema
// name ("REASON_STOP"). Matching is case-insensitive.
func ParseFinishReason(s string) (FinishReason, error) { return finishReasons.parse(s) }

// ParseMessageRole parses a message role such as "assistant" or "ROLE_USER".
func ParseMessageRole(s string) (MessageRole, error) { return messageRoles.parse(s) }

// ParseToolCallType parses a tool call type such as "web_search_tool" or "mcp".
func ParseToolCallType(s string) (ToolCallType, error) { return toolCallTypes.parse(s) }

// ParseToolCallStatus parses a tool call status such as "completed".
func ParseToolCallStatus(s string) (ToolCallStatus, error) { return toolCallStatuses.parse(s) }

// ParseReasoningEffort parses "low", "medium" or "high".
func ParseReasoningEffort(s string) (ReasoningEffort, error) { return reasoningEfforts.parse(s) }

// ParseFormatType parses "text", "json_object" ("json") or "json_schema" ("schema").
func ParseFormatType(s string) (FormatType, error) { return formatTypes.parse(s) }

// ParseToolMode parses "auto", "none" or "required".
func ParseToolMode(s string) (ToolMode, error) { return toolModes.parse(s) }

// ParseImageDetail parses "auto", "low" or "high".
func ParseImageDetail(s string) (ImageDetail, error) { return imageDetails.parse(s) }

// ParseIncludeOption parses an include option such as "inline_citations".
func ParseIncludeOption(s string) (IncludeOption, error) { return includeOptions.parse(s) }
