//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package api

// GetCompletionsRequest asks the Chat service for one or more completions.
type GetCompletionsRequest struct {
	Messages            []*Message       `json:"messages,omitempty"`
	Model               string           `json:"model,omitempty"`
	User                string           `json:"user,omitempty"`
	N                   *int32           `json:"n,omitempty"`
	MaxTokens           *int32           `json:"max_tokens,omitempty"`
	Seed                *int32           `json:"seed,omitempty"`
	Stop                []string         `json:"stop,omitempty"`
	Temperature         *float32         `json:"temperature,omitempty"`
	TopP                *float32         `json:"top_p,omitempty"`
	Logprobs            bool             `json:"logprobs,omitempty"`
	TopLogprobs         *int32           `json:"top_logprobs,omitempty"`
	Tools               []*Tool          `json:"tools,omitempty"`
	ToolChoice          *ToolChoice      `json:"tool_choice,omitempty"`
	ResponseFormat      *ResponseFormat  `json:"response_format,omitempty"`
	FrequencyPenalty    *float32         `json:"frequency_penalty,omitempty"`
	PresencePenalty     *float32         `json:"presence_penalty,omitempty"`
	ReasoningEffort     *ReasoningEffort `json:"reasoning_effort,omitempty"`
	ParallelToolCalls   *bool            `json:"parallel_tool_calls,omitempty"`
	PreviousResponseID  *string          `json:"previous_response_id,omitempty"`
	StoreMessages       bool             `json:"store_messages,omitempty"`
	UseEncryptedContent bool             `json:"use_encrypted_content,omitempty"`
	Include             []IncludeOption  `json:"include,omitempty"`
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Content          []*Content  `json:"content,omitempty"`
	ReasoningContent *string     `json:"reasoning_content,omitempty"`
	Role             MessageRole `json:"role,omitempty"`
	Name             string      `json:"name,omitempty"`
	ToolCalls        []*ToolCall `json:"tool_calls,omitempty"`
	EncryptedContent string      `json:"encrypted_content,omitempty"`
	ToolCallID       *string     `json:"tool_call_id,omitempty"`
}

// Content is one part of a message. Exactly one field is set.
type Content struct {
	Text     string           `json:"text,omitempty"`
	ImageURL *ImageURLContent `json:"image_url,omitempty"`
	File     *FileContent     `json:"file,omitempty"`
}

// ImageURLContent references an image by URL or data URI.
type ImageURLContent struct {
	ImageURL string      `json:"image_url,omitempty"`
	Detail   ImageDetail `json:"detail,omitempty"`
}

// FileContent references a previously uploaded file.
type FileContent struct {
	FileID string `json:"file_id,omitempty"`
}

// Tool is a tool the model may call. Exactly one field is set.
type Tool struct {
	Function      *Function      `json:"function,omitempty"`
	WebSearch     *WebSearch     `json:"web_search,omitempty"`
	XSearch       *XSearch       `json:"x_search,omitempty"`
	CodeExecution *CodeExecution `json:"code_execution,omitempty"`
}

// Function describes a client-side function tool.
type Function struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Strict      bool   `json:"strict,omitempty"`
	// Parameters is a JSON schema document.
	Parameters string `json:"parameters,omitempty"`
}

// WebSearch enables the server-side web search tool.
type WebSearch struct {
	AllowedDomains  []string `json:"allowed_domains,omitempty"`
	ExcludedDomains []string `json:"excluded_domains,omitempty"`
}

// XSearch enables the server-side X search tool.
type XSearch struct {
	AllowedXHandles []string `json:"allowed_x_handles,omitempty"`
}

// CodeExecution enables the server-side code interpreter.
type CodeExecution struct{}

// ToolChoice constrains tool use.
type ToolChoice struct {
	Mode         ToolMode `json:"mode,omitempty"`
	FunctionName string   `json:"function_name,omitempty"`
}

// ResponseFormat constrains the shape of the generated content.
type ResponseFormat struct {
	FormatType FormatType `json:"format_type,omitempty"`
	// Schema is a JSON schema document, set for FormatTypeJSONSchema.
	Schema *string `json:"schema,omitempty"`
}
