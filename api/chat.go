//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package api holds the wire types and the gRPC stub of the xAI Chat service.
//
// Messages travel as JSON over gRPC using the codec registered by this
// package under the "json" content subtype.
package api

import "time"

// GetChatCompletionChunk is one increment of a streamed completion.
type GetChatCompletionChunk struct {
	ID                string                   `json:"id,omitempty"`
	Outputs           []*CompletionOutputChunk `json:"outputs,omitempty"`
	Created           time.Time                `json:"created,omitempty"`
	Model             string                   `json:"model,omitempty"`
	SystemFingerprint string                   `json:"system_fingerprint,omitempty"`
	// Usage is cumulative; the last chunk of a stream carries the final numbers.
	Usage     *SamplingUsage `json:"usage,omitempty"`
	Citations []string       `json:"citations,omitempty"`
}

// CompletionOutputChunk is the slice of one output carried by a chunk.
type CompletionOutputChunk struct {
	Delta        *Delta       `json:"delta,omitempty"`
	Logprobs     *LogProbs    `json:"logprobs,omitempty"`
	FinishReason FinishReason `json:"finish_reason,omitempty"`
	Index        int32        `json:"index"`
}

// Delta is the text and tool calls added to an output by one chunk.
type Delta struct {
	Content          string            `json:"content,omitempty"`
	ReasoningContent string            `json:"reasoning_content,omitempty"`
	Role             MessageRole       `json:"role,omitempty"`
	ToolCalls        []*ToolCall       `json:"tool_calls,omitempty"`
	EncryptedContent string            `json:"encrypted_content,omitempty"`
	Citations        []*InlineCitation `json:"citations,omitempty"`
}

// GetChatCompletionResponse is a complete, non-streamed completion.
type GetChatCompletionResponse struct {
	ID                string              `json:"id,omitempty"`
	Outputs           []*CompletionOutput `json:"outputs,omitempty"`
	Created           time.Time           `json:"created,omitempty"`
	Model             string              `json:"model,omitempty"`
	SystemFingerprint string              `json:"system_fingerprint,omitempty"`
	Usage             *SamplingUsage      `json:"usage,omitempty"`
	Citations         []string            `json:"citations,omitempty"`
}

// CompletionOutput is one finished answer in a response.
type CompletionOutput struct {
	FinishReason FinishReason       `json:"finish_reason,omitempty"`
	Index        int32              `json:"index"`
	Message      *CompletionMessage `json:"message,omitempty"`
	Logprobs     *LogProbs          `json:"logprobs,omitempty"`
}

// CompletionMessage is the message produced for an output.
type CompletionMessage struct {
	Content          string            `json:"content,omitempty"`
	ReasoningContent string            `json:"reasoning_content,omitempty"`
	Role             MessageRole       `json:"role,omitempty"`
	ToolCalls        []*ToolCall       `json:"tool_calls,omitempty"`
	EncryptedContent string            `json:"encrypted_content,omitempty"`
	Citations        []*InlineCitation `json:"citations,omitempty"`
}

// ToolCall is a tool invocation requested or performed by the model.
type ToolCall struct {
	ID           string         `json:"id,omitempty"`
	Type         ToolCallType   `json:"type,omitempty"`
	Status       ToolCallStatus `json:"status,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	Function     *FunctionCall  `json:"function,omitempty"`
}

// FunctionCall names the function of a tool call and its JSON arguments.
type FunctionCall struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// GetName returns the function name, or "" for a nil call.
func (f *FunctionCall) GetName() string {
	if f == nil {
		return ""
	}
	return f.Name
}

// GetArguments returns the JSON arguments, or "" for a nil call.
func (f *FunctionCall) GetArguments() string {
	if f == nil {
		return ""
	}
	return f.Arguments
}

// InlineCitation anchors a source to a range of the generated content.
type InlineCitation struct {
	ID         string `json:"id,omitempty"`
	StartIndex int32  `json:"start_index,omitempty"`
	EndIndex   int32  `json:"end_index,omitempty"`
	URL        string `json:"url,omitempty"`
	Title      string `json:"title,omitempty"`
}

// SamplingUsage reports token accounting for a request.
type SamplingUsage struct {
	CompletionTokens       int32 `json:"completion_tokens,omitempty"`
	ReasoningTokens        int32 `json:"reasoning_tokens,omitempty"`
	PromptTokens           int32 `json:"prompt_tokens,omitempty"`
	TotalTokens            int32 `json:"total_tokens,omitempty"`
	PromptTextTokens       int32 `json:"prompt_text_tokens,omitempty"`
	CachedPromptTextTokens int32 `json:"cached_prompt_text_tokens,omitempty"`
	PromptImageTokens      int32 `json:"prompt_image_tokens,omitempty"`
	NumSourcesUsed         int32 `json:"num_sources_used,omitempty"`
}

// LogProbs holds the log probabilities of generated tokens.
type LogProbs struct {
	Content []*LogProb `json:"content,omitempty"`
}

// LogProb is the log probability of one generated token.
type LogProb struct {
	Token       string        `json:"token,omitempty"`
	Logprob     float32       `json:"logprob"`
	Bytes       []byte        `json:"bytes,omitempty"`
	TopLogprobs []*TopLogProb `json:"top_logprobs,omitempty"`
}

// TopLogProb is an alternative token considered at a position.
type TopLogProb struct {
	Token   string  `json:"token,omitempty"`
	Logprob float32 `json:"logprob"`
	Bytes   []byte  `json:"bytes,omitempty"`
}
