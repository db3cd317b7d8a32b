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
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/0xC0DE666/xai-sdk/api"
)

// RequestOption configures a completion request.
type RequestOption func(*api.GetCompletionsRequest)

// NewRequest builds a completion request for model.
func NewRequest(model string, opts ...RequestOption) *api.GetCompletionsRequest {
	req := &api.GetCompletionsRequest{Model: model}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// WithMessages appends messages to the conversation.
func WithMessages(msgs ...*api.Message) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.Messages = append(r.Messages, msgs...)
	}
}

// WithUser sets the end-user identifier.
func WithUser(user string) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.User = user
	}
}

// WithN asks for n independent outputs.
func WithN(n int) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		v := int32(n)
		r.N = &v
	}
}

// WithMaxTokens caps the number of generated tokens.
func WithMaxTokens(n int) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		v := int32(n)
		r.MaxTokens = &v
	}
}

// WithSeed makes sampling deterministic where the model supports it.
func WithSeed(seed int) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		v := int32(seed)
		r.Seed = &v
	}
}

// WithStop adds stop sequences.
func WithStop(stop ...string) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.Stop = append(r.Stop, stop...)
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.Temperature = &t
	}
}

// WithTopP sets nucleus sampling.
func WithTopP(p float32) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.TopP = &p
	}
}

// WithLogprobs requests log probabilities, with top alternatives when top > 0.
func WithLogprobs(top int) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.Logprobs = true
		if top > 0 {
			v := int32(top)
			r.TopLogprobs = &v
		}
	}
}

// WithTools registers tools the model may call.
func WithTools(tools ...*api.Tool) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.Tools = append(r.Tools, tools...)
	}
}

// WithToolChoice constrains how tools are used.
func WithToolChoice(choice *api.ToolChoice) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.ToolChoice = choice
	}
}

// WithParallelToolCalls allows or forbids several tool calls in one turn.
func WithParallelToolCalls(enabled bool) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.ParallelToolCalls = &enabled
	}
}

// WithReasoningEffort sets the reasoning budget of reasoning models.
func WithReasoningEffort(effort api.ReasoningEffort) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.ReasoningEffort = &effort
	}
}

// WithPreviousResponse continues a conversation stored on the server.
func WithPreviousResponse(id string) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.PreviousResponseID = &id
	}
}

// WithEncryptedContent asks for encrypted reasoning that can be sent back
// in later turns.
func WithEncryptedContent(enabled bool) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.UseEncryptedContent = enabled
	}
}

// WithInclude requests optional response parts.
func WithInclude(opts ...api.IncludeOption) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.Include = append(r.Include, opts...)
	}
}

// WithResponseFormat sets the response format directly.
func WithResponseFormat(format *api.ResponseFormat) RequestOption {
	return func(r *api.GetCompletionsRequest) {
		r.ResponseFormat = format
	}
}

// WithResponseSchema constrains the content to the JSON schema reflected from
// v, typically a pointer to a struct. It panics if the schema cannot be
// encoded, which only happens for types the reflector cannot describe.
func WithResponseSchema(v any) RequestOption {
	format, err := JSONSchemaFormat(v)
	if err != nil {
		panic(err)
	}
	return WithResponseFormat(format)
}

// JSONSchemaFormat reflects a JSON schema response format from v.
func JSONSchemaFormat(v any) (*api.ResponseFormat, error) {
	schema := (&jsonschema.Reflector{}).Reflect(v)
	b, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("chat: encode response schema: %w", err)
	}
	s := string(b)
	return &api.ResponseFormat{
		FormatType: api.FormatTypeJSONSchema,
		Schema:     &s,
	}, nil
}

// FunctionTool declares a client-side function tool whose parameters are the
// JSON schema reflected from params.
func FunctionTool(name, description string, params any) (*api.Tool, error) {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	b, err := json.Marshal(reflector.Reflect(params))
	if err != nil {
		return nil, fmt.Errorf("chat: encode parameters of %s: %w", name, err)
	}
	return &api.Tool{Function: &api.Function{
		Name:        name,
		Description: description,
		Parameters:  string(b),
	}}, nil
}
