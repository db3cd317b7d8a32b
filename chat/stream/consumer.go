//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package stream

import (
	"context"

	"github.com/0xC0DE666/xai-sdk/api"
)

// ChunkCallback receives every raw chunk before any per-output callback.
type ChunkCallback func(ctx context.Context, chunk *api.GetChatCompletionChunk)

// TokenCallback receives one reasoning or content fragment of an output.
type TokenCallback func(ctx context.Context, oc OutputContext, token string)

// PhaseCallback is called once when a phase of an output completes.
type PhaseCallback func(ctx context.Context, oc OutputContext)

// InlineCitationsCallback receives the inline citations carried by a delta.
type InlineCitationsCallback func(ctx context.Context, oc OutputContext, citations []*api.InlineCitation)

// ToolCallsCallback receives the tool calls carried by a delta.
type ToolCallsCallback func(ctx context.Context, oc OutputContext, calls []*api.ToolCall)

// UsageCallback receives the usage of the last chunk after a clean end of stream.
type UsageCallback func(ctx context.Context, usage *api.SamplingUsage)

// CitationsCallback receives the citations of the last chunk after a clean end of stream.
type CitationsCallback func(ctx context.Context, citations []string)

// Consumer holds the callbacks invoked by Process. Every callback is optional
// and unset callbacks are skipped. Callbacks run synchronously on the
// goroutine calling Process, in chunk arrival order.
//
//	c := stream.NewConsumer().
//		OnContentToken(func(ctx context.Context, oc stream.OutputContext, token string) {
//			fmt.Print(token)
//		}).
//		OnUsage(func(ctx context.Context, u *api.SamplingUsage) {
//			fmt.Println("\ntokens:", u.TotalTokens)
//		})
type Consumer struct {
	// base runs before the callbacks of this Consumer.
	base *Consumer

	chunk             ChunkCallback
	reasoningToken    TokenCallback
	reasoningComplete PhaseCallback
	contentToken      TokenCallback
	contentComplete   PhaseCallback
	inlineCitations   InlineCitationsCallback
	clientToolCalls   ToolCallsCallback
	serverToolCalls   ToolCallsCallback
	usage             UsageCallback
	citations         CitationsCallback
}

// NewConsumer returns a Consumer with no callbacks.
func NewConsumer() *Consumer {
	return &Consumer{}
}

// Extend returns an empty Consumer layered on base. Every callback of base
// still fires, before the callback of the same kind set on the result.
func Extend(base *Consumer) *Consumer {
	return &Consumer{base: base}
}

// OnChunk sets the raw chunk callback.
func (c *Consumer) OnChunk(cb ChunkCallback) *Consumer {
	c.chunk = cb
	return c
}

// OnReasoningToken sets the callback for reasoning fragments.
func (c *Consumer) OnReasoningToken(cb TokenCallback) *Consumer {
	c.reasoningToken = cb
	return c
}

// OnReasoningComplete sets the callback fired once per output when its
// reasoning phase completes.
func (c *Consumer) OnReasoningComplete(cb PhaseCallback) *Consumer {
	c.reasoningComplete = cb
	return c
}

// OnContentToken sets the callback for content fragments.
func (c *Consumer) OnContentToken(cb TokenCallback) *Consumer {
	c.contentToken = cb
	return c
}

// OnContentComplete sets the callback fired once per output when its
// content phase completes.
func (c *Consumer) OnContentComplete(cb PhaseCallback) *Consumer {
	c.contentComplete = cb
	return c
}

// OnInlineCitations sets the callback for inline citations.
func (c *Consumer) OnInlineCitations(cb InlineCitationsCallback) *Consumer {
	c.inlineCitations = cb
	return c
}

// OnClientToolCalls sets the callback for tool calls the caller must execute.
func (c *Consumer) OnClientToolCalls(cb ToolCallsCallback) *Consumer {
	c.clientToolCalls = cb
	return c
}

// OnServerToolCalls sets the callback for tool calls executed by the server.
func (c *Consumer) OnServerToolCalls(cb ToolCallsCallback) *Consumer {
	c.serverToolCalls = cb
	return c
}

// OnUsage sets the final usage callback.
func (c *Consumer) OnUsage(cb UsageCallback) *Consumer {
	c.usage = cb
	return c
}

// OnCitations sets the final citations callback.
func (c *Consumer) OnCitations(cb CitationsCallback) *Consumer {
	c.citations = cb
	return c
}

func (c *Consumer) emitChunk(ctx context.Context, chunk *api.GetChatCompletionChunk) {
	if c.base != nil {
		c.base.emitChunk(ctx, chunk)
	}
	if c.chunk != nil {
		c.chunk(ctx, chunk)
	}
}

func (c *Consumer) emitReasoningToken(ctx context.Context, oc OutputContext, token string) {
	if c.base != nil {
		c.base.emitReasoningToken(ctx, oc, token)
	}
	if c.reasoningToken != nil {
		c.reasoningToken(ctx, oc, token)
	}
}

func (c *Consumer) emitReasoningComplete(ctx context.Context, oc OutputContext) {
	if c.base != nil {
		c.base.emitReasoningComplete(ctx, oc)
	}
	if c.reasoningComplete != nil {
		c.reasoningComplete(ctx, oc)
	}
}

func (c *Consumer) emitContentToken(ctx context.Context, oc OutputContext, token string) {
	if c.base != nil {
		c.base.emitContentToken(ctx, oc, token)
	}
	if c.contentToken != nil {
		c.contentToken(ctx, oc, token)
	}
}

func (c *Consumer) emitContentComplete(ctx context.Context, oc OutputContext) {
	if c.base != nil {
		c.base.emitContentComplete(ctx, oc)
	}
	if c.contentComplete != nil {
		c.contentComplete(ctx, oc)
	}
}

func (c *Consumer) emitInlineCitations(ctx context.Context, oc OutputContext, citations []*api.InlineCitation) {
	if c.base != nil {
		c.base.emitInlineCitations(ctx, oc, citations)
	}
	if c.inlineCitations != nil {
		c.inlineCitations(ctx, oc, citations)
	}
}

func (c *Consumer) emitClientToolCalls(ctx context.Context, oc OutputContext, calls []*api.ToolCall) {
	if c.base != nil {
		c.base.emitClientToolCalls(ctx, oc, calls)
	}
	if c.clientToolCalls != nil {
		c.clientToolCalls(ctx, oc, calls)
	}
}

func (c *Consumer) emitServerToolCalls(ctx context.Context, oc OutputContext, calls []*api.ToolCall) {
	if c.base != nil {
		c.base.emitServerToolCalls(ctx, oc, calls)
	}
	if c.serverToolCalls != nil {
		c.serverToolCalls(ctx, oc, calls)
	}
}

func (c *Consumer) emitUsage(ctx context.Context, usage *api.SamplingUsage) {
	if c.base != nil {
		c.base.emitUsage(ctx, usage)
	}
	if c.usage != nil {
		c.usage(ctx, usage)
	}
}

func (c *Consumer) emitCitations(ctx context.Context, citations []string) {
	if c.base != nil {
		c.base.emitCitations(ctx, citations)
	}
	if c.citations != nil {
		c.citations(ctx, citations)
	}
}
