//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package stream processes streamed chat completions.
//
// Process drives a chunk stream, tracks the reasoning and content phases of
// every output and dispatches the callbacks of a Consumer. Assemble reduces
// the collected chunks into a complete response.
package stream

import (
	"context"
	"errors"
	"io"

	"github.com/0xC0DE666/xai-sdk/api"
)

// ChunkStream is a pull-based source of chunks. Recv returns io.EOF, or a nil
// chunk with a nil error, once the stream ended cleanly; any other error is
// fatal.
// grpc.ServerStreamingClient[api.GetChatCompletionChunk] satisfies it.
type ChunkStream interface {
	Recv() (*api.GetChatCompletionChunk, error)
}

// Process reads s until it ends and dispatches the callbacks of c for every
// chunk. For each output of a chunk the callbacks fire in this order:
// reasoning token, reasoning complete, content token, content complete,
// inline citations, then client and server tool calls. After a clean end the
// usage and citations of the last chunk are reported.
//
// Process returns every chunk received, in arrival order. A stream error is
// returned as is, with no chunks, and no final callbacks are fired.
// c may be nil.
func Process(ctx context.Context, s ChunkStream, c *Consumer) ([]*api.GetChatCompletionChunk, error) {
	if c == nil {
		c = NewConsumer()
	}
	p := &processor{consumer: c, outputs: make(map[int32]*outputState)}
	var chunks []*api.GetChatCompletionChunk
	for {
		chunk, err := s.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if chunk == nil {
			break
		}
		chunks = append(chunks, chunk)
		p.handleChunk(ctx, chunk)
	}
	if len(chunks) > 0 {
		p.finish(ctx, chunks[len(chunks)-1])
	}
	return chunks, nil
}

// outputState is what Process remembers about one output index.
type outputState struct {
	reasoningTokens int
	contentTokens   int
	finishReason    api.FinishReason

	reasoning PhaseStatus
	content   PhaseStatus

	reasoningFired bool
	contentFired   bool
}

type processor struct {
	consumer     *Consumer
	outputs      map[int32]*outputState
	totalOutputs int
}

func (p *processor) state(index int32) *outputState {
	st, ok := p.outputs[index]
	if !ok {
		st = &outputState{}
		p.outputs[index] = st
	}
	if n := int(index) + 1; n > p.totalOutputs {
		p.totalOutputs = n
	}
	return st
}

func (p *processor) handleChunk(ctx context.Context, chunk *api.GetChatCompletionChunk) {
	p.consumer.emitChunk(ctx, chunk)
	for _, out := range chunk.Outputs {
		if out != nil {
			p.handleOutput(ctx, out)
		}
	}
}

func (p *processor) handleOutput(ctx context.Context, out *api.CompletionOutputChunk) {
	c := p.consumer
	st := p.state(out.Index)
	d := out.Delta

	if d != nil {
		if d.ReasoningContent != "" {
			st.reasoningTokens++
		}
		if d.Content != "" {
			st.contentTokens++
		}
	}
	st.finishReason = out.FinishReason

	reasoning, content := ClassifyPhases(st.reasoningTokens, st.contentTokens, st.finishReason)
	st.reasoning = latch(st.reasoning, reasoning)
	st.content = latch(st.content, content)
	oc := NewOutputContext(p.totalOutputs, int(out.Index), st.reasoning, st.content)

	if d != nil && d.ReasoningContent != "" {
		c.emitReasoningToken(ctx, oc, d.ReasoningContent)
	}
	if st.reasoning == PhaseComplete && !st.reasoningFired {
		st.reasoningFired = true
		c.emitReasoningComplete(ctx, oc)
	}
	if d != nil && d.Content != "" {
		c.emitContentToken(ctx, oc, d.Content)
	}
	if st.content == PhaseComplete && !st.contentFired {
		st.contentFired = true
		c.emitContentComplete(ctx, oc)
	}
	if d == nil {
		return
	}
	if len(d.Citations) > 0 {
		c.emitInlineCitations(ctx, oc, d.Citations)
	}
	if len(d.ToolCalls) > 0 {
		p.dispatchToolCalls(ctx, oc, d.ToolCalls)
	}
}

func (p *processor) dispatchToolCalls(ctx context.Context, oc OutputContext, calls []*api.ToolCall) {
	var client, server []*api.ToolCall
	for _, tc := range calls {
		if tc == nil {
			continue
		}
		if tc.Type.IsClientSide() {
			client = append(client, tc)
		} else {
			server = append(server, tc)
		}
	}
	if len(client) > 0 {
		p.consumer.emitClientToolCalls(ctx, oc, client)
	}
	if len(server) > 0 {
		p.consumer.emitServerToolCalls(ctx, oc, server)
	}
}

func (p *processor) finish(ctx context.Context, last *api.GetChatCompletionChunk) {
	if last.Usage != nil {
		p.consumer.emitUsage(ctx, last.Usage)
	}
	if len(last.Citations) > 0 {
		p.consumer.emitCitations(ctx, last.Citations)
	}
}
