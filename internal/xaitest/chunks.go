//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package xaitest

import (
	"io"

	"github.com/0xC0DE666/xai-sdk/api"
)

// Chunk wraps outputs into a chunk with fixed identity metadata.
func Chunk(outputs ...*api.CompletionOutputChunk) *api.GetChatCompletionChunk {
	return &api.GetChatCompletionChunk{
		ID:      "chunk-id",
		Model:   "grok-test",
		Outputs: outputs,
	}
}

// Content is an output chunk carrying content text.
func Content(index int32, text string) *api.CompletionOutputChunk {
	return &api.CompletionOutputChunk{
		Index: index,
		Delta: &api.Delta{Content: text, Role: api.MessageRoleAssistant},
	}
}

// Reasoning is an output chunk carrying reasoning text.
func Reasoning(index int32, text string) *api.CompletionOutputChunk {
	return &api.CompletionOutputChunk{
		Index: index,
		Delta: &api.Delta{ReasoningContent: text, Role: api.MessageRoleAssistant},
	}
}

// Finish is an empty output chunk that ends an output with reason.
func Finish(index int32, reason api.FinishReason) *api.CompletionOutputChunk {
	return &api.CompletionOutputChunk{
		Index:        index,
		FinishReason: reason,
		Delta:        &api.Delta{},
	}
}

// Tool is an output chunk carrying a single tool call.
func Tool(index int32, id string, typ api.ToolCallType, name, args string) *api.CompletionOutputChunk {
	return &api.CompletionOutputChunk{
		Index: index,
		Delta: &api.Delta{ToolCalls: []*api.ToolCall{{
			ID:       id,
			Type:     typ,
			Function: &api.FunctionCall{Name: name, Arguments: args},
		}}},
	}
}

// SliceStream replays chunks and then returns Err, or io.EOF when Err is nil.
type SliceStream struct {
	Chunks []*api.GetChatCompletionChunk
	Err    error
	next   int
}

// Recv returns the next chunk.
func (s *SliceStream) Recv() (*api.GetChatCompletionChunk, error) {
	if s.next < len(s.Chunks) {
		c := s.Chunks[s.next]
		s.next++
		return c, nil
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, io.EOF
}
