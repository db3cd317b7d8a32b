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
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/0xC0DE666/xai-sdk/api"
)

// NewWriterConsumer returns a Consumer that writes the reasoning and content
// tokens of output 0 to w as they arrive, followed by a blank line when each
// phase completes. Other outputs are ignored; use NewBufferedWriterConsumer
// when several outputs are requested. Callbacks set on the result run after
// the writer's own.
func NewWriterConsumer(w io.Writer) *Consumer {
	token := func(_ context.Context, oc OutputContext, token string) {
		if oc.OutputIndex != 0 {
			return
		}
		fmt.Fprint(w, token)
	}
	done := func(_ context.Context, oc OutputContext) {
		if oc.OutputIndex != 0 {
			return
		}
		fmt.Fprint(w, "\n\n")
	}
	return Extend(NewConsumer().
		OnReasoningToken(token).
		OnReasoningComplete(done).
		OnContentToken(token).
		OnContentComplete(done))
}

// WithStdout is NewWriterConsumer bound to os.Stdout.
func WithStdout() *Consumer {
	return NewWriterConsumer(os.Stdout)
}

type outputBuffer struct {
	reasoning strings.Builder
	content   strings.Builder
}

// NewBufferedWriterConsumer returns a Consumer that buffers the tokens of
// every output and writes them to w in one labelled block when the output
// finishes, so that concurrent outputs never interleave. Callbacks set on the
// result run after the writer's own.
func NewBufferedWriterConsumer(w io.Writer) *Consumer {
	var (
		mu       sync.Mutex
		buffers  = make(map[int]*outputBuffer)
		reasons  = make(map[int]api.FinishReason)
		buffered = func(index int) *outputBuffer {
			b, ok := buffers[index]
			if !ok {
				b = &outputBuffer{}
				buffers[index] = b
			}
			return b
		}
	)

	return Extend(NewConsumer().
		OnChunk(func(_ context.Context, chunk *api.GetChatCompletionChunk) {
			mu.Lock()
			defer mu.Unlock()
			for _, out := range chunk.Outputs {
				if out != nil && out.FinishReason.IsFinished() {
					reasons[int(out.Index)] = out.FinishReason
				}
			}
		}).
		OnReasoningToken(func(_ context.Context, oc OutputContext, token string) {
			mu.Lock()
			defer mu.Unlock()
			buffered(oc.OutputIndex).reasoning.WriteString(token)
		}).
		OnContentToken(func(_ context.Context, oc OutputContext, token string) {
			mu.Lock()
			defer mu.Unlock()
			buffered(oc.OutputIndex).content.WriteString(token)
		}).
		OnContentComplete(func(_ context.Context, oc OutputContext) {
			mu.Lock()
			defer mu.Unlock()
			b := buffered(oc.OutputIndex)
			delete(buffers, oc.OutputIndex)

			var sb strings.Builder
			fmt.Fprintf(&sb, "\n--- Output %d ---\n", oc.OutputIndex)
			if b.reasoning.Len() > 0 {
				fmt.Fprintf(&sb, "Reasoning:\n%s\n\n", b.reasoning.String())
			}
			if b.content.Len() > 0 {
				fmt.Fprintf(&sb, "Content:\n%s\n\n", b.content.String())
			}
			fmt.Fprintf(&sb, "Finish reason: %s\n\n", reasons[oc.OutputIndex])
			io.WriteString(w, sb.String())
		}))
}

// WithBufferedStdout is NewBufferedWriterConsumer bound to os.Stdout.
func WithBufferedStdout() *Consumer {
	return NewBufferedWriterConsumer(os.Stdout)
}
