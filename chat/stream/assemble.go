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
	"slices"
	"sort"
	"strings"

	"github.com/0xC0DE666/xai-sdk/api"
)

// outputAccumulator merges the deltas of one output index.
type outputAccumulator struct {
	index            int32
	content          strings.Builder
	reasoningContent strings.Builder
	encryptedContent strings.Builder
	role             api.MessageRole
	toolCalls        []*api.ToolCall
	citations        []*api.InlineCitation
	finishReason     api.FinishReason
	logprobs         *api.LogProbs
}

func (a *outputAccumulator) add(out *api.CompletionOutputChunk) {
	if d := out.Delta; d != nil {
		a.content.WriteString(d.Content)
		a.reasoningContent.WriteString(d.ReasoningContent)
		a.encryptedContent.WriteString(d.EncryptedContent)
		if d.Role != api.MessageRoleInvalid {
			a.role = d.Role
		}
		for _, tc := range d.ToolCalls {
			if tc != nil {
				a.toolCalls = append(a.toolCalls, cloneToolCall(tc))
			}
		}
		for _, c := range d.Citations {
			if c != nil {
				cc := *c
				a.citations = append(a.citations, &cc)
			}
		}
	}
	// The last chunk touching the output decides both.
	a.finishReason = out.FinishReason
	a.logprobs = cloneLogProbs(out.Logprobs)
}

func cloneToolCall(tc *api.ToolCall) *api.ToolCall {
	c := *tc
	if tc.ErrorMessage != nil {
		msg := *tc.ErrorMessage
		c.ErrorMessage = &msg
	}
	if tc.Function != nil {
		fn := *tc.Function
		c.Function = &fn
	}
	return &c
}

func cloneLogProbs(lp *api.LogProbs) *api.LogProbs {
	if lp == nil {
		return nil
	}
	c := &api.LogProbs{}
	for _, p := range lp.Content {
		if p == nil {
			continue
		}
		cp := *p
		cp.Bytes = slices.Clone(p.Bytes)
		cp.TopLogprobs = nil
		for _, top := range p.TopLogprobs {
			if top == nil {
				continue
			}
			ct := *top
			ct.Bytes = slices.Clone(top.Bytes)
			cp.TopLogprobs = append(cp.TopLogprobs, &ct)
		}
		c.Content = append(c.Content, &cp)
	}
	return c
}

// Assemble merges chunks, in arrival order, into one response. It reports
// false when there is no chunk to assemble.
//
// Identity metadata comes from the first chunk, usage and citations from the
// last one. Deltas are grouped by output index: text is concatenated, lists
// are extended with copies of their non-nil entries, role keeps the last non-zero value and finish reason and log
// probabilities keep the value of the last chunk touching the output.
// Outputs are sorted by index. Assemble has no side effects and the response
// shares no memory with chunks.
func Assemble(chunks []*api.GetChatCompletionChunk) (*api.GetChatCompletionResponse, bool) {
	var first, last *api.GetChatCompletionChunk
	accs := make(map[int32]*outputAccumulator)
	for _, chunk := range chunks {
		if chunk == nil {
			continue
		}
		if first == nil {
			first = chunk
		}
		last = chunk
		for _, out := range chunk.Outputs {
			if out == nil {
				continue
			}
			acc, ok := accs[out.Index]
			if !ok {
				acc = &outputAccumulator{index: out.Index}
				accs[out.Index] = acc
			}
			acc.add(out)
		}
	}
	if first == nil {
		return nil, false
	}

	outputs := make([]*api.CompletionOutput, 0, len(accs))
	for _, acc := range accs {
		outputs = append(outputs, acc.output())
	}
	sort.Slice(outputs, func(i, j int) bool { return outputs[i].Index < outputs[j].Index })

	var usage *api.SamplingUsage
	if last.Usage != nil {
		u := *last.Usage
		usage = &u
	}
	return &api.GetChatCompletionResponse{
		ID:                first.ID,
		Outputs:           outputs,
		Created:           first.Created,
		Model:             first.Model,
		SystemFingerprint: first.SystemFingerprint,
		Usage:             usage,
		Citations:         slices.Clone(last.Citations),
	}, true
}
