//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package openai converts chat history into openai-go message params, for
// callers that continue a conversation on the OpenAI compatible REST endpoint.
package openai

import (
	"strings"

	"github.com/openai/openai-go"

	"github.com/0xC0DE666/xai-sdk/api"
	"github.com/0xC0DE666/xai-sdk/chat"
)

// ToMessageParams converts assembled outputs into assistant message params.
// Outputs without a message are skipped.
func ToMessageParams(outputs []*api.CompletionOutput) []openai.ChatCompletionMessageParamUnion {
	return MessageParams(chat.ToMessages(outputs))
}

// MessageParams converts request messages. Unknown roles become user messages.
// Only client-side tool calls are kept on assistant messages, since the
// server-side ones were already executed by xAI.
func MessageParams(msgs []*api.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		text := textOf(msg)
		switch msg.Role {
		case api.MessageRoleSystem, api.MessageRoleDeveloper:
			result = append(result, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(text),
					},
				},
			})
		case api.MessageRoleAssistant:
			assistant := &openai.ChatCompletionAssistantMessageParam{
				ToolCalls: convertToolCalls(msg.ToolCalls),
			}
			if text != "" {
				assistant.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: openai.String(text),
				}
			}
			result = append(result, openai.ChatCompletionMessageParamUnion{OfAssistant: assistant})
		case api.MessageRoleTool:
			var callID string
			if msg.ToolCallID != nil {
				callID = *msg.ToolCallID
			}
			result = append(result, openai.ChatCompletionMessageParamUnion{
				OfTool: &openai.ChatCompletionToolMessageParam{
					Content: openai.ChatCompletionToolMessageParamContentUnion{
						OfString: openai.String(text),
					},
					ToolCallID: callID,
				},
			})
		default:
			result = append(result, userMessage(msg, text))
		}
	}
	return result
}

func userMessage(msg *api.Message, text string) openai.ChatCompletionMessageParamUnion {
	if !hasMedia(msg) {
		return openai.ChatCompletionMessageParamUnion{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(text),
				},
			},
		}
	}
	var parts []openai.ChatCompletionContentPartUnionParam
	for _, c := range msg.Content {
		if part := convertContentPart(c); part != nil {
			parts = append(parts, *part)
		}
	}
	return openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfArrayOfContentParts: parts,
			},
		},
	}
}

func convertContentPart(c *api.Content) *openai.ChatCompletionContentPartUnionParam {
	switch {
	case c == nil:
		return nil
	case c.ImageURL != nil:
		return &openai.ChatCompletionContentPartUnionParam{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL:    c.ImageURL.ImageURL,
					Detail: imageDetail(c.ImageURL.Detail),
				},
			},
		}
	case c.File != nil:
		return &openai.ChatCompletionContentPartUnionParam{
			OfFile: &openai.ChatCompletionContentPartFileParam{
				File: openai.ChatCompletionContentPartFileFileParam{
					FileID: openai.String(c.File.FileID),
				},
			},
		}
	default:
		return &openai.ChatCompletionContentPartUnionParam{
			OfText: &openai.ChatCompletionContentPartTextParam{Text: c.Text},
		}
	}
}

func imageDetail(d api.ImageDetail) string {
	switch d {
	case api.ImageDetailLow:
		return "low"
	case api.ImageDetailHigh:
		return "high"
	default:
		return "auto"
	}
}

func convertToolCalls(calls []*api.ToolCall) []openai.ChatCompletionMessageToolCallParam {
	var result []openai.ChatCompletionMessageToolCallParam
	for _, call := range calls {
		if call == nil || call.Function == nil || !call.Type.IsClientSide() {
			continue
		}
		result = append(result, openai.ChatCompletionMessageToolCallParam{
			ID: call.ID,
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		})
	}
	return result
}

func hasMedia(msg *api.Message) bool {
	for _, c := range msg.Content {
		if c != nil && (c.ImageURL != nil || c.File != nil) {
			return true
		}
	}
	return false
}

// textOf joins the text parts of msg.
func textOf(msg *api.Message) string {
	var b strings.Builder
	for _, c := range msg.Content {
		if c != nil && c.ImageURL == nil && c.File == nil {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}
