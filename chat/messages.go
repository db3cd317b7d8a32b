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
	"fmt"

	"github.com/0xC0DE666/xai-sdk/api"
)

// User creates a user message. Parts are strings or *api.Content.
func User(parts ...any) *api.Message { return newMessage(api.MessageRoleUser, parts...) }

// System creates a system message.
func System(parts ...any) *api.Message { return newMessage(api.MessageRoleSystem, parts...) }

// Assistant creates an assistant message.
func Assistant(parts ...any) *api.Message { return newMessage(api.MessageRoleAssistant, parts...) }

// ToolResult creates the reply to the client-side tool call callID.
func ToolResult(callID, result string) *api.Message {
	msg := newMessage(api.MessageRoleTool, result)
	if callID != "" {
		msg.ToolCallID = &callID
	}
	return msg
}

func newMessage(role api.MessageRole, parts ...any) *api.Message {
	contents := make([]*api.Content, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			contents = append(contents, TextContent(v))
		case *api.Content:
			contents = append(contents, v)
		default:
			panic(fmt.Sprintf("chat: unsupported message part %T", part))
		}
	}
	return &api.Message{Role: role, Content: contents}
}

// TextContent wraps plain text.
func TextContent(text string) *api.Content { return &api.Content{Text: text} }

// ImageContent references an image by URL or data URI.
func ImageContent(url string, detail api.ImageDetail) *api.Content {
	return &api.Content{ImageURL: &api.ImageURLContent{ImageURL: url, Detail: detail}}
}

// FileContent references an uploaded file.
func FileContent(fileID string) *api.Content {
	return &api.Content{File: &api.FileContent{FileID: fileID}}
}

// ToMessages turns assembled outputs into history messages for a follow-up
// request. Outputs without a message are skipped, so the result can be
// shorter than outputs. Name and tool call id are left empty.
func ToMessages(outputs []*api.CompletionOutput) []*api.Message {
	msgs := make([]*api.Message, 0, len(outputs))
	for _, out := range outputs {
		if out == nil || out.Message == nil {
			continue
		}
		m := out.Message
		reasoning := m.ReasoningContent
		msgs = append(msgs, &api.Message{
			Content:          []*api.Content{TextContent(m.Content)},
			ReasoningContent: &reasoning,
			Role:             m.Role,
			ToolCalls:        m.ToolCalls,
			EncryptedContent: m.EncryptedContent,
		})
	}
	return msgs
}
