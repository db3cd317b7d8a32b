//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package api_test

import (
	"context"
	"errors"
	"encoding/json"
	"io"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"

	"github.com/0xC0DE666/xai-sdk/api"
	"github.com/0xC0DE666/xai-sdk/internal/xaitest"
)

func TestChatClient_GetCompletion(t *testing.T) {
	srv := &xaitest.Server{Response: &api.GetChatCompletionResponse{
		ID:    "resp-1",
		Model: "grok-test",
		Outputs: []*api.CompletionOutput{{
			FinishReason: api.FinishReasonStop,
			Message:      &api.CompletionMessage{Content: "hi", Role: api.MessageRoleAssistant},
		}},
	}}
	client := api.NewChatClient(xaitest.Dial(t, srv))

	resp, err := client.GetCompletion(context.Background(), &api.GetCompletionsRequest{Model: "grok-test"})
	require.NoError(t, err)
	assert.Equal(t, "resp-1", resp.ID)
	require.Len(t, resp.Outputs, 1)
	assert.Equal(t, "hi", resp.Outputs[0].Message.Content)
	assert.Equal(t, api.FinishReasonStop, resp.Outputs[0].FinishReason)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "grok-test", reqs[0].Model)
}

func TestChatClient_GetCompletionUnaryError(t *testing.T) {
	srv := &xaitest.Server{UnaryErr: status.Error(codes.PermissionDenied, "no key")}
	client := api.NewChatClient(xaitest.Dial(t, srv))

	_, err := client.GetCompletion(context.Background(), &api.GetCompletionsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestChatClient_GetCompletionChunk(t *testing.T) {
	srv := &xaitest.Server{
		Chunks: []*api.GetChatCompletionChunk{
			xaitest.Chunk(xaitest.Content(0, "Hel")),
			xaitest.Chunk(xaitest.Content(0, "lo")),
			xaitest.Chunk(xaitest.Finish(0, api.FinishReasonStop)),
		},
	}
	client := api.NewChatClient(xaitest.Dial(t, srv))

	stream, err := client.GetCompletionChunk(context.Background(), &api.GetCompletionsRequest{Model: "grok-test"})
	require.NoError(t, err)

	var text string
	var last *api.GetChatCompletionChunk
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		text += chunk.Outputs[0].Delta.Content
		last = chunk
	}
	assert.Equal(t, "Hello", text)
	require.NotNil(t, last)
	assert.Equal(t, api.FinishReasonStop, last.Outputs[0].FinishReason)
}

func TestChatClient_GetCompletionChunkMidStreamError(t *testing.T) {
	srv := &xaitest.Server{
		Chunks:    []*api.GetChatCompletionChunk{xaitest.Chunk(xaitest.Content(0, "partial"))},
		StreamErr: status.Error(codes.Unavailable, "gone"),
	}
	client := api.NewChatClient(xaitest.Dial(t, srv))

	stream, err := client.GetCompletionChunk(context.Background(), &api.GetCompletionsRequest{})
	require.NoError(t, err)

	chunk, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "partial", chunk.Outputs[0].Delta.Content)

	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

// countingCodec is a JSON codec that counts the messages it marshals.
type countingCodec struct {
	marshaled *atomic.Int32
}

func (c countingCodec) Marshal(v any) ([]byte, error) {
	c.marshaled.Add(1)
	return json.Marshal(v)
}

func (countingCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (countingCodec) Name() string { return "json-counted" }

var counted atomic.Int32

func init() {
	encoding.RegisterCodec(countingCodec{marshaled: &counted})
}

func TestChatClient_WithContentSubtype(t *testing.T) {
	srv := &xaitest.Server{Response: &api.GetChatCompletionResponse{ID: "resp-1"}}
	client := api.NewChatClient(xaitest.Dial(t, srv), api.WithContentSubtype("json-counted"))

	before := counted.Load()
	resp, err := client.GetCompletion(context.Background(), &api.GetCompletionsRequest{Model: "grok-test"})
	require.NoError(t, err)
	assert.Equal(t, "resp-1", resp.ID)
	// Request on the client and response on the server.
	assert.GreaterOrEqual(t, counted.Load()-before, int32(2))
}

func TestChatClient_ProtoSubtypeRejectsPlainTypes(t *testing.T) {
	srv := &xaitest.Server{}
	client := api.NewChatClient(xaitest.Dial(t, srv), api.WithContentSubtype(""))

	_, err := client.GetCompletion(context.Background(), &api.GetCompletionsRequest{Model: "grok-test"})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Empty(t, srv.Requests())
}
