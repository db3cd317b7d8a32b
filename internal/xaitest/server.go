//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package xaitest provides an in-memory Chat server for tests and the
// offline examples.
package xaitest

import (
	"context"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/0xC0DE666/xai-sdk/api"
)

const bufSize = 1 << 20

// Server is a scripted Chat server. GetCompletionChunk sends Chunks in order
// and then returns StreamErr; GetCompletion returns Response and UnaryErr.
type Server struct {
	Chunks    []*api.GetChatCompletionChunk
	StreamErr error
	Response  *api.GetChatCompletionResponse
	UnaryErr  error
	// Respond, when set, overrides Chunks per request.
	Respond func(*api.GetCompletionsRequest) []*api.GetChatCompletionChunk
	// Answer, when set, overrides Response per request.
	Answer func(*api.GetCompletionsRequest) *api.GetChatCompletionResponse

	mu       sync.Mutex
	requests []*api.GetCompletionsRequest
	metadata []metadata.MD
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*api.GetCompletionsRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*api.GetCompletionsRequest(nil), s.requests...)
}

// Metadata returns the incoming metadata of every call received so far.
func (s *Server) Metadata() []metadata.MD {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]metadata.MD(nil), s.metadata...)
}

func (s *Server) record(ctx context.Context, req *api.GetCompletionsRequest) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.metadata = append(s.metadata, md)
	s.mu.Unlock()
}

// GetCompletion implements api.ChatServer.
func (s *Server) GetCompletion(
	ctx context.Context,
	req *api.GetCompletionsRequest,
) (*api.GetChatCompletionResponse, error) {
	s.record(ctx, req)
	if s.UnaryErr != nil {
		return nil, s.UnaryErr
	}
	if s.Answer != nil {
		return s.Answer(req), nil
	}
	if s.Response == nil {
		return &api.GetChatCompletionResponse{}, nil
	}
	return s.Response, nil
}

// GetCompletionChunk implements api.ChatServer.
func (s *Server) GetCompletionChunk(
	req *api.GetCompletionsRequest,
	stream grpc.ServerStreamingServer[api.GetChatCompletionChunk],
) error {
	s.record(stream.Context(), req)
	chunks := s.Chunks
	if s.Respond != nil {
		chunks = s.Respond(req)
	}
	for _, c := range chunks {
		if err := stream.Send(c); err != nil {
			return err
		}
	}
	return s.StreamErr
}

// Serve starts srv on an in-memory listener and returns a connection to it
// and a function that closes both.
func Serve(srv api.ChatServer) (*grpc.ClientConn, func() error, error) {
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer()
	api.RegisterChatServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		gs.Stop()
		return nil, nil, err
	}
	return conn, func() error {
		err := conn.Close()
		gs.Stop()
		return err
	}, nil
}

// Dial is Serve for tests. Both ends are torn down when the test ends.
func Dial(t testing.TB, srv api.ChatServer) *grpc.ClientConn {
	t.Helper()
	conn, closeFn, err := Serve(srv)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}
	t.Cleanup(func() { _ = closeFn() })
	return conn
}
