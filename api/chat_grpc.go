//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package api

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the Chat service.
const (
	ChatGetCompletionMethod      = "/xai_api.Chat/GetCompletion"
	ChatGetCompletionChunkMethod = "/xai_api.Chat/GetCompletionChunk"
)

// ChatClient is the client API for the Chat service.
type ChatClient interface {
	// GetCompletion samples a complete response.
	GetCompletion(ctx context.Context, in *GetCompletionsRequest, opts ...grpc.CallOption) (*GetChatCompletionResponse, error)
	// GetCompletionChunk streams the response chunk by chunk.
	GetCompletionChunk(ctx context.Context, in *GetCompletionsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetChatCompletionChunk], error)
}

type chatClient struct {
	cc      grpc.ClientConnInterface
	subtype string
}

// ClientOption configures a ChatClient.
type ClientOption func(*chatClient)

// WithContentSubtype selects the registered gRPC codec by content subtype.
// Defaults to CodecName. An empty name leaves the choice to grpc, which
// means the proto codec; the types of this package are not proto messages,
// so a server that only speaks protobuf needs a codec registered for them.
func WithContentSubtype(name string) ClientOption {
	return func(c *chatClient) {
		c.subtype = name
	}
}

// NewChatClient returns a ChatClient over cc.
func NewChatClient(cc grpc.ClientConnInterface, opts ...ClientOption) ChatClient {
	c := &chatClient{cc: cc, subtype: CodecName}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *chatClient) withCodec(opts []grpc.CallOption) []grpc.CallOption {
	if c.subtype == "" {
		return opts
	}
	return append([]grpc.CallOption{grpc.CallContentSubtype(c.subtype)}, opts...)
}

func (c *chatClient) GetCompletion(
	ctx context.Context,
	in *GetCompletionsRequest,
	opts ...grpc.CallOption,
) (*GetChatCompletionResponse, error) {
	out := new(GetChatCompletionResponse)
	if err := c.cc.Invoke(ctx, ChatGetCompletionMethod, in, out, c.withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatClient) GetCompletionChunk(
	ctx context.Context,
	in *GetCompletionsRequest,
	opts ...grpc.CallOption,
) (grpc.ServerStreamingClient[GetChatCompletionChunk], error) {
	stream, err := c.cc.NewStream(ctx, &ChatServiceDesc.Streams[0], ChatGetCompletionChunkMethod, c.withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GetCompletionsRequest, GetChatCompletionChunk]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ChatServer is the server API for the Chat service.
type ChatServer interface {
	GetCompletion(context.Context, *GetCompletionsRequest) (*GetChatCompletionResponse, error)
	GetCompletionChunk(*GetCompletionsRequest, grpc.ServerStreamingServer[GetChatCompletionChunk]) error
}

// RegisterChatServer registers srv on s.
func RegisterChatServer(s grpc.ServiceRegistrar, srv ChatServer) {
	s.RegisterService(&ChatServiceDesc, srv)
}

func chatGetCompletionHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GetCompletionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServer).GetCompletion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ChatGetCompletionMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServer).GetCompletion(ctx, req.(*GetCompletionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func chatGetCompletionChunkHandler(srv any, stream grpc.ServerStream) error {
	in := new(GetCompletionsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ChatServer).GetCompletionChunk(
		in, &grpc.GenericServerStream[GetCompletionsRequest, GetChatCompletionChunk]{ServerStream: stream},
	)
}

// ChatServiceDesc is the grpc.ServiceDesc of the Chat service.
var ChatServiceDesc = grpc.ServiceDesc{
	ServiceName: "xai_api.Chat",
	HandlerType: (*ChatServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCompletion", Handler: chatGetCompletionHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetCompletionChunk", Handler: chatGetCompletionChunkHandler, ServerStreams: true},
	},
	Metadata: "xai/api/v1/chat.proto",
}
