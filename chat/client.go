//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package chat is the client of the xAI Chat service.
//
// The caller owns the gRPC connection, its TLS setup and its credentials.
// Messages use the JSON codec of package api unless WithContentSubtype picks
// another registered codec; the server must speak the same one. The public
// xAI endpoint only accepts protobuf, so reaching it needs a codec that maps
// these types onto the generated xai_api messages.
//
//	conn, _ := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
//	client := chat.NewClient(conn, chat.WithCallOptions(grpc.PerRPCCredentials(key)))
//	req := chat.NewRequest("grok-4", chat.WithMessages(chat.User("Hello")))
//	resp, err := client.StreamAndAssemble(ctx, req, stream.WithStdout())
package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/0xC0DE666/xai-sdk/api"
	"github.com/0xC0DE666/xai-sdk/chat/stream"
	itelemetry "github.com/0xC0DE666/xai-sdk/internal/telemetry"
)

// ErrEmptyStream is returned when a stream ends cleanly without any chunk.
var ErrEmptyStream = errors.New("chat: stream ended without chunks")

// errNilRequest is returned for a nil request.
var errNilRequest = errors.New("chat: nil request")

// Client calls the Chat service. It is safe for concurrent use.
type Client struct {
	chat api.ChatClient
	opts options
	inst *instruments
}

// NewClient returns a Client over conn.
func NewClient(conn grpc.ClientConnInterface, opts ...Option) *Client {
	o := newOptions(opts...)
	return &Client{
		chat: api.NewChatClient(conn, api.WithContentSubtype(o.contentSubtype)),
		opts: o,
		inst: newInstruments(o.meter, o.logger),
	}
}

// withRequestID attaches a fresh request id to the outgoing metadata.
func (c *Client) withRequestID(ctx context.Context) (context.Context, string) {
	id := c.opts.requestID()
	return metadata.AppendToOutgoingContext(ctx, RequestIDHeader, id), id
}

func (c *Client) startSpan(
	ctx context.Context,
	prefix string,
	req *api.GetCompletionsRequest,
	requestID string,
) (context.Context, trace.Span) {
	attrs := itelemetry.RequestAttributes(itelemetry.OperationChat, req)
	attrs = append(attrs, attribute.String(itelemetry.KeyRequestID, requestID))
	return c.opts.tracer.Start(ctx, itelemetry.NewSpanName(prefix, req.Model),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// Sample requests a complete, non-streamed response.
func (c *Client) Sample(ctx context.Context, req *api.GetCompletionsRequest) (*api.GetChatCompletionResponse, error) {
	if req == nil {
		return nil, errNilRequest
	}
	ctx, requestID := c.withRequestID(ctx)
	ctx, span := c.startSpan(ctx, itelemetry.SpanNamePrefixSample, req, requestID)
	defer span.End()

	start := time.Now()
	resp, err := c.chat.GetCompletion(ctx, req, c.opts.callOptions...)
	c.inst.recordRequest(ctx, "sample", req.Model, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("chat: sample %s: %w", req.Model, err)
	}
	span.SetAttributes(itelemetry.ResponseAttributes(resp)...)
	c.inst.recordUsage(ctx, req.Model, resp.Usage)
	return resp, nil
}

// Stream opens a completion stream. The returned Stream satisfies
// stream.ChunkStream and can be handed to stream.Process. Its span ends when
// Recv reports the end of the stream or an error, or when Close is called.
func (c *Client) Stream(ctx context.Context, req *api.GetCompletionsRequest) (*Stream, error) {
	if req == nil {
		return nil, errNilRequest
	}
	ctx, requestID := c.withRequestID(ctx)
	ctx, span := c.startSpan(ctx, itelemetry.SpanNamePrefixStream, req, requestID)
	ctx, cancel := context.WithCancel(ctx)

	start := time.Now()
	inner, err := c.chat.GetCompletionChunk(ctx, req, c.opts.callOptions...)
	if err != nil {
		cancel()
		c.inst.recordRequest(ctx, "stream", req.Model, time.Since(start), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, fmt.Errorf("chat: open stream %s: %w", req.Model, err)
	}
	c.opts.logger.Debugf("chat: stream %s opened for %s", requestID, req.Model)
	return &Stream{
		inner:     inner,
		ctx:       ctx,
		cancel:    cancel,
		span:      span,
		inst:      c.inst,
		logger:    c.opts.logger,
		model:     req.Model,
		requestID: requestID,
		start:     start,
	}, nil
}

// StreamAndAssemble streams a completion through consumer and returns the
// assembled response. consumer may be nil. Stream errors are returned as
// received from the server.
func (c *Client) StreamAndAssemble(
	ctx context.Context,
	req *api.GetCompletionsRequest,
	consumer *stream.Consumer,
) (*api.GetChatCompletionResponse, error) {
	s, err := c.Stream(ctx, req)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	chunks, err := stream.Process(ctx, s, consumer)
	if err != nil {
		return nil, err
	}
	resp, ok := stream.Assemble(chunks)
	if !ok {
		return nil, ErrEmptyStream
	}
	return resp, nil
}

// StreamBatch runs StreamAndAssemble for every request concurrently, at most
// WithBatchParallelism at a time. Each request gets its own processor and the
// consumer returned by newConsumer(i), which may be nil. Responses are in
// request order. The first error cancels the remaining streams and is returned.
func (c *Client) StreamBatch(
	ctx context.Context,
	reqs []*api.GetCompletionsRequest,
	newConsumer func(i int) *stream.Consumer,
) ([]*api.GetChatCompletionResponse, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	model := ""
	if reqs[0] != nil {
		model = reqs[0].Model
	}
	ctx, span := c.opts.tracer.Start(ctx, itelemetry.NewSpanName(itelemetry.SpanNamePrefixStreamBatch, model),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("xai.batch.size", len(reqs))),
	)
	defer span.End()

	pool, err := ants.NewPool(c.opts.batchParallelism)
	if err != nil {
		return nil, fmt.Errorf("chat: failed to create stream worker pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	responses := make([]*api.GetChatCompletionResponse, len(reqs))
	errCh := make(chan error, len(reqs))

	for i, req := range reqs {
		var consumer *stream.Consumer
		if newConsumer != nil {
			consumer = newConsumer(i)
		}
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			resp, err := c.StreamAndAssemble(ctx, req, consumer)
			if err != nil {
				errCh <- fmt.Errorf("chat: batch request %d: %w", i, err)
				cancel()
				return
			}
			responses[i] = resp
		})
		if err != nil {
			wg.Done()
			errCh <- fmt.Errorf("chat: failed to submit stream task: %w", err)
			cancel()
			break
		}
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return responses, nil
}
