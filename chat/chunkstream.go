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
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/0xC0DE666/xai-sdk/api"
	itelemetry "github.com/0xC0DE666/xai-sdk/internal/telemetry"
	"github.com/0xC0DE666/xai-sdk/log"
)

// Stream is an open completion stream. Recv returns chunks until io.EOF or
// the first stream error, which is passed through unchanged.
type Stream struct {
	inner     grpc.ServerStreamingClient[api.GetChatCompletionChunk]
	ctx       context.Context
	cancel    context.CancelFunc
	span      trace.Span
	inst      *instruments
	logger    log.Logger
	model     string
	requestID string
	start     time.Time

	chunks   int
	last     *api.GetChatCompletionChunk
	finishes map[int32]api.FinishReason
	endOnce  sync.Once
}

// Recv returns the next chunk.
func (s *Stream) Recv() (*api.GetChatCompletionChunk, error) {
	chunk, err := s.inner.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.end(nil)
		} else {
			s.end(err)
		}
		return nil, err
	}
	s.observe(chunk)
	return chunk, nil
}

// RequestID returns the x-request-id sent with the stream.
func (s *Stream) RequestID() string {
	return s.requestID
}

// Close cancels the stream and ends its span if Recv has not already done so.
func (s *Stream) Close() error {
	s.end(context.Canceled)
	s.cancel()
	return nil
}

func (s *Stream) observe(chunk *api.GetChatCompletionChunk) {
	if s.chunks == 0 {
		now := time.Now()
		s.inst.firstChunk.Record(s.ctx, now.Sub(s.start).Seconds(),
			metric.WithAttributes(attribute.String(itelemetry.KeyRequestModel, s.model)))
		s.span.SetAttributes(attribute.String(itelemetry.KeyFirstChunkAt, now.UTC().Format(time.RFC3339Nano)))
	}
	s.chunks++
	s.inst.chunks.Add(s.ctx, 1,
		metric.WithAttributes(attribute.String(itelemetry.KeyRequestModel, s.model)))
	if chunk == nil {
		return
	}
	s.last = chunk
	for _, out := range chunk.Outputs {
		if out == nil || out.FinishReason == api.FinishReasonInvalid {
			continue
		}
		if s.finishes == nil {
			s.finishes = make(map[int32]api.FinishReason)
		}
		s.finishes[out.Index] = out.FinishReason
	}
}

// end closes the span exactly once. A nil err marks a clean end.
func (s *Stream) end(err error) {
	s.endOnce.Do(func() {
		defer s.span.End()
		elapsed := time.Since(s.start)
		s.span.SetAttributes(attribute.Int(itelemetry.KeyChunkCount, s.chunks))

		if err != nil {
			if errors.Is(err, context.Canceled) && s.ctx.Err() == nil {
				// Closed by the caller before the stream finished.
				s.span.SetAttributes(attribute.Bool("xai.stream.abandoned", true))
				s.inst.recordRequest(s.ctx, "stream", s.model, elapsed, err)
				return
			}
			s.span.RecordError(err)
			s.span.SetStatus(codes.Error, err.Error())
			s.inst.streamErrors.Add(s.ctx, 1,
				metric.WithAttributes(attribute.String(itelemetry.KeyRequestModel, s.model)))
			s.inst.recordRequest(s.ctx, "stream", s.model, elapsed, err)
			s.logger.Warnf("chat: stream %s failed after %d chunks: %v", s.requestID, s.chunks, err)
			return
		}

		if s.last != nil {
			s.span.SetAttributes(
				attribute.String(itelemetry.KeyResponseID, s.last.ID),
				attribute.String(itelemetry.KeyResponseModel, s.last.Model),
			)
			if s.last.Usage != nil {
				s.span.SetAttributes(itelemetry.UsageAttributes(s.last.Usage)...)
				s.inst.recordUsage(s.ctx, s.model, s.last.Usage)
			}
		}
		if reasons := s.finishReasons(); len(reasons) > 0 {
			s.span.SetAttributes(attribute.StringSlice(itelemetry.KeyFinishReasons, reasons))
		}
		s.inst.recordRequest(s.ctx, "stream", s.model, elapsed, nil)
		s.logger.Debugf("chat: stream %s done: %d chunks in %s", s.requestID, s.chunks, elapsed)
	})
}

// finishReasons lists the final reason per output index, in index order.
func (s *Stream) finishReasons() []string {
	if len(s.finishes) == 0 {
		return nil
	}
	var maxIndex int32
	for i := range s.finishes {
		maxIndex = max(maxIndex, i)
	}
	reasons := make([]string, 0, len(s.finishes))
	for i := int32(0); i <= maxIndex; i++ {
		if r, ok := s.finishes[i]; ok {
			reasons = append(reasons, r.String())
		}
	}
	return reasons
}
