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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopm "go.opentelemetry.io/otel/metric/noop"
	"google.golang.org/grpc/status"

	"github.com/0xC0DE666/xai-sdk/api"
	itelemetry "github.com/0xC0DE666/xai-sdk/internal/telemetry"
	"github.com/0xC0DE666/xai-sdk/log"
)

type instruments struct {
	requests     metric.Int64Counter
	chunks       metric.Int64Counter
	tokens       metric.Int64Counter
	streamErrors metric.Int64Counter
	duration     metric.Float64Histogram
	firstChunk   metric.Float64Histogram
}

func newInstruments(m metric.Meter, logger log.Logger) *instruments {
	inst, err := buildInstruments(m)
	if err != nil {
		logger.Warnf("chat: metrics disabled: %v", err)
		inst, _ = buildInstruments(noopm.Meter{})
	}
	return inst
}

func buildInstruments(m metric.Meter) (*instruments, error) {
	var (
		inst instruments
		errs []error
		err  error
	)
	inst.requests, err = m.Int64Counter(itelemetry.MetricRequests,
		metric.WithDescription("Chat RPCs issued."))
	errs = append(errs, err)
	inst.chunks, err = m.Int64Counter(itelemetry.MetricChunks,
		metric.WithDescription("Chunks received on completion streams."))
	errs = append(errs, err)
	inst.tokens, err = m.Int64Counter(itelemetry.MetricTokens,
		metric.WithDescription("Tokens reported by the server."), metric.WithUnit("{token}"))
	errs = append(errs, err)
	inst.streamErrors, err = m.Int64Counter(itelemetry.MetricStreamErrors,
		metric.WithDescription("Completion streams that ended with an error."))
	errs = append(errs, err)
	inst.duration, err = m.Float64Histogram(itelemetry.MetricDuration,
		metric.WithDescription("Duration of chat RPCs."), metric.WithUnit("s"))
	errs = append(errs, err)
	inst.firstChunk, err = m.Float64Histogram(itelemetry.MetricFirstChunk,
		metric.WithDescription("Time until the first chunk of a stream."), metric.WithUnit("s"))
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (i *instruments) recordRequest(ctx context.Context, operation, model string, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String(itelemetry.KeyOperation, operation),
		attribute.String(itelemetry.KeyRequestModel, model),
		attribute.String("rpc.grpc.status_code", status.Code(err).String()),
	)
	i.requests.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed.Seconds(), attrs)
}

func (i *instruments) recordUsage(ctx context.Context, model string, u *api.SamplingUsage) {
	if u == nil {
		return
	}
	add := func(kind string, n int32) {
		if n <= 0 {
			return
		}
		i.tokens.Add(ctx, int64(n), metric.WithAttributes(
			attribute.String(itelemetry.KeyRequestModel, model),
			attribute.String(itelemetry.KeyTokenType, kind),
		))
	}
	add("input", u.PromptTokens)
	add("output", u.CompletionTokens)
	add("reasoning", u.ReasoningTokens)
}
