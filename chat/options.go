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
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/0xC0DE666/xai-sdk/api"
	"github.com/0xC0DE666/xai-sdk/log"
	imetric "github.com/0xC0DE666/xai-sdk/telemetry/metric"
	itrace "github.com/0xC0DE666/xai-sdk/telemetry/trace"
)

const (
	// RequestIDHeader is the metadata key carrying the client generated request id.
	RequestIDHeader = "x-request-id"

	defaultBatchParallelism = 4
)

// Option configures a Client.
type Option func(*options)

type options struct {
	callOptions      []grpc.CallOption
	contentSubtype   string
	tracer           trace.Tracer
	meter            metric.Meter
	logger           log.Logger
	requestID        func() string
	batchParallelism int
}

func newOptions(opts ...Option) options {
	o := options{
		contentSubtype:   api.CodecName,
		tracer:           itrace.Tracer,
		meter:            imetric.Meter,
		logger:           log.Default,
		requestID:        uuid.NewString,
		batchParallelism: defaultBatchParallelism,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCallOptions appends grpc call options to every RPC, e.g. per-RPC
// credentials or a max receive size.
func WithCallOptions(opts ...grpc.CallOption) Option {
	return func(o *options) {
		o.callOptions = append(o.callOptions, opts...)
	}
}

// WithContentSubtype selects the gRPC codec by content subtype. Defaults to
// api.CodecName, the JSON codec. The server must accept the same subtype.
func WithContentSubtype(name string) Option {
	return func(o *options) {
		o.contentSubtype = name
	}
}

// WithTracer sets the tracer. Defaults to the tracer installed by telemetry/trace.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithMeter sets the meter. Defaults to the meter installed by telemetry/metric.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

// WithLogger sets the logger. Defaults to log.Default.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRequestIDFunc sets the generator of the x-request-id header.
// Defaults to random UUIDs.
func WithRequestIDFunc(f func() string) Option {
	return func(o *options) {
		o.requestID = f
	}
}

// WithBatchParallelism bounds how many streams StreamBatch runs at once.
func WithBatchParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchParallelism = n
		}
	}
}
