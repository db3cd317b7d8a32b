//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package langfuse

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	atrace "github.com/0xC0DE666/xai-sdk/telemetry/trace"
)

// tracesPath is Langfuse's OTLP/HTTP ingestion path.
const tracesPath = "/api/public/otel/v1/traces"

// Start installs a tracer provider exporting to Langfuse and points
// telemetry/trace.Tracer at it. Options override the environment.
func Start(ctx context.Context, opts ...Option) (clean func() error, err error) {
	cfg := newConfigFromEnv()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.secretKey == "" || cfg.publicKey == "" || cfg.host == "" {
		return nil, errors.New("langfuse: secret key, public key and host must be provided")
	}

	httpOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.host),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": fmt.Sprintf("Basic %s", encodeAuth(cfg.publicKey, cfg.secretKey)),
		}),
		otlptracehttp.WithURLPath(tracesPath),
	}
	if cfg.insecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	next, err := otlptracehttp.New(ctx, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("langfuse: failed to create exporter: %w", err)
	}
	return start(ctx, next, cfg)
}

func start(ctx context.Context, next sdktrace.SpanExporter, cfg *config) (func() error, error) {
	return atrace.Start(ctx, atrace.WithSpanExporter(newExporter(next, cfg)))
}

// encodeAuth encodes the public and secret keys for basic authentication.
func encodeAuth(pk, sk string) string {
	auth := pk + ":" + sk
	return base64.StdEncoding.EncodeToString([]byte(auth))
}
