//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	itelemetry "github.com/0xC0DE666/xai-sdk/internal/telemetry"
)

// TestMetricsEndpoint validates metrics endpoint precedence rules.
func TestMetricsEndpoint(t *testing.T) {
	const (
		customEndpoint  = "custom-metric:4317"
		genericEndpoint = "generic-endpoint:4317"
	)

	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", customEndpoint)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", genericEndpoint)
	if ep := metricsEndpoint(itelemetry.ProtocolGRPC); ep != customEndpoint {
		t.Fatalf("expected %s, got %s", customEndpoint, ep)
	}

	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")
	if ep := metricsEndpoint(itelemetry.ProtocolGRPC); ep != genericEndpoint {
		t.Fatalf("expected %s, got %s", genericEndpoint, ep)
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	if ep := metricsEndpoint(itelemetry.ProtocolGRPC); ep != "localhost:4317" {
		t.Fatalf("expected grpc default endpoint, got %s", ep)
	}
	if ep := metricsEndpoint(itelemetry.ProtocolHTTP); ep != "localhost:4318" {
		t.Fatalf("expected http default endpoint, got %s", ep)
	}
}

func TestStartWithReader(t *testing.T) {
	old := Meter
	defer func() { Meter = old }()

	reader := sdkmetric.NewManualReader()
	clean, err := Start(context.Background(), WithReader(reader))
	require.NoError(t, err)
	defer func() { _ = clean() }()

	counter, err := Meter.Int64Counter("xai.chat.requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, "xai.chat.requests", m.Name)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

// TestStartAndClean exercises the happy-path of Start against an absent collector.
func TestStartAndClean(t *testing.T) {
	old := Meter
	defer func() { Meter = old }()

	// The deadline bounds the final export to the absent collector.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	clean, err := Start(ctx, WithEndpoint("localhost:4317"))
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if clean == nil {
		t.Fatalf("expected non-nil cleanup function")
	}
	_ = clean() // Ignore cleanup error as no collector is running in tests.
}

func TestStartAndCleanHTTP(t *testing.T) {
	old := Meter
	defer func() { Meter = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	clean, err := Start(ctx, WithProtocol(itelemetry.ProtocolHTTP), WithEndpoint("localhost:4318"))
	require.NoError(t, err)
	require.NotNil(t, clean)
	_ = clean()
}
