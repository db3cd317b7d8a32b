//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package langfuse exports the chat client's spans to Langfuse, turning
// completion spans into Langfuse generations with model, parameters, usage
// and time to first token.
package langfuse

import "os"

// Option is a function that configures Start options.
type Option func(*config)

// WithSecretKey sets the Langfuse secret key.
func WithSecretKey(secretKey string) Option {
	return func(cfg *config) {
		cfg.secretKey = secretKey
	}
}

// WithPublicKey sets the Langfuse public key.
func WithPublicKey(publicKey string) Option {
	return func(cfg *config) {
		cfg.publicKey = publicKey
	}
}

// WithHost sets the Langfuse host in "hostname:port" format, without scheme
// or path, e.g. "cloud.langfuse.com:443" or "localhost:3000".
func WithHost(host string) Option {
	return func(cfg *config) {
		cfg.host = host
	}
}

// WithInsecure exports over plain http. Use it for a local Langfuse only.
func WithInsecure() Option {
	return func(cfg *config) {
		cfg.insecure = true
	}
}

// WithEnvironment tags every exported span with a Langfuse environment,
// e.g. "production".
func WithEnvironment(env string) Option {
	return func(cfg *config) {
		cfg.environment = env
	}
}

// WithRelease tags every exported span with the caller's release.
func WithRelease(rel string) Option {
	return func(cfg *config) {
		cfg.release = rel
	}
}

type config struct {
	secretKey   string
	publicKey   string
	host        string
	insecure    bool
	environment string
	release     string
}

// newConfigFromEnv reads LANGFUSE_SECRET_KEY, LANGFUSE_PUBLIC_KEY,
// LANGFUSE_HOST, LANGFUSE_INSECURE ("true" to enable), LANGFUSE_TRACING_ENVIRONMENT
// and LANGFUSE_RELEASE.
func newConfigFromEnv() *config {
	return &config{
		secretKey:   getEnv("LANGFUSE_SECRET_KEY", ""),
		publicKey:   getEnv("LANGFUSE_PUBLIC_KEY", ""),
		host:        getEnv("LANGFUSE_HOST", ""),
		insecure:    getEnv("LANGFUSE_INSECURE", "") == "true",
		environment: getEnv("LANGFUSE_TRACING_ENVIRONMENT", ""),
		release:     getEnv("LANGFUSE_RELEASE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
