//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package langfuse

// Langfuse-Trace attributes
const (
	traceUserID = "langfuse.user.id"

	// Langfuse-observation attributes
	observationType          = "langfuse.observation.type"
	observationLevel         = "langfuse.observation.level"
	observationStatusMessage = "langfuse.observation.status_message"

	// Langfuse-observation of type Generation attributes
	observationCompletionStartTime = "langfuse.observation.completion_start_time"
	observationModel               = "langfuse.observation.model.name"
	observationModelParameters     = "langfuse.observation.model.parameters"
	observationUsageDetails        = "langfuse.observation.usage_details"

	// General
	environment = "langfuse.environment"
	release     = "langfuse.release"
)

// observation types and levels.
const (
	typeGeneration = "generation"
	levelError     = "ERROR"
)
