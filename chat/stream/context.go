//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package stream

// OutputContext describes the output a callback is invoked for.
// A fresh value is built for every invocation.
type OutputContext struct {
	// TotalOutputs is the highest output index seen so far plus one.
	TotalOutputs int
	// OutputIndex is the index of the current output.
	OutputIndex int
	// ReasoningStatus is the reasoning phase status of the current output.
	ReasoningStatus PhaseStatus
	// ContentStatus is the content phase status of the current output.
	ContentStatus PhaseStatus
}

// NewOutputContext builds an OutputContext.
func NewOutputContext(totalOutputs, outputIndex int, reasoning, content PhaseStatus) OutputContext {
	return OutputContext{
		TotalOutputs:    totalOutputs,
		OutputIndex:     outputIndex,
		ReasoningStatus: reasoning,
		ContentStatus:   content,
	}
}
