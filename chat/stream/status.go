//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package stream

import (
	"fmt"

	"github.com/0xC0DE666/xai-sdk/api"
)

// PhaseStatus is the lifecycle state of the reasoning or content phase of one output.
type PhaseStatus int

// PhaseStatus values.
const (
	// PhaseInit means the phase has not started.
	PhaseInit PhaseStatus = iota
	// PhasePending means tokens of the phase are arriving.
	PhasePending
	// PhaseComplete means the phase is over. It never regresses within a stream.
	PhaseComplete
)

// String implements fmt.Stringer.
func (s PhaseStatus) String() string {
	switch s {
	case PhaseInit:
		return "init"
	case PhasePending:
		return "pending"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("PhaseStatus(%d)", int(s))
	}
}

// ClassifyPhases returns the reasoning and content status of an output from
// the number of reasoning and content tokens seen so far and its latest
// finish reason.
//
// A finished output is complete in both phases, even if it produced no tokens.
// Otherwise reasoning is complete once content arrived without any reasoning,
// pending while only reasoning has arrived, and init in every other case.
// Content is pending as soon as one content token arrived.
//
// ClassifyPhases has no memory. Process keeps the status of each output
// monotonic, so a phase that reached PhaseComplete stays there.
func ClassifyPhases(reasoningTokens, contentTokens int, finish api.FinishReason) (reasoning, content PhaseStatus) {
	if finish.IsFinished() {
		return PhaseComplete, PhaseComplete
	}

	switch {
	case reasoningTokens == 0 && contentTokens > 0:
		reasoning = PhaseComplete
	case reasoningTokens > 0 && contentTokens == 0:
		reasoning = PhasePending
	default:
		reasoning = PhaseInit
	}

	if contentTokens > 0 {
		content = PhasePending
	} else {
		content = PhaseInit
	}
	return reasoning, content
}

// latch never lets a phase move backwards.
func latch(prev, next PhaseStatus) PhaseStatus {
	return max(prev, next)
}
