package orchestrate

import (
	"architect/internal/artifact"
	"architect/internal/validate"
)

// State is a position in the correction loop's state machine.
type State int

const (
	StateGenerating State = iota
	StateValidating
	StatePassed
	StateExhausted
	StateGenerationFailed
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateValidating:
		return "validating"
	case StatePassed:
		return "passed"
	case StateExhausted:
		return "exhausted"
	case StateGenerationFailed:
		return "generation_failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the loop.
func (s State) Terminal() bool {
	switch s {
	case StatePassed, StateExhausted, StateGenerationFailed:
		return true
	default:
		return false
	}
}

// RunState is the mutable state of one loop invocation. Each Run call owns
// its own RunState exclusively, so independent runs never share anything
// mutable; only the immutable registry is shared.
type RunState struct {
	State        State
	Attempt      int
	MaxAttempts  int
	LastArtifact *artifact.Artifact
	LastVerdict  validate.Verdict
	// FeedbackLog accumulates every finding across attempts. Retry prompts
	// render only the current attempt's findings; the full log backs the
	// exhaustion report.
	FeedbackLog []validate.Finding
}

// RunResult is the terminal outcome of one Run call.
type RunResult struct {
	Outcome State
	// Artifact is the passing candidate on StatePassed, the last rejected
	// candidate on StateExhausted, nil on StateGenerationFailed.
	Artifact *artifact.Artifact
	// Attempts is the number of generate/validate cycles completed. Zero when
	// generation failed before any candidate was validated.
	Attempts     int
	FinalVerdict validate.Verdict
	FeedbackLog  []validate.Finding
}

// EventType tags a progress event.
type EventType int

const (
	EventAttempt EventType = iota
	EventGenerated
	EventVerdict
	EventRetrying
)

// Event is one progress notification emitted during a run.
type Event struct {
	Type    EventType
	Attempt int
	Verdict validate.Verdict
	Message string
}
