package orchestrate

import (
	"context"
	"fmt"

	"architect/internal/artifact"
	"architect/internal/designsys"
	"architect/internal/validate"
)

// DefaultMaxAttempts bounds the loop when the caller does not configure one.
const DefaultMaxAttempts = 3

// Generator is the generation boundary: an opaque producer of candidate
// artifacts. feedback carries the rendered findings of the previous attempt,
// empty on the first call. A non-nil error means the boundary could not
// produce any candidate at all; bad content must come back as an Artifact
// that then fails validation, not as an error.
type Generator interface {
	Generate(ctx context.Context, task string, feedback string) (*artifact.Artifact, error)
}

// ValidateFunc validates one candidate. It exists so callers can swap in a
// memoizing wrapper; the default is validate.Validate.
type ValidateFunc func(*artifact.Artifact, *designsys.Registry) validate.Verdict

// Loop drives generate/validate cycles until a candidate passes or the
// attempt budget runs out.
type Loop struct {
	Generator   Generator
	Registry    *designsys.Registry
	MaxAttempts int
	// Validate defaults to validate.Validate when nil.
	Validate ValidateFunc
	// OnEvent, when set, receives progress notifications. It is called
	// synchronously from Run.
	OnEvent func(Event)
}

// Run executes the correction loop for one task description.
//
// The loop terminates in exactly one of three terminal states:
//   - StatePassed: a candidate validated cleanly; err is nil.
//   - StateExhausted: MaxAttempts candidates all failed validation; err is
//     nil and the result carries the final verdict plus the full finding
//     history.
//   - StateGenerationFailed: the generation boundary returned an error; err
//     wraps it. Validation findings never surface as errors.
func (l *Loop) Run(ctx context.Context, task string) (RunResult, error) {
	if l.Generator == nil {
		return RunResult{Outcome: StateGenerationFailed}, fmt.Errorf("orchestrate: generator is nil")
	}
	if l.Registry == nil {
		return RunResult{Outcome: StateGenerationFailed}, fmt.Errorf("orchestrate: registry is nil")
	}
	validateFn := l.Validate
	if validateFn == nil {
		validateFn = validate.Validate
	}
	max := l.MaxAttempts
	if max <= 0 {
		max = DefaultMaxAttempts
	}

	st := &RunState{State: StateGenerating, Attempt: 1, MaxAttempts: max}
	feedback := ""
	for {
		l.emit(Event{Type: EventAttempt, Attempt: st.Attempt,
			Message: fmt.Sprintf("attempt %d/%d", st.Attempt, st.MaxAttempts)})

		a, err := l.Generator.Generate(ctx, task, feedback)
		if err != nil {
			st.State = StateGenerationFailed
			return RunResult{
				Outcome:     StateGenerationFailed,
				Attempts:    st.Attempt - 1,
				FeedbackLog: st.FeedbackLog,
			}, fmt.Errorf("orchestrate: generation failed on attempt %d: %w", st.Attempt, err)
		}
		st.State = StateValidating
		st.LastArtifact = a
		l.emit(Event{Type: EventGenerated, Attempt: st.Attempt, Message: "candidate generated"})

		v := validateFn(a, l.Registry)
		st.LastVerdict = v
		l.emit(Event{Type: EventVerdict, Attempt: st.Attempt, Verdict: v})

		if v.Pass() {
			st.State = StatePassed
			return RunResult{
				Outcome:      StatePassed,
				Artifact:     a,
				Attempts:     st.Attempt,
				FinalVerdict: v,
				FeedbackLog:  st.FeedbackLog,
			}, nil
		}

		st.FeedbackLog = append(st.FeedbackLog, v.Findings...)
		if st.Attempt == st.MaxAttempts {
			st.State = StateExhausted
			return RunResult{
				Outcome:      StateExhausted,
				Artifact:     a,
				Attempts:     st.Attempt,
				FinalVerdict: v,
				FeedbackLog:  st.FeedbackLog,
			}, nil
		}

		// Only the current attempt's findings go back to the generator, so
		// the retry prompt stays bounded no matter how many attempts passed.
		feedback = RenderFeedback(v.Findings)
		st.Attempt++
		st.State = StateGenerating
		l.emit(Event{Type: EventRetrying, Attempt: st.Attempt, Message: "re-prompting with correction feedback"})
	}
}

func (l *Loop) emit(e Event) {
	if l.OnEvent != nil {
		l.OnEvent(e)
	}
}
