package llmclient

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrEmptyResponse is returned when a provider answers with no usable content.
var ErrEmptyResponse = errors.New("llmclient: empty response from provider")

// LLMClient is one generation tier. GenerateJSON returns the provider's text
// payload as-is: clients do not judge whether the content is valid JSON, the
// validator owns that. A non-nil error means the tier itself failed and the
// caller may move on to the next one.
type LLMClient interface {
	Name() string
	Close() error
	GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error)
}

// PermanentError indicates a tier failure that will not resolve with retries,
// such as a request the provider rejects outright.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
