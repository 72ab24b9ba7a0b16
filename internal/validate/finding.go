package validate

import "fmt"

// Kind classifies a validation finding.
type Kind string

const (
	// KindSyntaxError marks a payload that is not well-formed: unparseable
	// raw output or unbalanced delimiters inside a segment.
	KindSyntaxError Kind = "syntax_error"
	// KindMalformedStructure marks a parseable payload with the wrong shape,
	// such as a missing segment key.
	KindMalformedStructure Kind = "malformed_structure"
	// KindMissingToken marks a structurally sound payload that does not use a
	// mandatory design token.
	KindMissingToken Kind = "missing_token"
)

// Finding is one detected validation problem. Location names the affected
// segment when the problem is segment-local, and the token name for
// missing-token findings.
type Finding struct {
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

func (f Finding) String() string {
	if f.Location != "" {
		return fmt.Sprintf("[%s] %s: %s", f.Kind, f.Location, f.Message)
	}
	return fmt.Sprintf("[%s] %s", f.Kind, f.Message)
}

// Verdict is the outcome of one validation call. A zero-finding verdict is a
// pass; otherwise Findings holds every problem in detection order, syntax and
// structure findings before token-compliance findings.
type Verdict struct {
	Findings []Finding `json:"findings,omitempty"`
}

// Pass reports whether validation found no problems.
func (v Verdict) Pass() bool { return len(v.Findings) == 0 }
