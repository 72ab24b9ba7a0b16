package orchestrate

import (
	"fmt"
	"strings"

	"architect/internal/validate"
)

// RenderFeedback turns one attempt's findings into the corrective text handed
// back to the generation boundary: one imperative line per finding.
func RenderFeedback(findings []validate.Finding) string {
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, FeedbackLine(f))
	}
	return strings.Join(lines, "\n")
}

// FeedbackLine phrases a single finding as a fix instruction.
func FeedbackLine(f validate.Finding) string {
	switch f.Kind {
	case validate.KindMissingToken:
		return fmt.Sprintf("add design token %q: %s", f.Location, f.Message)
	case validate.KindMalformedStructure:
		return fmt.Sprintf("include the %q key in the JSON output", f.Location)
	case validate.KindSyntaxError:
		if f.Location == "" {
			return `return a single valid JSON object with the keys "markup", "style" and "behavior"; the previous output did not parse`
		}
		return fmt.Sprintf("fix the %s segment: %s", f.Location, f.Message)
	default:
		return f.Message
	}
}
