package orchestrate

import (
	"strings"
	"testing"

	"architect/internal/validate"
)

func TestRenderFeedback_OneLinePerFinding(t *testing.T) {
	findings := []validate.Finding{
		{Kind: validate.KindSyntaxError, Message: "unclosed tag <div>", Location: "markup"},
		{Kind: validate.KindMissingToken, Message: `design token "primary-color" is not used; expected one of "#6366f1" to appear in the output`, Location: "primary-color"},
	}
	out := RenderFeedback(findings)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "fix the markup segment") {
		t.Errorf("syntax line not imperative: %q", lines[0])
	}
	if !strings.Contains(lines[1], `add design token "primary-color"`) {
		t.Errorf("token line not imperative: %q", lines[1])
	}
}

func TestFeedbackLine_ParseFailureAsksForCleanJSON(t *testing.T) {
	line := FeedbackLine(validate.Finding{Kind: validate.KindSyntaxError, Message: "payload is not well-formed JSON: ..."})
	if !strings.Contains(line, "valid JSON object") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestFeedbackLine_MissingSegment(t *testing.T) {
	line := FeedbackLine(validate.Finding{Kind: validate.KindMalformedStructure, Location: "style"})
	if !strings.Contains(line, `"style"`) {
		t.Fatalf("unexpected line: %q", line)
	}
}
