package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"architect/internal/designsys"
)

// Spec holds the pieces assembled into one generation prompt.
type Spec struct {
	Task     string
	Registry *designsys.Registry
	// Feedback lists imperative correction lines from the previous attempt.
	// Empty on the first attempt.
	Feedback []string
}

// Build renders the sectioned generation prompt. The design tokens are
// injected as a JSON block so the model sees the exact values the validator
// will look for.
func Build(spec Spec) (string, error) {
	if strings.TrimSpace(spec.Task) == "" {
		return "", fmt.Errorf("prompt: task description is empty")
	}
	if spec.Registry == nil {
		return "", fmt.Errorf("prompt: registry is nil")
	}

	var buf bytes.Buffer
	writeSection(&buf, "TASK", "Generate a web component that fulfils the user request below. "+
		"The component is described by three text segments: markup (HTML template), "+
		"style (CSS) and behavior (component class source).")
	writeSection(&buf, "USER_REQUEST", spec.Task)
	writeSection(&buf, "DESIGN_TOKENS", formatTokens(spec.Registry))
	writeSection(&buf, "CONSTRAINTS", formatList([]string{
		"Use the exact token values listed under DESIGN_TOKENS; every mandatory token must appear verbatim in the output.",
		"All brackets, braces, parentheses and HTML tags must balance in every segment.",
		"Use static placeholder text instead of template interpolation so the markup previews standalone.",
	}))
	if len(spec.Feedback) > 0 {
		writeSection(&buf, "ERRORS", "The previous component had problems. Fix every one of them:\n"+formatList(spec.Feedback))
	}
	writeSection(&buf, "OUTPUT_FORMAT", `A single JSON object with exactly these keys:
- "markup" (string, required): the HTML template
- "style" (string, required, may be empty): extra CSS
- "behavior" (string, required): the component class source
No markdown, no code fences, no explanation. Raw JSON only.`)

	return strings.TrimSpace(buf.String()) + "\n", nil
}

func formatTokens(reg *designsys.Registry) string {
	type entry struct {
		Name      string   `json:"name"`
		Mandatory bool     `json:"mandatory"`
		Values    []string `json:"values"`
	}
	entries := make([]entry, 0, reg.Len())
	for _, t := range reg.Tokens() {
		entries = append(entries, entry{Name: t.Name, Mandatory: t.Mandatory, Values: t.MatchPatterns})
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(entries)
	return strings.TrimRight(buf.String(), "\n")
}

func formatList(items []string) string {
	var buf strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&buf, "- %s\n", item)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	fmt.Fprintf(buf, "[%s]\n%s\n\n", title, body)
}
