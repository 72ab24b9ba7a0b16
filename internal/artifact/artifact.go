package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
)

// Segment names of a component payload, in canonical order.
const (
	SegMarkup   = "markup"
	SegStyle    = "style"
	SegBehavior = "behavior"
)

// SegmentNames lists the three segments in canonical order.
func SegmentNames() []string { return []string{SegMarkup, SegStyle, SegBehavior} }

// Artifact is one generated component candidate. Raw holds the payload as it
// came back from the generation boundary (after fence stripping, before
// segment extraction); the validator re-parses Raw for its syntax phase, so an
// Artifact is constructible even from garbage output.
type Artifact struct {
	Markup   string
	Style    string
	Behavior string
	Raw      json.RawMessage
}

// payload is the wire shape the generation boundary is contracted to emit.
type payload struct {
	Markup   *string `json:"markup"`
	Style    *string `json:"style"`
	Behavior *string `json:"behavior"`
}

var reFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\n?|\\n?```$")

// StripFences removes a markdown code fence wrapping, if present. Models asked
// for raw JSON still wrap it in ```json fences often enough that the boundary
// cleans this up before handing the payload over.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	return strings.TrimSpace(reFence.ReplaceAllString(s, ""))
}

// FromRaw wraps a raw payload as an Artifact, extracting the three segments
// on a best-effort basis. It never fails: if the payload does not parse or
// lacks keys, the affected segments stay empty and the validator reports the
// problem from Raw.
func FromRaw(raw []byte) *Artifact {
	raw = []byte(StripFences(string(raw)))
	a := &Artifact{Raw: json.RawMessage(raw)}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return a
	}
	if p.Markup != nil {
		a.Markup = *p.Markup
	}
	if p.Style != nil {
		a.Style = *p.Style
	}
	if p.Behavior != nil {
		a.Behavior = *p.Behavior
	}
	return a
}

// Segment returns the named segment's text.
func (a *Artifact) Segment(name string) string {
	switch name {
	case SegMarkup:
		return a.Markup
	case SegStyle:
		return a.Style
	case SegBehavior:
		return a.Behavior
	}
	return ""
}

// Fingerprint is a stable content hash over Raw, suitable as a cache key.
func (a *Artifact) Fingerprint() string {
	sum := sha256.Sum256(a.Raw)
	return hex.EncodeToString(sum[:])
}

// MarshalJSON renders the extracted segments, not Raw, so callers printing a
// passing artifact get the canonical three-key shape.
func (a *Artifact) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		SegMarkup:   a.Markup,
		SegStyle:    a.Style,
		SegBehavior: a.Behavior,
	})
}
