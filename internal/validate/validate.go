package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"architect/internal/artifact"
	"architect/internal/designsys"
)

// Validate inspects one candidate artifact against the design-token registry
// and returns a verdict. It is a pure function of its inputs.
//
// Validation runs in two ordered phases. Phase 1 checks that the raw payload
// is well-formed: it must parse as a JSON object carrying the three segment
// keys, and delimiters inside each segment must balance. Phase 2, reached
// only when phase 1 found nothing, checks that every mandatory token's
// pattern occurs somewhere in the segments. Token matching is a literal
// case-sensitive substring test; equivalent-but-reformatted values (for
// example a hex color in a different case) do not match.
func Validate(a *artifact.Artifact, reg *designsys.Registry) Verdict {
	findings := checkSyntax(a)
	if len(findings) == 0 {
		findings = append(findings, checkCompliance(a, reg)...)
	}
	return Verdict{Findings: findings}
}

// payloadShape mirrors the segment keys the generation boundary is contracted
// to emit. Pointers distinguish an absent key from an empty segment.
type payloadShape struct {
	Markup   *string `json:"markup"`
	Style    *string `json:"style"`
	Behavior *string `json:"behavior"`
}

func checkSyntax(a *artifact.Artifact) []Finding {
	var shape payloadShape
	if err := json.Unmarshal(a.Raw, &shape); err != nil {
		// A payload that does not parse is reported as a single atomic
		// failure; no further decoding is attempted this round.
		return []Finding{{
			Kind:    KindSyntaxError,
			Message: fmt.Sprintf("payload is not well-formed JSON: %v", err),
		}}
	}

	var findings []Finding
	present := map[string]*string{
		artifact.SegMarkup:   shape.Markup,
		artifact.SegStyle:    shape.Style,
		artifact.SegBehavior: shape.Behavior,
	}
	for _, seg := range artifact.SegmentNames() {
		if present[seg] == nil {
			findings = append(findings, Finding{
				Kind:     KindMalformedStructure,
				Message:  fmt.Sprintf("segment %q is missing from the payload", seg),
				Location: seg,
			})
			continue
		}
		var ok bool
		var detail string
		if seg == artifact.SegMarkup {
			ok, detail = balancedTags(*present[seg])
		} else {
			ok, detail = balancedDelims(*present[seg])
		}
		if !ok {
			findings = append(findings, Finding{
				Kind:     KindSyntaxError,
				Message:  detail,
				Location: seg,
			})
		}
	}
	return findings
}

func checkCompliance(a *artifact.Artifact, reg *designsys.Registry) []Finding {
	var findings []Finding
	for _, tok := range reg.Tokens() {
		if !tok.Mandatory {
			continue
		}
		if tokenSatisfied(a, tok) {
			continue
		}
		findings = append(findings, Finding{
			Kind: KindMissingToken,
			Message: fmt.Sprintf("design token %q is not used; expected one of %s to appear in the output",
				tok.Name, quoteList(tok.MatchPatterns)),
			Location: tok.Name,
		})
	}
	return findings
}

func tokenSatisfied(a *artifact.Artifact, tok designsys.Token) bool {
	for _, seg := range artifact.SegmentNames() {
		text := a.Segment(seg)
		for _, pat := range tok.MatchPatterns {
			if pat != "" && strings.Contains(text, pat) {
				return true
			}
		}
	}
	return false
}

func quoteList(pats []string) string {
	quoted := make([]string, len(pats))
	for i, p := range pats {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, ", ")
}
