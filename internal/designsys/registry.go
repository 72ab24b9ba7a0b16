package designsys

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Token is a single design-system rule a generated component must satisfy.
// An artifact satisfies the token when any one of MatchPatterns occurs as a
// case-sensitive substring in any of its segments.
type Token struct {
	Name          string   `json:"name"`
	Mandatory     bool     `json:"mandatory"`
	MatchPatterns []string `json:"matchPattern"`
}

// Registry is the ordered, immutable set of design tokens for a run.
// Build it once via NewRegistry or Load and share it freely across runs.
type Registry struct {
	tokens []Token
	sum    string
}

// NewRegistry validates and freezes an ordered token list.
// Token names must be unique and non-empty; mandatory tokens must carry at
// least one pattern.
func NewRegistry(tokens []Token) (*Registry, error) {
	seen := make(map[string]struct{}, len(tokens))
	for i, t := range tokens {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("designsys: token %d has empty name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("designsys: duplicate token %q", name)
		}
		seen[name] = struct{}{}
		if t.Mandatory && len(nonEmpty(t.MatchPatterns)) == 0 {
			return nil, fmt.Errorf("designsys: mandatory token %q has no match patterns", name)
		}
	}
	cp := make([]Token, len(tokens))
	for i, t := range tokens {
		cp[i] = Token{
			Name:          strings.TrimSpace(t.Name),
			Mandatory:     t.Mandatory,
			MatchPatterns: nonEmpty(t.MatchPatterns),
		}
	}
	return &Registry{tokens: cp, sum: checksum(cp)}, nil
}

// Tokens returns the tokens in load order. The returned slice is a copy.
func (r *Registry) Tokens() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// Len reports the number of tokens.
func (r *Registry) Len() int { return len(r.tokens) }

// Lookup returns the token with the given name.
func (r *Registry) Lookup(name string) (Token, bool) {
	for _, t := range r.tokens {
		if t.Name == name {
			return t, true
		}
	}
	return Token{}, false
}

// Values maps each token name to its first pattern. Used by the offline stub
// tier to inject concrete token values into generated payloads.
func (r *Registry) Values() map[string]string {
	out := make(map[string]string, len(r.tokens))
	for _, t := range r.tokens {
		if len(t.MatchPatterns) > 0 {
			out[t.Name] = t.MatchPatterns[0]
		}
	}
	return out
}

// Checksum identifies the registry contents. Two registries with equal token
// lists share a checksum, which makes it usable as a cache-key component.
func (r *Registry) Checksum() string { return r.sum }

func checksum(tokens []Token) string {
	h := sha256.New()
	for _, t := range tokens {
		fmt.Fprintf(h, "%s\x00%t\x00", t.Name, t.Mandatory)
		for _, p := range t.MatchPatterns {
			fmt.Fprintf(h, "%s\x00", p)
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
