package designsys

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads an ordered token list from a JSON file:
//
//	[{"name": "primary-color", "mandatory": true, "matchPattern": ["#6366f1"]}, ...]
//
// The file is read once; the returned Registry is immutable.
func Load(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("designsys: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a JSON token list and freezes it into a Registry.
func Parse(raw []byte) (*Registry, error) {
	var tokens []Token
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, fmt.Errorf("designsys: decode token list: %w", err)
	}
	return NewRegistry(tokens)
}

// Default returns the built-in registry used when no token file is supplied.
// Values mirror the stock design-system shipped with the CLI.
func Default() *Registry {
	reg, err := NewRegistry([]Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#6366f1"}},
		{Name: "border-radius", Mandatory: true, MatchPatterns: []string{"8px"}},
		{Name: "font-family", Mandatory: false, MatchPatterns: []string{"Inter"}},
		{Name: "glass-background", Mandatory: false, MatchPatterns: []string{"rgba(255,255,255,0.1)"}},
	})
	if err != nil {
		panic(err)
	}
	return reg
}

// LoadOrDefault loads a registry from path, falling back to the built-in
// registry when path is empty.
func LoadOrDefault(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
