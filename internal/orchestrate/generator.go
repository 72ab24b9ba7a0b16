package orchestrate

import (
	"context"
	"strings"

	"architect/internal/artifact"
	"architect/internal/designsys"
	"architect/internal/llmclient"
	"architect/internal/prompt"
)

// LLMGenerator adapts an LLM client (typically a fallback chain) to the
// Generator boundary. It builds the token-injected prompt, calls the client
// and wraps whatever comes back as an Artifact. Client errors pass through
// unwrapped so the loop can tell boundary failure from bad content.
type LLMGenerator struct {
	Client   llmclient.LLMClient
	Registry *designsys.Registry
}

type generateInput struct {
	Description string `json:"description"`
	Feedback    string `json:"feedback,omitempty"`
}

func (g *LLMGenerator) Generate(ctx context.Context, task string, feedback string) (*artifact.Artifact, error) {
	var lines []string
	if feedback != "" {
		lines = strings.Split(feedback, "\n")
	}
	p, err := prompt.Build(prompt.Spec{Task: task, Registry: g.Registry, Feedback: lines})
	if err != nil {
		return nil, err
	}
	raw, err := g.Client.GenerateJSON(ctx, p, generateInput{Description: task, Feedback: feedback})
	if err != nil {
		return nil, err
	}
	return artifact.FromRaw(raw), nil
}
