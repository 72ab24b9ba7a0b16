package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"architect/internal/llmclient"
)

// TiersExhaustedError is returned when every tier in a fallback chain failed.
// Intermediate tier failures are swallowed; only this final error surfaces.
type TiersExhaustedError struct {
	Tried []string
	Last  error
}

func (e *TiersExhaustedError) Error() string {
	return fmt.Sprintf("llm: all tiers exhausted (%s): %v", strings.Join(e.Tried, ", "), e.Last)
}

func (e *TiersExhaustedError) Unwrap() error { return e.Last }

// FallbackChain tries an ordered list of tiers until one produces a payload.
// A tier failure is logged and the next tier is tried; content quality is not
// judged here, bad output flows through to the validator downstream.
type FallbackChain struct {
	tiers []llmclient.LLMClient
	log   *log.Logger
}

// NewFallbackChain builds a chain over the given tiers, in priority order.
// Pass nil for logger to use log.Default().
func NewFallbackChain(logger *log.Logger, tiers ...llmclient.LLMClient) (*FallbackChain, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("llm: fallback chain needs at least one tier")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &FallbackChain{tiers: tiers, log: logger}, nil
}

func (c *FallbackChain) Name() string {
	names := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		names[i] = t.Name()
	}
	return "Fallback(" + strings.Join(names, "->") + ")"
}

func (c *FallbackChain) Close() error {
	var first error
	for _, t := range c.tiers {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (c *FallbackChain) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	var last error
	tried := make([]string, 0, len(c.tiers))
	for _, tier := range c.tiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := tier.GenerateJSON(ctx, prompt, input)
		if err == nil {
			return raw, nil
		}
		c.log.Printf("tier %s failed: %v", tier.Name(), err)
		tried = append(tried, tier.Name())
		last = err
	}
	return nil, &TiersExhaustedError{Tried: tried, Last: last}
}
