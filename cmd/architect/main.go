package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"architect/internal/designsys"
	"architect/internal/llm"
	"architect/internal/llmclient"
	"architect/internal/orchestrate"
	"architect/internal/validate"
)

func main() {
	desc := flag.String("desc", "", "natural-language component description")
	tokensPath := flag.String("tokens", "", "path to the design-token registry JSON (built-in defaults when empty)")
	attempts := flag.Int("attempts", orchestrate.DefaultMaxAttempts, "maximum generate/validate attempts")
	geminiModel := flag.String("gemini-model", "gemini-2.5-flash", "Gemini model id")
	groqModel := flag.String("groq-model", "llama-3.3-70b-versatile", "Groq model id")
	openaiModel := flag.String("openai-model", "gpt-4o", "OpenAI model id")
	offline := flag.Bool("offline", false, "skip remote providers and use the offline stub only")
	out := flag.String("out", "", "write the passing payload to this file instead of stdout")
	flag.Parse()
	if *desc == "" {
		log.Fatal("-desc is required")
	}

	_ = godotenv.Load()

	reg, err := designsys.LoadOrDefault(*tokensPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	chain, err := buildChain(ctx, reg, *offline, *geminiModel, *groqModel, *openaiModel)
	if err != nil {
		log.Fatal(err)
	}
	defer chain.Close()

	cache, err := validate.NewCache(64)
	if err != nil {
		log.Fatal(err)
	}

	loop := &orchestrate.Loop{
		Generator:   &orchestrate.LLMGenerator{Client: chain, Registry: reg},
		Registry:    reg,
		MaxAttempts: *attempts,
		Validate:    cache.Validate,
		OnEvent:     printEvent,
	}

	res, err := loop.Run(ctx, *desc)
	if err != nil {
		log.Fatalf("generation failed after %d completed attempts: %v", res.Attempts, err)
	}

	switch res.Outcome {
	case orchestrate.StatePassed:
		log.Printf("validation passed on attempt %d", res.Attempts)
		b, _ := json.MarshalIndent(res.Artifact, "", "  ")
		if *out != "" {
			if err := os.WriteFile(*out, append(b, '\n'), 0o644); err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %s", *out)
		} else {
			fmt.Println(string(b))
		}
	case orchestrate.StateExhausted:
		log.Printf("gave up after %d attempts; problems seen across the run:", res.Attempts)
		for _, f := range res.FeedbackLog {
			log.Printf("  - %s", f)
		}
		os.Exit(1)
	}
}

func buildChain(ctx context.Context, reg *designsys.Registry, offline bool, geminiModel, groqModel, openaiModel string) (llmclient.LLMClient, error) {
	stub := llmclient.NewStubClient(reg.Values())
	if offline {
		return stub, nil
	}

	var tiers []llmclient.LLMClient
	if os.Getenv("GEMINI_API_KEY") != "" {
		g, err := llmclient.NewGeminiClient(ctx, geminiModel)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, llm.Wrap(g, llm.WithLogging(nil), llm.Retry(2, 0)))
	}
	if os.Getenv("GROQ_API_KEY") != "" {
		g, err := llmclient.NewGroqClient("", groqModel)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, llm.Wrap(g, llm.WithLogging(nil), llm.Retry(2, 0)))
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		o, err := llmclient.NewOpenAIClient("", openaiModel)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, llm.Wrap(o, llm.WithLogging(nil), llm.Retry(2, 0)))
	}
	if len(tiers) == 0 {
		log.Print("no provider API key configured, using the offline stub")
	}
	tiers = append(tiers, stub)
	return llm.NewFallbackChain(nil, tiers...)
}

func printEvent(e orchestrate.Event) {
	switch e.Type {
	case orchestrate.EventAttempt:
		log.Printf("=== %s ===", e.Message)
	case orchestrate.EventGenerated:
		log.Printf("candidate generated, validating")
	case orchestrate.EventVerdict:
		if e.Verdict.Pass() {
			return
		}
		log.Printf("found %d issue(s):", len(e.Verdict.Findings))
		for _, f := range e.Verdict.Findings {
			log.Printf("  - %s", f)
		}
	case orchestrate.EventRetrying:
		log.Printf("%s", e.Message)
	}
}
