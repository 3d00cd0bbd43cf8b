package genset

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/gauntlet/internal/llm"
)

// Generator produces composed challenge sets using an LLM provider.
type Generator interface {
	// GenerateSet produces the canonical ordered set for the given input.
	// The result has exactly TotalItems candidates; the slice position
	// (1-based) is the item index to persist.
	GenerateSet(ctx context.Context, input GenerateInput) ([]Candidate, error)
}

// LLMGenerator implements Generator using the LLM provider, retrying the
// full generate-validate-compose cycle up to Config.MaxAttempts times
// with the same request. Generation is pure with respect to the store;
// persistence is the caller's job.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) GenerateSet(ctx context.Context, input GenerateInput) ([]Candidate, error) {
	ctx = llm.WithPurpose(ctx, "set-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		items, err := g.generateOnce(ctx, req, input)
		if err == nil {
			return items, nil
		}
		lastErr = err
		fmt.Fprintf(os.Stderr, "warning: set generation attempt %d/%d for tier %s failed: %v\n",
			attempt, attempts, input.Tier, err)
	}
	return nil, lastErr
}

func (g *LLMGenerator) generateOnce(ctx context.Context, req llm.Request, input GenerateInput) ([]Candidate, error) {
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	// The request carries no schema, so Content is the model's raw text;
	// all enforcement happens client-side in ValidateCandidates.
	cands, err := ValidateCandidates(string(resp.Content), input.Mentors)
	if err != nil {
		return nil, err
	}
	return Compose(input.Tier, cands, input.Mentors)
}
