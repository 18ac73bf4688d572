package summarize

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/video-summarizer/internal/llm"
	"github.com/jonathan/video-summarizer/internal/prompts"
)

// LLMGenerator implements Generator on top of an llm.Client.
type LLMGenerator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMGenerator creates a generator using the lite model tier; plain
// transcript summarization does not need a reasoning-heavy model.
func NewLLMGenerator(client llm.Client) *LLMGenerator {
	return &LLMGenerator{client: client, tier: llm.TierLite}
}

// WithTier returns a copy of the generator using a different model tier.
func (g *LLMGenerator) WithTier(tier llm.ModelTier) *LLMGenerator {
	return &LLMGenerator{client: g.client, tier: tier}
}

// Summarize asks the model for a summary within the word bounds. The client
// is configured for non-sampled generation, so repeated calls with identical
// input are expected to be stable modulo the provider's own guarantees.
func (g *LLMGenerator) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	template := prompts.MustGet("summarize.json", "summarize-transcript")
	prompt := prompts.Format(template, map[string]string{
		"Text":      text,
		"MaxLength": strconv.Itoa(maxLength),
		"MinLength": strconv.Itoa(minLength),
	})

	out, err := g.client.GenerateContent(ctx, prompt, g.tier)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
