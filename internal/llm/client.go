// Package llm wraps the text-generation backend. A live backend is used when
// an API key is configured; otherwise (and on any live failure) calls degrade
// to deterministic offline output. The gateway never returns a hard error to
// its callers.
package llm

import (
	"context"

	"drafter/internal/config"
)

type Client interface {
	// GenerateSection produces prose for one outline section of a topic.
	GenerateSection(ctx context.Context, topic, section string) string

	// Refine rewrites existing text according to an instruction.
	Refine(ctx context.Context, existing, instruction string) string
}

// New picks the live backend when a key is configured, the offline fallback
// otherwise.
func New(cfg config.Config) Client {
	if cfg.OpenAIKey != "" {
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.LLMModel)
	}
	return NewFallback()
}
