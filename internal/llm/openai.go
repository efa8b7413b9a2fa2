package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type openAI struct {
	api   *openai.Client
	model string
	fb    Client
}

func NewOpenAI(key, baseURL, model string) Client {
	cfg := openai.DefaultConfig(key)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAI{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		fb:    NewFallback(),
	}
}

func (c *openAI) GenerateSection(ctx context.Context, topic, section string) string {
	out := c.complete(ctx, sectionPrompt(topic, section))
	if out == "" {
		return c.fb.GenerateSection(ctx, topic, section)
	}
	return out
}

func (c *openAI) Refine(ctx context.Context, existing, instruction string) string {
	out := c.complete(ctx, refinePrompt(existing, instruction))
	if out == "" {
		return c.fb.Refine(ctx, existing, instruction)
	}
	return out
}

// complete returns "" on any backend failure so callers fall through to the
// offline output.
func (c *openAI) complete(ctx context.Context, prompt string) string {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func sectionPrompt(topic, section string) string {
	return fmt.Sprintf(
		"Write a professional, informative business-document section (150-220 words).\n"+
			"Topic: %s\nSection: %s\nTone: professional, clear, concise.",
		topic, section,
	)
}

func refinePrompt(existing, instruction string) string {
	return fmt.Sprintf(
		"Refine the following content according to instruction: %s\n\nContent:\n%s",
		instruction, existing,
	)
}
