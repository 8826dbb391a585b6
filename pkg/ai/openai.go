package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"triptalk/pkg/utils"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIGenerator sends the prompt as a single user message to the chat
// completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return NewOpenAIGeneratorWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAIGeneratorWithConfig(cfg openai.ClientConfig, model string) *OpenAIGenerator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w: %v", utils.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", utils.ErrEmptyGeneration)
	}
	return checkContent("openai", resp.Choices[0].Message.Content)
}

func (g *OpenAIGenerator) Close() error {
	return nil
}
