package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqCompletionClient implements CompletionClientInterface against Groq's
// OpenAI-compatible chat completions endpoint.
type GroqCompletionClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewGroqCompletionClient(apiKey, model string) CompletionClientInterface {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL

	return &GroqCompletionClient{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: 0.7,
	}
}

func (g *GroqCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
