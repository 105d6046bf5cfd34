package generation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Generator is the external collaborator contract: one synchronous
// text-in, text-out call. No retry, no timeout beyond what the caller's
// context carries.
type Generator interface {
	Generate(ctx context.Context, text string) (string, error)
}

// client backs Generator with a chat-completion call against an
// OpenAI-compatible endpoint.
type client struct {
	api   *openai.Client
	model string
}

func newClient(cfg *Config, model string) Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: model,
	}
}

// Generate sends the text as a single user message and returns the
// first choice's content. Any failure wraps ErrGeneration with the
// underlying message.
func (c *client) Generate(ctx context.Context, text string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: model returned no choices", ErrGeneration)
	}

	return resp.Choices[0].Message.Content, nil
}
