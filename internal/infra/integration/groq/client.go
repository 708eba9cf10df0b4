package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const ProviderName = "groq"

var (
	ErrNotConfigured = errors.New("groq: GROQ_KEY not configured")
	ErrEmptyResponse = errors.New("groq: response has no choices")
)

// Client talks to Groq through its OpenAI-compatible chat completions API.
type Client struct {
	api    *openai.Client
	apiKey string
	model  string
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		model:  model,
	}
}

func (c *Client) Name() string {
	return ProviderName
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Generate sends the prompt as a single user message and returns the first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
