package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/sevigo/code-guardian/internal/core"
)

// OpenAICompleter talks to any OpenAI-compatible chat completions API. Groq is
// served by pointing baseURL at its OpenAI endpoint.
type OpenAICompleter struct {
	client *openai.Client
	logger *slog.Logger
}

var _ core.Completer = (*OpenAICompleter)(nil)

// NewOpenAICompleter builds a completer. An empty baseURL keeps the OpenAI default.
func NewOpenAICompleter(apiKey, baseURL string, httpClient *http.Client, logger *slog.Logger) *OpenAICompleter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAICompleter{
		client: openai.NewClientWithConfig(cfg),
		logger: logger,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: wireTemperature(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("chat completion returned no choices", "model", req.Model, "id", resp.ID)
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// wireTemperature works around the omitempty tag on Temperature: a literal zero
// would be dropped and the API default of 1 used instead.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
