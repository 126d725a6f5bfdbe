package llm

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/sevigo/code-guardian/internal/core"
)

type GeminiCompleter struct {
	client *genai.Client
	logger *slog.Logger
}

var _ core.Completer = (*GeminiCompleter)(nil)

// NewGeminiCompleter connects to the Gemini API. baseURL is only set in tests.
func NewGeminiCompleter(ctx context.Context, apiKey, baseURL string, logger *slog.Logger) (*GeminiCompleter, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, logger: logger}, nil
}

func (c *GeminiCompleter) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	temperature := req.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if req.SystemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserPrompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	return resp.Text(), nil
}
