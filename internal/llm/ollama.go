package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/ollama"
	"github.com/sevigo/goframe/schema"

	"github.com/sevigo/code-guardian/internal/core"
)

// OllamaCompleter runs completions against a local Ollama server. The model is
// fixed when the client is created, so req.Model is ignored.
type OllamaCompleter struct {
	model  llms.Model
	logger *slog.Logger
}

var _ core.Completer = (*OllamaCompleter)(nil)

func NewOllamaCompleter(host, model string, httpClient *http.Client, logger *slog.Logger) (*OllamaCompleter, error) {
	client, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
		ollama.WithLogger(logger),
		ollama.WithRetryAttempts(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &OllamaCompleter{model: client, logger: logger}, nil
}

func (c *OllamaCompleter) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	messages := make([]schema.MessageContent, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, req.SystemPrompt))
	}
	messages = append(messages, llms.TextParts(schema.ChatMessageTypeHuman, req.UserPrompt))

	resp, err := c.model.GenerateContent(ctx, messages, llms.WithTemperature(ollamaTemperature(req.Temperature)))
	if err != nil {
		return "", fmt.Errorf("ollama chat failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("ollama returned no choices")
	}
	return resp.Choices[0].Content, nil
}

// ollamaTemperature keeps a zero temperature on the wire: goframe drops
// non-positive values, which would leave the model at its default.
// The value must survive goframe's float32 conversion.
func ollamaTemperature(t float32) float64 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float64(t)
}
