package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/core"
)

// NewCompleter creates the completion provider selected by cfg.Provider.
func NewCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (core.Completer, error) {
	logger.Info("creating completion provider", "provider", cfg.Provider, "model", cfg.Model)

	switch cfg.Provider {
	case config.ProviderGroq:
		return NewOpenAICompleter(cfg.GroqAPIKey, cfg.GroqBaseURL, newProviderHTTPClient(), logger), nil
	case config.ProviderOpenAI:
		return NewOpenAICompleter(cfg.OpenAIAPIKey, "", newProviderHTTPClient(), logger), nil
	case config.ProviderGemini:
		return NewGeminiCompleter(ctx, cfg.GeminiAPIKey, "", logger)
	case config.ProviderOllama:
		return NewOllamaCompleter(cfg.OllamaHost, cfg.Model, newProviderHTTPClient(), logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// newProviderHTTPClient creates an HTTP client with generous timeouts, since
// completions for large inputs can take minutes.
func newProviderHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}
