package llm

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-guardian/internal/config"
)

func TestNewCompleter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		cfg      config.LLMConfig
		wantType any
		wantErr  bool
	}{
		{
			name:     "Groq",
			cfg:      config.LLMConfig{Provider: config.ProviderGroq, GroqAPIKey: "k", GroqBaseURL: config.DefaultGroqBaseURL},
			wantType: &OpenAICompleter{},
		},
		{
			name:     "OpenAI",
			cfg:      config.LLMConfig{Provider: config.ProviderOpenAI, OpenAIAPIKey: "k"},
			wantType: &OpenAICompleter{},
		},
		{
			name:     "Gemini",
			cfg:      config.LLMConfig{Provider: config.ProviderGemini, GeminiAPIKey: "k"},
			wantType: &GeminiCompleter{},
		},
		{
			name:     "Ollama",
			cfg:      config.LLMConfig{Provider: config.ProviderOllama, OllamaHost: "http://localhost:11434", Model: "qwen2.5-coder:7b"},
			wantType: &OllamaCompleter{},
		},
		{
			name:    "Unsupported",
			cfg:     config.LLMConfig{Provider: "bard"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCompleter(context.Background(), tt.cfg, logger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, c)
		})
	}
}
