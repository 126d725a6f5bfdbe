package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-guardian/internal/logger"
)

// Supported completion providers.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultAPIURL      = "http://localhost:5050"
)

var defaultModels = map[string]string{
	ProviderGroq:   "llama-3.3-70b-versatile",
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGemini: "gemini-2.5-flash",
	ProviderOllama: "qwen2.5-coder:7b",
}

// Config holds the application's configuration values.
type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	Logger     logger.Config
	Client     ClientConfig
	PromptsDir string
}

type ServerConfig struct {
	Port               string
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
}

type LLMConfig struct {
	Provider     string
	Model        string
	GroqAPIKey   string
	GroqBaseURL  string
	OpenAIAPIKey string
	GeminiAPIKey string
	OllamaHost   string
}

// ClientConfig is read by the terminal clients only.
type ClientConfig struct {
	APIURL string
	Theme  string
}

// New returns a viper instance with every default and environment binding in place.
// Commands can bind their flags on top of it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5050")
	v.SetDefault("SERVER_WRITE_TIMEOUT", 5*time.Minute)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LLM_PROVIDER", ProviderGroq)
	v.SetDefault("MODEL", "")
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_BASE_URL", DefaultGroqBaseURL)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("PROMPTS_DIR", "prompts")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LOG_FILE", "code-guardian.log")
	v.SetDefault("API_URL", DefaultAPIURL)
	v.SetDefault("THEME", "dark")

	return v
}

// LoadConfig reads configuration from environment variables and a .env file.
// Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	return Load(New())
}

// Load builds a Config from an already prepared viper instance.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER")))
	model := v.GetString("MODEL")
	if model == "" {
		model = defaultModels[provider]
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               v.GetString("SERVER_PORT"),
			WriteTimeout:       v.GetDuration("SERVER_WRITE_TIMEOUT"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		LLM: LLMConfig{
			Provider:     provider,
			Model:        model,
			GroqAPIKey:   v.GetString("GROQ_API_KEY"),
			GroqBaseURL:  v.GetString("GROQ_BASE_URL"),
			OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
			GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
			OllamaHost:   v.GetString("OLLAMA_HOST"),
		},
		Logger: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
			File:   v.GetString("LOG_FILE"),
		},
		Client: ClientConfig{
			APIURL: strings.TrimRight(v.GetString("API_URL"), "/"),
			Theme:  strings.ToLower(v.GetString("THEME")),
		},
		PromptsDir: v.GetString("PROMPTS_DIR"),
	}

	return cfg, nil
}

// ValidateForServer checks the settings the backend cannot start without.
func (c *Config) ValidateForServer() error {
	if c.Server.Port == "" {
		return errors.New("SERVER_PORT must be set")
	}
	if c.PromptsDir == "" {
		return errors.New("PROMPTS_DIR must be set")
	}

	switch c.LLM.Provider {
	case ProviderGroq:
		if c.LLM.GroqAPIKey == "" {
			return errors.New("GROQ_API_KEY must be set for the groq provider")
		}
	case ProviderOpenAI:
		if c.LLM.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY must be set for the openai provider")
		}
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY must be set for the gemini provider")
		}
	case ProviderOllama:
		if c.LLM.OllamaHost == "" {
			return errors.New("OLLAMA_HOST must be set for the ollama provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("MODEL must be set for provider %q", c.LLM.Provider)
	}

	if c.Logger.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Logger.Level)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Logger.Level, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
