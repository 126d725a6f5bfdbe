package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/code-guardian/internal/app"
	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/llm"
	"github.com/sevigo/code-guardian/internal/logger"
	"github.com/sevigo/code-guardian/internal/server"
)

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	llm.NewPromptManager,
	provideConfig,
	provideLoggerConfig,
	provideSlogLogger,
	provideCompleter,
	providePromptStore,
	provideReviewService,
)

func provideConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateForServer(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logger
}

func provideSlogLogger(loggerConfig logger.Config) *slog.Logger {
	l := logger.NewLogger(loggerConfig, nil)
	slog.SetDefault(l)
	return l
}

func provideCompleter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.Completer, error) {
	return llm.NewCompleter(ctx, cfg.LLM, logger)
}

func providePromptStore(cfg *config.Config) core.PromptStore {
	return llm.NewFilePromptStore(cfg.PromptsDir)
}

func provideReviewService(
	cfg *config.Config,
	completer core.Completer,
	store core.PromptStore,
	templates *llm.PromptManager,
	logger *slog.Logger,
) core.ReviewService {
	return llm.NewReviewService(completer, store, templates, cfg.LLM.Model, llm.ModelProvider(cfg.LLM.Provider), logger)
}
