// Package app initializes and orchestrates the main components of the CodeGuardian backend.
package app

import (
	"log/slog"

	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/server"
)

// App holds the main application components.
type App struct {
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	logger.Info("CodeGuardian initialized",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model,
		"prompts_dir", cfg.PromptsDir,
	)
	return &App{
		cfg:    cfg,
		server: srv,
		logger: logger,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	a.logger.Info("starting CodeGuardian", "server_port", a.cfg.Server.Port)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. In-flight completions are allowed to
// finish within the server's shutdown timeout.
func (a *App) Stop() error {
	a.logger.Info("shutting down CodeGuardian")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("CodeGuardian stopped successfully")
	return nil
}
