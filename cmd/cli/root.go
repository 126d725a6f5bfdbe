package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/logger"
)

var (
	serverURL string
	verbose   bool
)

var cliViper = config.New()

var rootCmd = &cobra.Command{
	Use:   "guardian-cli",
	Short: "guardian-cli sends code to a CodeGuardian backend for review, test generation or optimization.",
	Long: `A scriptable client for the CodeGuardian backend.

Code is read from a file argument or from stdin. The language is detected from the
file extension unless --language is given.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "CodeGuardian backend URL (default $API_URL or "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and timing information")

	if err := cliViper.BindPFlag("API_URL", rootCmd.PersistentFlags().Lookup("server")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// loadClientConfig resolves the client settings from flags, environment and .env.
func loadClientConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cliViper)
	if err != nil {
		return nil, nil, err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.NewLogger(logger.Config{Level: level, Format: "text", Output: "stderr"}, nil)
	return cfg, log, nil
}
