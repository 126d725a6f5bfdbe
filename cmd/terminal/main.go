package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sevigo/code-guardian/internal/client"
	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/logger"
)

var (
	themeFlag  string
	listThemes bool
	filePath   string
	langFlag   string
)

var tuiViper = config.New()

var rootCmd = &cobra.Command{
	Use:          "guardian",
	Short:        "Interactive terminal client for the CodeGuardian backend",
	SilenceUsage: true,
	RunE:         runTerminal,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.Flags().StringP("server", "s", "", "CodeGuardian backend URL (default $API_URL or "+config.DefaultAPIURL+")")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "UI theme (dark, light, matrix, amber, dracula)")
	rootCmd.Flags().BoolVar(&listThemes, "list-themes", false, "List all available themes")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Load this file into the editor")
	rootCmd.Flags().StringVarP(&langFlag, "language", "l", "", "Initial language (detected from --file when omitted)")

	if err := tuiViper.BindPFlag("API_URL", rootCmd.Flags().Lookup("server")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
	if err := tuiViper.BindPFlag("THEME", rootCmd.Flags().Lookup("theme")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	if listThemes {
		fmt.Fprintln(cmd.OutOrStdout(), "Available themes:")
		for _, theme := range ListThemes() {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", theme)
		}
		return nil
	}

	cfg, err := config.Load(tuiViper)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	theme := ThemeName(cfg.Client.Theme)
	if !validTheme(theme) {
		return fmt.Errorf("invalid theme '%s', use --list-themes to see available options", theme)
	}

	opts := modelOptions{theme: theme, apiURL: cfg.Client.APIURL, exportDir: "."}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		opts.code = string(data)
		if l, ok := core.LanguageFromPath(filePath); ok {
			opts.language = l
		}
	}
	if langFlag != "" {
		l, err := core.ParseLanguage(langFlag)
		if err != nil {
			return err
		}
		opts.language = l
	}

	// The alternate screen owns stdout, so logs always go to the rotating file.
	logCfg := cfg.Logger
	logCfg.Output = "file"
	log := logger.NewLogger(logCfg, nil)
	log.Info("CodeGuardian terminal starting up", "backend", cfg.Client.APIURL, "theme", theme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := client.NewDispatcher(cfg.Client.APIURL, nil, log)
	p := tea.NewProgram(initialModel(ctx, d, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("CodeGuardian terminal shut down successfully")
	return nil
}
