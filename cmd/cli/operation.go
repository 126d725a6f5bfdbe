package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/code-guardian/internal/client"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/export"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

type operationOptions struct {
	op        core.Operation
	path      string
	language  string
	framework string
	output    string
}

func newOperationCmd(op core.Operation, use, short, long string) *cobra.Command {
	opts := &operationOptions{op: op}

	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			cfg, log, err := loadClientConfig()
			if err != nil {
				return err
			}
			d := client.NewDispatcher(cfg.Client.APIURL, nil, log)
			return runOperation(cmd.Context(), d, *opts, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "Language of the code (javascript, typescript, python, java, csharp, cpp)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Also write the result to this file (.txt, .md, .json or .yaml)")
	if op.UsesFramework() {
		cmd.Flags().StringVarP(&opts.framework, "framework", "f", "", "Test framework (jest, pytest, junit, catch2, nunit); defaults to the language's usual one")
	}
	return cmd
}

func runOperation(ctx context.Context, d *client.Dispatcher, opts operationOptions, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	code, err := readCode(opts.path, stdin)
	if err != nil {
		return err
	}

	language, err := resolveLanguage(opts.language, opts.path)
	if err != nil {
		return err
	}

	framework := ""
	if opts.op.UsesFramework() {
		framework, err = resolveFramework(opts.framework, language)
		if err != nil {
			return err
		}
	}

	source := opts.path
	if source == "" || source == "-" {
		source = "stdin"
	}
	titleColor.Fprintf(stdout, "CodeGuardian - %s\n", opts.op.Label())
	dimColor.Fprintf(stdout, "   Source: %s (%s)\n", source, core.Language(language).Label())
	if framework != "" {
		dimColor.Fprintf(stdout, "   Framework: %s\n", core.Framework(framework).Label())
	}

	start := time.Now()
	result, err := d.Submit(ctx, opts.op, client.Submission{Code: code, Language: language, Framework: framework})
	if err != nil {
		errorColor.Fprintln(stdout, d.Output())
		return err
	}
	log.Debug("request completed", "operation", opts.op.String(), "duration", time.Since(start).Round(time.Millisecond))

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, result)

	if opts.output != "" {
		format, err := export.FormatFromPath(opts.output)
		if err != nil {
			return err
		}
		if err := export.WriteFile(opts.output, format, result); err != nil {
			return err
		}
		successColor.Fprintf(stdout, "\nSaved to %s\n", opts.output)
	}
	return nil
}

func readCode(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read code: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("no code given: pass a file or pipe code on stdin")
	}
	return string(data), nil
}

func resolveLanguage(flag, path string) (string, error) {
	if flag != "" {
		l, err := core.ParseLanguage(flag)
		if err != nil {
			return "", err
		}
		return l.String(), nil
	}
	if l, ok := core.LanguageFromPath(path); ok {
		return l.String(), nil
	}
	return "", errors.New("could not detect the language, use --language")
}

func resolveFramework(flag, language string) (string, error) {
	if flag == "" {
		return core.DefaultFramework(core.Language(language)).String(), nil
	}
	f, err := core.ParseFramework(flag)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(
		newOperationCmd(core.OperationAnalyze, "analyze", "Run a static review of the code",
			`Run a static review of the code and report bugs, security issues and style problems.

Examples:
  guardian-cli analyze main.py
  cat handler.ts | guardian-cli analyze --language typescript`),
		newOperationCmd(core.OperationGenerateTests, "tests", "Generate unit tests for the code",
			`Generate unit tests for the code with the given test framework.

Examples:
  guardian-cli tests --framework pytest utils.py
  guardian-cli tests Calculator.java -o CalculatorTest.md`),
		newOperationCmd(core.OperationOptimize, "optimize", "Suggest optimizations for the code",
			`Suggest performance and readability optimizations for the code.

Examples:
  guardian-cli optimize solver.cpp
  guardian-cli optimize --output suggestions.json app.js`),
	)
}
