// Package export writes operation output to files in the formats offered by the clients.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-guardian/internal/util"
)

// ErrNoOutput is returned when there is nothing to export.
var ErrNoOutput = errors.New("no output to export")

type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported formats in the order clients offer them.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}
}

// ParseFormat accepts a format name or file extension, with or without a dot.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "txt", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

type document struct {
	Output string `json:"output" yaml:"output"`
}

// Render encodes output in the given format. Text and Markdown are written as is.
func Render(format Format, output string) ([]byte, error) {
	if output == "" {
		return nil, ErrNoOutput
	}

	switch format {
	case FormatText, FormatMarkdown:
		return []byte(output), nil
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(document{Output: output}); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(document{Output: output}); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile renders output and writes it to path.
func WriteFile(path string, format Format, output string) error {
	data, err := Render(format, output)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // exported output is meant to be shared
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Save writes output into dir under the default file name for format and returns the path.
func Save(dir string, format Format, output string) (string, error) {
	path := filepath.Join(dir, util.OutputFileName(string(format)))
	if err := WriteFile(path, format, output); err != nil {
		return "", err
	}
	return path, nil
}
