package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		logFunc   func(l *slog.Logger)
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:    "Text Logger Info Level",
			config:  Config{Level: "info", Format: "text", Output: "stdout"},
			logFunc: func(l *slog.Logger) { l.Info("test message") },
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "level=INFO")
				assert.Contains(t, output, `msg="test message"`)
			},
		},
		{
			name:    "JSON Logger Debug Level",
			config:  Config{Level: "debug", Format: "json", Output: "stdout"},
			logFunc: func(l *slog.Logger) { l.Debug("test message") },
			checkFunc: func(t *testing.T, output string) {
				var logEntry map[string]any
				require.NoError(t, json.Unmarshal([]byte(output), &logEntry), output)
				assert.Equal(t, "DEBUG", logEntry["level"])
				assert.Equal(t, "test message", logEntry["msg"])
			},
		},
		{
			name:    "Debug suppressed at warn level",
			config:  Config{Level: "warn", Format: "text"},
			logFunc: func(l *slog.Logger) { l.Debug("hidden"); l.Info("hidden") },
			checkFunc: func(t *testing.T, output string) {
				assert.Empty(t, output)
			},
		},
		{
			name:    "Unknown level falls back to info",
			config:  Config{Level: "chatty", Format: "text"},
			logFunc: func(l *slog.Logger) { l.Debug("hidden"); l.Info("shown") },
			checkFunc: func(t *testing.T, output string) {
				assert.NotContains(t, output, "hidden")
				assert.Contains(t, output, "shown")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(NewLogger(tt.config, &buf))
			tt.checkFunc(t, buf.String())
		})
	}
}

func TestOpenOutput(t *testing.T) {
	assert.Equal(t, os.Stderr, openOutput(Config{Output: "stderr"}))
	assert.Equal(t, os.Stdout, openOutput(Config{Output: "something"}))

	path := filepath.Join(t.TempDir(), "guardian.log")
	w := openOutput(Config{Output: "file", File: path})
	rotating, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, path, rotating.Filename)

	fallback, ok := openOutput(Config{Output: "file"}).(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, defaultLogFile, fallback.Filename)
}
