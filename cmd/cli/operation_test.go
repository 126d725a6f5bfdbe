package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-guardian/internal/client"
	"github.com/sevigo/code-guardian/internal/core"
)

func init() { //nolint:gochecknoinits // disable ANSI codes in test output
	color.NoColor = true
}

func TestRunOperation(t *testing.T) {
	var received core.ReviewPayload
	var receivedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"result":"def test_add():\n    assert add(1, 2) == 3"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	src := filepath.Join(dir, "calc.py")
	require.NoError(t, os.WriteFile(src, []byte("def add(a, b):\n    return a + b\n"), 0o600))
	outFile := filepath.Join(dir, "tests.json")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := client.NewDispatcher(srv.URL, srv.Client(), logger)

	var stdout bytes.Buffer
	err := runOperation(context.Background(), d, operationOptions{
		op:     core.OperationGenerateTests,
		path:   src,
		output: outFile,
	}, strings.NewReader(""), &stdout, logger)
	require.NoError(t, err)

	assert.Equal(t, "/api/tests", receivedPath)
	assert.Equal(t, "python", received.Language)
	assert.Equal(t, "pytest", received.Framework)
	assert.Contains(t, received.Code, "def add")
	assert.Contains(t, stdout.String(), "assert add(1, 2) == 3")
	assert.Contains(t, stdout.String(), "Saved to "+outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"output": "def test_add()`)
}

func TestRunOperation_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"prompt template unavailable: analyze"}`))
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := client.NewDispatcher(srv.URL, srv.Client(), logger)

	var stdout bytes.Buffer
	err := runOperation(context.Background(), d, operationOptions{
		op:       core.OperationAnalyze,
		language: "go",
	}, strings.NewReader("package main"), &stdout, logger)
	require.Error(t, err, "go is not a supported language")

	err = runOperation(context.Background(), d, operationOptions{
		op:       core.OperationAnalyze,
		language: "javascript",
	}, strings.NewReader("let a = 1"), &stdout, logger)
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Backend error: 500 prompt template unavailable: analyze")
}

func TestReadCode(t *testing.T) {
	got, err := readCode("", strings.NewReader("x = 1"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1", got)

	got, err = readCode("-", strings.NewReader("y = 2"))
	require.NoError(t, err)
	assert.Equal(t, "y = 2", got)

	_, err = readCode("", strings.NewReader("  \n"))
	assert.Error(t, err)

	_, err = readCode(filepath.Join(t.TempDir(), "missing.py"), nil)
	assert.Error(t, err)
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "Flag wins over extension", flag: "TypeScript", path: "a.js", want: "typescript"},
		{name: "Detected from extension", path: "Main.java", want: "java"},
		{name: "Unsupported flag", flag: "rust", wantErr: true},
		{name: "Nothing to detect from", path: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLanguage(tt.flag, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFramework(t *testing.T) {
	got, err := resolveFramework("", "cpp")
	require.NoError(t, err)
	assert.Equal(t, "catch2", got)

	got, err = resolveFramework("NUnit", "csharp")
	require.NoError(t, err)
	assert.Equal(t, "nunit", got)

	_, err = resolveFramework("mocha", "javascript")
	assert.Error(t, err)
}

func TestLanguagesCommand(t *testing.T) {
	var out bytes.Buffer
	languagesCmd.SetOut(&out)
	require.NoError(t, languagesCmd.RunE(languagesCmd, nil))

	assert.Contains(t, out.String(), "C#")
	assert.Contains(t, out.String(), ".cc .cpp .cxx .h .hpp")
	assert.Contains(t, out.String(), "Catch2 (C++)")
}
