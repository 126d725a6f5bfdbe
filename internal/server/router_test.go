package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/llm"
	"github.com/sevigo/code-guardian/mocks"
)

func newTestRouter(t *testing.T, completer core.Completer, promptsDir string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pm, err := llm.NewPromptManager()
	require.NoError(t, err)

	cfg := &config.Config{Server: config.ServerConfig{Port: "0", CORSAllowedOrigins: []string{"*"}}}
	svc := llm.NewReviewService(completer, llm.NewFilePromptStore(promptsDir), pm, "test-model", llm.DefaultProvider, logger)
	return NewRouter(cfg, svc, logger)
}

func writePrompts(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte("system "+name), 0o600))
	}
	return dir
}

func TestRouter_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockCompleter(ctrl), t.TempDir())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Endpoints(t *testing.T) {
	tests := []struct {
		path         string
		body         string
		expectedUser string
		systemPrompt string
	}{
		{
			path:         "/api/analyze",
			body:         `{"code":"let a = 1","language":"javascript"}`,
			systemPrompt: "system analyze",
			expectedUser: "Language: javascript\n\nCode:\nlet a = 1",
		},
		{
			path:         "/api/tests",
			body:         `{"code":"let a = 1","language":"javascript","framework":"jest"}`,
			systemPrompt: "system tests",
			expectedUser: "Language: javascript\nFramework: jest\n\nCode:\nlet a = 1",
		},
		{
			path:         "/api/optimize",
			body:         `{"code":"let a = 1","language":"javascript","framework":"jest"}`,
			systemPrompt: "system optimize",
			expectedUser: "Language: javascript\n\nCode:\nlet a = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := mocks.NewMockCompleter(ctrl)
			completer.EXPECT().Complete(gomock.Any(), core.CompletionRequest{
				Model:        "test-model",
				SystemPrompt: tt.systemPrompt,
				UserPrompt:   tt.expectedUser,
			}).Return("result for "+tt.path, nil).Times(1)

			router := newTestRouter(t, completer, writePrompts(t, "analyze", "tests", "optimize"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got core.ReviewResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "result for "+tt.path, got.Text)
		})
	}
}

func TestRouter_ValidationOnEveryEndpoint(t *testing.T) {
	for _, path := range []string{"/api/analyze", "/api/tests", "/api/optimize"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router := newTestRouter(t, mocks.NewMockCompleter(ctrl), writePrompts(t, "analyze", "tests", "optimize"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"language":"go"}`)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"code and language are required"}`, rec.Body.String())
		})
	}
}

func TestRouter_MissingPromptFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockCompleter(ctrl), writePrompts(t, "analyze"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tests", strings.NewReader(`{"code":"x","language":"go"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"prompt template unavailable: tests"}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockCompleter(ctrl), t.TempDir())

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockCompleter(ctrl), t.TempDir())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/refactor", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
