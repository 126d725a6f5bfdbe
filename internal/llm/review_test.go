package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/mocks"
)

func newTestReviewService(t *testing.T) (*ReviewService, *mocks.MockCompleter, *mocks.MockPromptStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	store := mocks.NewMockPromptStore(ctrl)

	pm, err := NewPromptManager()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReviewService(completer, store, pm, "test-model", DefaultProvider, logger), completer, store
}

func TestReviewService_Run(t *testing.T) {
	tests := []struct {
		name         string
		req          core.ReviewRequest
		promptName   string
		expectedUser string
	}{
		{
			name:         "Analyze",
			req:          core.ReviewRequest{Operation: core.OperationAnalyze, Code: "x=1", Language: "python"},
			promptName:   "analyze",
			expectedUser: "Language: python\n\nCode:\nx=1",
		},
		{
			name: "Generate tests with framework",
			req: core.ReviewRequest{
				Operation: core.OperationGenerateTests,
				Code:      "function f(){}",
				Language:  "javascript",
				Framework: "jest",
			},
			promptName:   "tests",
			expectedUser: "Language: javascript\nFramework: jest\n\nCode:\nfunction f(){}",
		},
		{
			name:         "Generate tests with empty framework omits the line",
			req:          core.ReviewRequest{Operation: core.OperationGenerateTests, Code: "a", Language: "java"},
			promptName:   "tests",
			expectedUser: "Language: java\n\nCode:\na",
		},
		{
			name: "Optimize ignores framework",
			req: core.ReviewRequest{
				Operation: core.OperationOptimize,
				Code:      "for(;;){}",
				Language:  "cpp",
				Framework: "catch2",
			},
			promptName:   "optimize",
			expectedUser: "Language: cpp\n\nCode:\nfor(;;){}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, completer, store := newTestReviewService(t)

			store.EXPECT().Load(gomock.Any(), tt.promptName).Return("SYSTEM "+tt.promptName, nil)
			completer.EXPECT().Complete(gomock.Any(), core.CompletionRequest{
				Model:        "test-model",
				SystemPrompt: "SYSTEM " + tt.promptName,
				UserPrompt:   tt.expectedUser,
				Temperature:  0,
			}).Return("## Findings\n- none", nil).Times(1)

			res, err := svc.Run(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, "## Findings\n- none", res.Text)
		})
	}
}

func TestReviewService_Run_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  core.ReviewRequest
	}{
		{name: "Empty code", req: core.ReviewRequest{Operation: core.OperationAnalyze, Language: "python"}},
		{name: "Empty language", req: core.ReviewRequest{Operation: core.OperationGenerateTests, Code: "x"}},
		{name: "Both empty", req: core.ReviewRequest{Operation: core.OperationOptimize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call on the mocks fails the test.
			svc, _, _ := newTestReviewService(t)

			res, err := svc.Run(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, res)

			var perr *core.Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, core.KindValidation, perr.Kind)
			assert.Equal(t, "code and language are required", perr.Message)
			assert.Equal(t, 400, perr.HTTPStatus())
		})
	}
}

func TestReviewService_Run_UnknownOperation(t *testing.T) {
	svc, _, _ := newTestReviewService(t)

	_, err := svc.Run(context.Background(), core.ReviewRequest{Operation: core.Operation(42), Code: "x", Language: "go"})
	require.ErrorIs(t, err, core.ErrUnknownOperation)
	assert.Equal(t, core.KindValidation, core.KindOf(err))
}

func TestReviewService_Run_TemplateUnavailable(t *testing.T) {
	svc, _, store := newTestReviewService(t)
	store.EXPECT().Load(gomock.Any(), "analyze").Return("", ErrPromptNotFound)

	_, err := svc.Run(context.Background(), core.ReviewRequest{Operation: core.OperationAnalyze, Code: "x", Language: "go"})
	require.ErrorIs(t, err, ErrPromptNotFound)

	var perr *core.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.KindTemplateUnavailable, perr.Kind)
	assert.Equal(t, 500, perr.HTTPStatus())
}

func TestReviewService_Run_ProviderFailure(t *testing.T) {
	svc, completer, store := newTestReviewService(t)
	providerErr := errors.New("rate limit exceeded")
	store.EXPECT().Load(gomock.Any(), "optimize").Return("sys", nil)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", providerErr).Times(1)

	_, err := svc.Run(context.Background(), core.ReviewRequest{Operation: core.OperationOptimize, Code: "x", Language: "go"})
	require.ErrorIs(t, err, providerErr)

	var perr *core.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, core.KindProviderFailure, perr.Kind)
	assert.Equal(t, "rate limit exceeded", perr.Message)
	assert.Equal(t, 500, perr.HTTPStatus())
}

func TestReviewService_Run_EmptyResponse(t *testing.T) {
	svc, completer, store := newTestReviewService(t)
	store.EXPECT().Load(gomock.Any(), "analyze").Return("sys", nil)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", nil)

	res, err := svc.Run(context.Background(), core.ReviewRequest{Operation: core.OperationAnalyze, Code: "x", Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, NoResponsePlaceholder, res.Text)
}
