package core

import "context"

// Completer turns a system and user prompt into generated text. Implementations
// wrap a hosted or local model and must be safe for concurrent use.
//
//go:generate mockgen -destination=../../mocks/mock_completer.go -package=mocks github.com/sevigo/code-guardian/internal/core Completer
type Completer interface {
	// Complete performs exactly one provider call. An empty string with a nil
	// error means the provider answered without content.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// PromptStore provides the fixed system prompt bound to an operation.
//
//go:generate mockgen -destination=../../mocks/mock_prompt_store.go -package=mocks github.com/sevigo/code-guardian/internal/core PromptStore
type PromptStore interface {
	Load(ctx context.Context, name string) (string, error)
}

// ReviewService runs one operation end to end.
//
//go:generate mockgen -destination=../../mocks/mock_review_service.go -package=mocks github.com/sevigo/code-guardian/internal/core ReviewService
type ReviewService interface {
	Run(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
}
