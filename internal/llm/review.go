package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/sevigo/code-guardian/internal/core"
)

// NoResponsePlaceholder is returned when the provider answers without content.
const NoResponsePlaceholder = "No response received."

const errMissingInput = "code and language are required"

// ReviewService turns a ReviewRequest into exactly one provider call.
// It keeps no per-request state and is safe for concurrent use.
type ReviewService struct {
	completer core.Completer
	store     core.PromptStore
	templates *PromptManager
	model     string
	provider  ModelProvider
	logger    *slog.Logger
}

var _ core.ReviewService = (*ReviewService)(nil)

func NewReviewService(
	completer core.Completer,
	store core.PromptStore,
	templates *PromptManager,
	model string,
	provider ModelProvider,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		completer: completer,
		store:     store,
		templates: templates,
		model:     model,
		provider:  provider,
		logger:    logger,
	}
}

// Run validates the request, loads the system prompt, composes the user prompt and
// returns the provider's text unchanged.
func (s *ReviewService) Run(ctx context.Context, req core.ReviewRequest) (*core.ReviewResult, error) {
	if !req.Operation.Valid() {
		return nil, core.NewError(core.KindValidation, "", core.ErrUnknownOperation)
	}
	if req.Code == "" || req.Language == "" {
		return nil, core.NewError(core.KindValidation, errMissingInput, nil)
	}

	name, _ := req.Operation.PromptName()
	logger := s.logger.With("operation", req.Operation.String(), "language", req.Language)

	system, err := s.store.Load(ctx, name)
	if err != nil {
		logger.Error("failed to load system prompt", "prompt", name, "error", err)
		return nil, core.NewError(core.KindTemplateUnavailable, "prompt template unavailable: "+name, err)
	}

	data := UserPromptData{Language: req.Language, Code: req.Code}
	if req.Operation.UsesFramework() {
		data.Framework = req.Framework
	}
	user, err := s.templates.Render(PromptKey(name), s.provider, data)
	if err != nil {
		logger.Error("failed to render user prompt", "prompt", name, "error", err)
		return nil, core.NewError(core.KindTemplateUnavailable, "prompt template unavailable: "+name, err)
	}

	start := time.Now()
	text, err := s.completer.Complete(ctx, core.CompletionRequest{
		Model:        s.model,
		SystemPrompt: system,
		UserPrompt:   user,
		Temperature:  0,
	})
	if err != nil {
		logger.Error("completion provider failed", "model", s.model, "error", err)
		return nil, core.NewError(core.KindProviderFailure, "", err)
	}
	logger.Info("completion received", "model", s.model, "chars", len(text), "duration", time.Since(start))

	if text == "" {
		text = NoResponsePlaceholder
	}
	return &core.ReviewResult{Text: text}, nil
}
