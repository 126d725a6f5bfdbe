// Package handler provides HTTP handlers for the CodeGuardian backend.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-guardian/internal/core"
)

const maxBodyBytes = 1 << 20

// ReviewHandler serves the three operation endpoints.
type ReviewHandler struct {
	service core.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(service core.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// Handle returns the handler for op.
func (h *ReviewHandler) Handle(op core.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger.With("operation", op.String(), "request_id", middleware.GetReqID(r.Context()))

		var payload core.ReviewPayload
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.Warn("could not decode request body", "error", err)
			writeJSON(w, http.StatusBadRequest, core.ErrorResponse{Error: "invalid JSON body"})
			return
		}

		// Once issued, the provider call runs to completion even if the client goes away.
		ctx := context.WithoutCancel(r.Context())
		result, err := h.service.Run(ctx, payload.Request(op))
		if err != nil {
			status := http.StatusInternalServerError
			message := err.Error()
			var perr *core.Error
			if errors.As(err, &perr) {
				status = perr.HTTPStatus()
				message = perr.Message
			}
			if status >= http.StatusInternalServerError {
				logger.Error("operation failed", "status", status, "error", err)
			} else {
				logger.Warn("rejected request", "status", status, "error", err)
			}
			writeJSON(w, status, core.ErrorResponse{Error: message})
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
