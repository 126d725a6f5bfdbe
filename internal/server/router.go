package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sevigo/code-guardian/internal/config"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg *config.Config, service core.ReviewService, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack. There is no request timeout: completions are
	// allowed to run as long as the provider needs.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	reviewHandler := handler.NewReviewHandler(service, logger)
	for _, op := range core.Operations() {
		endpoint, err := op.Endpoint()
		if err != nil {
			continue
		}
		r.Post(endpoint, reviewHandler.Handle(op))
	}

	return r
}
