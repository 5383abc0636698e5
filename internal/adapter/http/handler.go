package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sem-planner/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the plan use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.PlanUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. allowedOrigins
// feeds the CORS middleware; "*" allows any origin.
func NewHandler(svc port.PlanUseCase, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors(allowedOrigins))

	r.Route("/api/v1/sem", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Post("/plans", h.handleCreatePlan)
		r.Get("/plans", h.handleListPlans)
		r.Get("/plans/{id}", h.handleGetPlan)
		r.Get("/plans/{id}/export/{dataset}", h.handleExportPlan)

		r.Post("/keywords/generate", h.handleGenerateKeywords)

		r.Route("/test", func(r chi.Router) {
			r.Get("/keywords", h.handleTestKeywords)
			r.Post("/create-data", h.handleCreateTestData)
			r.Delete("/clear-data", h.handleClearTestData)
			r.Post("/run-cases", h.handleRunSelfChecks)
			r.Get("/sample-requests", h.handleSampleRequests)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
