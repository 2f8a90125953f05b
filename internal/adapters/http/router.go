// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. API routes additionally
// run under a request deadline of requestTimeout; health probes do not, so a
// saturated database never makes liveness time out. A non-positive
// requestTimeout disables the deadline.
func NewRouter(
	articleHandler *handlers.ArticleHandler,
	healthHandler *handlers.HealthHandler,
	requestTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		r.Get("/locales", articleHandler.ListLocales)

		// Articles are addressed per culture.
		r.Route("/{culture}/articles", func(r chi.Router) {
			r.Post("/", articleHandler.CreateArticle)
			r.Get("/{id}", articleHandler.GetArticle)
			r.Put("/{id}", articleHandler.SaveArticle)
			r.Delete("/{id}", articleHandler.DeleteArticle)
			r.Post("/{id}/clone", articleHandler.CloneArticle)
		})
	})

	return r
}
