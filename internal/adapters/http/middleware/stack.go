package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/telemetry"
)

// Stack returns the service's global middleware in execution order, ready
// for chi's Use. The first entry is outermost:
//
//	Recovery -> RequestID -> CorrelationID -> OpenTelemetry -> Logging
//
// Timeout is not part of the stack; the router applies it to API routes only.
// metrics may be nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}
