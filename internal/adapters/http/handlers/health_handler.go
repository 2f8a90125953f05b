package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

type livenessResponse struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK; it never touches
// the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if the pool answers and
// the scope breaker is closed, 503 otherwise. Failing checks are logged at
// warn level.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	var failing []string
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			failing = append(failing, name)
			continue
		}
		resp.Checks[name] = statusOK
	}

	if len(failing) == 0 {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	slices.Sort(failing)
	logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
		slog.Any("failing", failing),
	)

	resp.Status = statusNotReady
	writeJSON(w, http.StatusServiceUnavailable, resp)
}
