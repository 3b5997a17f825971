package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/dto"
)

// ReadinessCheck probes one dependency; a non-nil error marks it unready.
type ReadinessCheck func(ctx context.Context) error

// HealthHandler handles the liveness and readiness endpoints.
type HealthHandler struct {
	environment string
	started     time.Time
	checks      map[string]ReadinessCheck
}

func NewHealthHandler(environment string, checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		started:     time.Now(),
		checks:      checks,
	}
}

// Health handles GET /health. It answers without touching dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, dto.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(h.started).Round(time.Second).String(),
		Environment: h.environment,
	})
}

// Ready handles GET /ready, probing every registered dependency.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services := make(map[string]string, len(h.checks))
	status := http.StatusOK

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			services[name] = "error: " + err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		services[name] = "ready"
	}

	body := map[string]any{
		"status":   "ready",
		"services": services,
	}
	if status != http.StatusOK {
		body["status"] = "unhealthy"
	}

	writeJSON(ctx, w, status, body)
}
