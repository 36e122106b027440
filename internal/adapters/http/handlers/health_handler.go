package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// Per-check and overall readiness states.
const (
	checkOK       = "ok"
	checkDegraded = "degraded"
	checkFailing  = "failing"

	statusAlive    = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of both probes. Checks is omitted by liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the unauthenticated probe endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: statusAlive})
}

// Readiness handles GET /health/ready. Any failing check makes it 503; a
// degraded check is reported but keeps the instance ready. Error text stays
// in the logs.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := HealthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		state := checkState(err)
		resp.Checks[name] = state
		if state == checkOK {
			continue
		}

		logging.FromContext(ctx).WarnContext(ctx, "readiness check not ok",
			slog.String("check", name),
			slog.String("state", state),
			slog.Any("error", err),
		)
		if state == checkFailing {
			resp.Status = statusNotReady
		}
	}

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}

func checkState(err error) string {
	switch {
	case err == nil:
		return checkOK
	case errors.Is(err, ports.ErrDegraded):
		return checkDegraded
	default:
		return checkFailing
	}
}
