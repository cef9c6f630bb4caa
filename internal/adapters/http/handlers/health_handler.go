package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints. Readiness runs
// the registered checks, which for the board server is the store ping.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never consults the store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.NewLiveResponse())
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewReadyResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if !resp.Ready() {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
