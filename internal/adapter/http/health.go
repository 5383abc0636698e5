package httpadapter

import (
	"net/http"

	"sem-planner/internal/core/port"
)

// handleHealth answers 503 when any check fails so load balancers can act
// on the status code alone.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := h.svc.Health(r.Context())
	status := http.StatusOK
	if report.Status != port.StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}
