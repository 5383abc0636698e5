package httpadapter

import (
	"net/http"

	"sem-planner/internal/core/port"
)

// handleGenerateKeywords synthesizes keywords without storing a plan.
func (h *Handler) handleGenerateKeywords(w http.ResponseWriter, r *http.Request) {
	var req port.GenerateKeywordsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	analysis, err := h.svc.GenerateKeywords(r.Context(), req)
	if err != nil {
		h.fail(w, r, "generate keywords", err)
		return
	}
	h.writeJSON(w, http.StatusOK, analysis)
}
