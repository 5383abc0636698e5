package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/port"
)

// handleCreatePlan builds and stores a plan from the posted inputs and
// answers 201 with the full plan.
func (h *Handler) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req port.CreatePlanRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	plan, err := h.svc.CreatePlan(r.Context(), req)
	if err != nil {
		h.fail(w, r, "create plan", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, plan)
}

type listPlansResponse struct {
	Plans []domain.PlanSummary `json:"plans"`
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListPlans(r.Context())
	if err != nil {
		h.fail(w, r, "list plans", err)
		return
	}
	if plans == nil {
		plans = []domain.PlanSummary{}
	}
	h.writeJSON(w, http.StatusOK, listPlansResponse{Plans: plans})
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get plan", err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}
