package httpadapter

import (
	"net/http"

	"sem-planner/internal/core/port"
)

func (h *Handler) handleTestKeywords(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.TestKeywords(r.Context())
	if err != nil {
		h.fail(w, r, "test keywords", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleCreateTestData(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.CreateTestData(r.Context())
	if err != nil {
		h.fail(w, r, "create test data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

type clearTestDataResponse struct {
	Message      string `json:"message"`
	DeletedPlans int    `json:"deletedPlans"`
}

func (h *Handler) handleClearTestData(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ClearTestData(r.Context())
	if err != nil {
		h.fail(w, r, "clear test data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, clearTestDataResponse{Message: "Test data cleared successfully", DeletedPlans: n})
}

func (h *Handler) handleRunSelfChecks(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.RunSelfChecks(r.Context()))
}

type sampleRequestsResponse struct {
	Requests []port.SampleRequest `json:"requests"`
}

func (h *Handler) handleSampleRequests(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, sampleRequestsResponse{Requests: h.svc.SampleRequests()})
}
