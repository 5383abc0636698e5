package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sem-planner/internal/core/port"
)

const (
	codeBadRequest = "BAD_REQUEST"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL_ERROR"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// encoding should rarely fail; headers are already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, statusCode int, code, message string) {
	h.writeJSON(w, statusCode, apiError{Code: code, Message: message})
}

// decodeJSON reads the request body into dst. A failure has already been
// answered with 400 when it returns false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// fail maps use case errors to responses. Unknown errors are logged and
// hidden behind a generic 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrPlanNotFound):
		h.writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), op+" error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
