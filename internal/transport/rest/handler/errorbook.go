package handler

import (
	"net/http"
	"strconv"

	"github.com/provamed/backend/internal/service"
	"github.com/provamed/backend/internal/transport/rest/middleware"
)

// ErrorbookHandler handles error-notebook endpoints
type ErrorbookHandler struct {
	errorbookSvc *service.ErrorbookService
}

// NewErrorbookHandler creates a new errorbook handler
func NewErrorbookHandler(errorbookSvc *service.ErrorbookService) *ErrorbookHandler {
	return &ErrorbookHandler{errorbookSvc: errorbookSvc}
}

// List handles GET /v1/errorbook?limit=N
func (h *ErrorbookHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.errorbookSvc.ListErrors(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
