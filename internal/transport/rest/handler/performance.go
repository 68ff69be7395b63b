package handler

import (
	"net/http"

	"github.com/provamed/backend/internal/service"
	"github.com/provamed/backend/internal/transport/rest/middleware"
)

// PerformanceHandler handles performance summary endpoints
type PerformanceHandler struct {
	performanceSvc *service.PerformanceService
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(performanceSvc *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceSvc: performanceSvc}
}

// GetSummary handles GET /v1/performance
func (h *PerformanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.performanceSvc.ComputeSummary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// A null summary is the normal no-history state, rendered by clients as
	// an onboarding view, never as an error.
	writeJSON(w, http.StatusOK, summary)
}
