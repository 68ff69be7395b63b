package handler

import (
	"encoding/json"
	"net/http"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/service"
	"github.com/provamed/backend/internal/transport/rest/middleware"
)

// AnswerHandler handles answer submission endpoints
type AnswerHandler struct {
	answerSvc *service.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerSvc *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc}
}

// Submit handles POST /v1/answers
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.answerSvc.Submit(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// Reset handles DELETE /v1/answers. Deletes the caller's full answer
// history; intended for testing and support flows.
func (h *AnswerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.answerSvc.Reset(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
