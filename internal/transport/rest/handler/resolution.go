package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/provamed/backend/internal/service"
)

// ResolutionHandler handles resolution generation endpoints
type ResolutionHandler struct {
	resolutionSvc *service.ResolutionService
	questionSvc   *service.QuestionService
	generator     *service.GeneratorService
}

// NewResolutionHandler creates a new resolution handler
func NewResolutionHandler(resolutionSvc *service.ResolutionService, questionSvc *service.QuestionService, generator *service.GeneratorService) *ResolutionHandler {
	return &ResolutionHandler{
		resolutionSvc: resolutionSvc,
		questionSvc:   questionSvc,
		generator:     generator,
	}
}

// GetOrGenerate handles POST /v1/questions/{id}/resolution
func (h *ResolutionHandler) GetOrGenerate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	question, err := h.questionSvc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	result, err := h.resolutionSvc.GetOrGenerate(r.Context(), question.ID, question.Statement, h.generator.Generate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
