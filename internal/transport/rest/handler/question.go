package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/service"
)

// QuestionHandler handles question catalog endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// List handles GET /v1/questions?specialty=&source=&year=
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.QuestionFilter{
		Specialty: r.URL.Query().Get("specialty"),
		Source:    r.URL.Query().Get("source"),
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		filter.Year = year
	}

	questions, err := h.questionSvc.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// Get handles GET /v1/questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, question)
}
