package service

import (
	"context"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

// QuestionService exposes the question catalog to the API layer
type QuestionService struct {
	questionRepo repository.QuestionRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepo) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// Get returns a question, or (nil, nil) when it does not exist.
func (s *QuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "load question", Err: err}
	}
	return question, nil
}

// List returns catalog questions matching the exam filters.
func (s *QuestionService) List(ctx context.Context, filter model.QuestionFilter) ([]*model.Question, error) {
	questions, err := s.questionRepo.List(ctx, filter)
	if err != nil {
		return nil, &StorageError{Op: "list questions", Err: err}
	}
	return questions, nil
}
