package service

import (
	"context"
	"sort"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

const defaultErrorLimit = 100

// ErrorbookService derives the error-notebook view from the event log:
// every distinct (question, wrong option) pairing the user has produced,
// with attempt counts.
type ErrorbookService struct {
	eventRepo    repository.AnswerEventRepo
	questionRepo repository.QuestionRepo
}

// NewErrorbookService creates a new errorbook service
func NewErrorbookService(eventRepo repository.AnswerEventRepo, questionRepo repository.QuestionRepo) *ErrorbookService {
	return &ErrorbookService{
		eventRepo:    eventRepo,
		questionRepo: questionRepo,
	}
}

// ListErrors returns the user's wrong answers grouped by
// (questionId, selectedOption), newest wrong answer first. Entries whose
// question was deleted from the catalog are dropped silently (inner-join
// semantics). limit <= 0 falls back to the default of 100.
func (s *ErrorbookService) ListErrors(ctx context.Context, userID string, limit int) ([]model.ErrorEntry, error) {
	if limit <= 0 {
		limit = defaultErrorLimit
	}

	events, err := s.eventRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, &StorageError{Op: "load answer history", Err: err}
	}

	type groupKey struct {
		questionID string
		option     string
	}
	type group struct {
		attempts    int
		lastWrongAt int64
	}

	groups := make(map[groupKey]*group)
	var order []groupKey
	for _, e := range events {
		if e.IsCorrect {
			continue
		}
		k := groupKey{questionID: e.QuestionID, option: e.SelectedOption}
		g := groups[k]
		if g == nil {
			g = &group{}
			groups[k] = g
			order = append(order, k)
		}
		g.attempts++
		if e.AnsweredAt > g.lastWrongAt {
			g.lastWrongAt = e.AnsweredAt
		}
	}

	if len(order) == 0 {
		return []model.ErrorEntry{}, nil
	}

	seen := make(map[string]bool, len(order))
	ids := make([]string, 0, len(order))
	for _, k := range order {
		if !seen[k.questionID] {
			seen[k.questionID] = true
			ids = append(ids, k.questionID)
		}
	}
	questions, err := s.questionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, &StorageError{Op: "load questions", Err: err}
	}

	entries := make([]model.ErrorEntry, 0, len(order))
	for _, k := range order {
		q := questions[k.questionID]
		if q == nil {
			continue // question deleted from catalog
		}
		g := groups[k]
		entries = append(entries, model.ErrorEntry{
			QuestionID:     q.ID,
			Statement:      q.Statement,
			Options:        q.Options,
			Specialty:      q.Specialty,
			Source:         q.Source,
			Year:           q.Year,
			SelectedOption: k.option,
			CorrectAnswer:  q.CorrectAnswer,
			Attempts:       g.attempts,
			LastWrongAt:    g.lastWrongAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastWrongAt > entries[j].LastWrongAt
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
