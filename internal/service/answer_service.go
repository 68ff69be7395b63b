package service

import (
	"context"
	"time"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

// AnswerService handles answer submission and the append-only event log
type AnswerService struct {
	eventRepo    repository.AnswerEventRepo
	questionRepo repository.QuestionRepo
	broadcaster  Broadcaster
	now          func() time.Time
}

// NewAnswerService creates a new answer service
func NewAnswerService(eventRepo repository.AnswerEventRepo, questionRepo repository.QuestionRepo) *AnswerService {
	return &AnswerService{
		eventRepo:    eventRepo,
		questionRepo: questionRepo,
		now:          time.Now,
	}
}

// SetBroadcaster sets the broadcaster for live dashboard events
func (s *AnswerService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Record validates the input and appends one immutable event. The timestamp
// is server-assigned, never client-supplied, so trend statistics cannot be
// skewed by client clocks.
func (s *AnswerService) Record(ctx context.Context, input *model.AnswerEventInput) (*model.AnswerEvent, error) {
	var missing []string
	if input.UserID == "" {
		missing = append(missing, "userId")
	}
	if input.QuestionID == "" {
		missing = append(missing, "questionId")
	}
	if input.SelectedOption == "" {
		missing = append(missing, "selectedOption")
	}
	if input.IsCorrect == nil {
		missing = append(missing, "isCorrect")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	event := &model.AnswerEvent{
		UserID:            input.UserID,
		QuestionID:        input.QuestionID,
		SelectedOption:    input.SelectedOption,
		IsCorrect:         *input.IsCorrect,
		AnsweredAt:        s.now().Unix(),
		ElapsedSeconds:    input.ElapsedSeconds,
		Topic:             input.Topic,
		HighlightSnapshot: input.HighlightSnapshot,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, &StorageError{Op: "append answer event", Err: err}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(event.UserID, "answer_recorded", map[string]interface{}{
			"questionId": event.QuestionID,
			"isCorrect":  event.IsCorrect,
		})
	}

	return event, nil
}

// Submit resolves the question, grades the selected option against its
// current correct answer, and records the result. Correctness is stored
// denormalized on the event: it is a historical fact, and stays valid even
// if the catalog answer is corrected later.
func (s *AnswerService) Submit(ctx context.Context, userID string, req *model.SubmitAnswerRequest) (*model.AnswerEvent, error) {
	question, err := s.questionRepo.GetByID(ctx, req.QuestionID)
	if err != nil {
		return nil, &StorageError{Op: "load question", Err: err}
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	isCorrect := req.SelectedOption == question.CorrectAnswer

	topic := req.Topic
	if topic == "" {
		topic = question.Topic
	}

	return s.Record(ctx, &model.AnswerEventInput{
		UserID:            userID,
		QuestionID:        req.QuestionID,
		SelectedOption:    req.SelectedOption,
		IsCorrect:         &isCorrect,
		ElapsedSeconds:    req.ElapsedSeconds,
		Topic:             topic,
		HighlightSnapshot: req.HighlightSnapshot,
	})
}

// Reset deletes the user's full answer history. Irreversible; intended for
// testing and support, not a casual user action.
func (s *AnswerService) Reset(ctx context.Context, userID string) error {
	if err := s.eventRepo.DeleteByUserID(ctx, userID); err != nil {
		return &StorageError{Op: "reset answer history", Err: err}
	}
	return nil
}
