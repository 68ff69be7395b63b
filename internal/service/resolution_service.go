package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/provamed/backend/internal/cache"
	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

// Generator produces an explanatory resolution text for a question.
type Generator func(ctx context.Context, questionText string) (string, error)

// ResolutionService is the cache gate in front of the external resolution
// generator. It guarantees at most one stored copy per question, not at most
// one generation: two concurrent first-time requests may both generate, and
// the insert keeps whichever finished first. No lock spans questions, so a
// slow generation never blocks unrelated requests.
type ResolutionService struct {
	resolutionRepo  repository.ResolutionRepo
	resolutionCache cache.ResolutionCache
	now             func() time.Time
}

// NewResolutionService creates a new resolution service
func NewResolutionService(resolutionRepo repository.ResolutionRepo, resolutionCache cache.ResolutionCache) *ResolutionService {
	return &ResolutionService{
		resolutionRepo:  resolutionRepo,
		resolutionCache: resolutionCache,
		now:             time.Now,
	}
}

// GetOrGenerate returns the cached resolution for the question, or invokes
// the generator exactly once and persists the result. Generator failures
// surface as GenerationError and leave no cache entry.
func (s *ResolutionService) GetOrGenerate(ctx context.Context, questionID, questionText string, generate Generator) (*model.ResolutionResult, error) {
	if s.resolutionCache != nil {
		text, hit, err := s.resolutionCache.Get(ctx, questionID)
		if err != nil {
			log.Printf("resolution cache read failed for %s: %v", questionID, err)
		} else if hit {
			return &model.ResolutionResult{ResolutionText: text, Cached: true}, nil
		}
	}

	existing, err := s.resolutionRepo.GetByQuestionID(ctx, questionID)
	if err != nil {
		return nil, &StorageError{Op: "load resolution", Err: err}
	}
	if existing != nil {
		s.fillCache(ctx, questionID, existing.ResolutionText)
		return &model.ResolutionResult{ResolutionText: existing.ResolutionText, Cached: true}, nil
	}

	text, err := generate(ctx, questionText)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	err = s.resolutionRepo.Insert(ctx, &model.Resolution{
		QuestionID:     questionID,
		ResolutionText: text,
		CreatedAt:      s.now(),
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicateResolution) {
		return nil, &StorageError{Op: "store resolution", Err: err}
	}
	// On a duplicate-key conflict a concurrent first-writer won the insert;
	// the caller still gets the text generated for it.

	s.fillCache(ctx, questionID, text)
	return &model.ResolutionResult{ResolutionText: text, Cached: false}, nil
}

// fillCache is best-effort; SetNX keeps whichever text was cached first.
func (s *ResolutionService) fillCache(ctx context.Context, questionID, text string) {
	if s.resolutionCache == nil {
		return
	}
	if err := s.resolutionCache.SetNX(ctx, questionID, text); err != nil {
		log.Printf("resolution cache write failed for %s: %v", questionID, err)
	}
}
