package service

import (
	"context"
	"fmt"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

// In-memory fakes for the repository and cache interfaces. They mirror the
// MongoDB implementations' contracts: missing documents come back as
// (nil, nil), and duplicate resolution inserts fail with
// repository.ErrDuplicateResolution.

type fakeEventRepo struct {
	events []*model.AnswerEvent
	err    error
}

func (r *fakeEventRepo) Create(ctx context.Context, event *model.AnswerEvent) error {
	if r.err != nil {
		return r.err
	}
	if event.ID == "" {
		event.ID = fmt.Sprintf("evt%d", len(r.events)+1)
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeEventRepo) GetByUserID(ctx context.Context, userID string) ([]*model.AnswerEvent, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*model.AnswerEvent
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if r.err != nil {
		return r.err
	}
	var kept []*model.AnswerEvent
	for _, e := range r.events {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	r.events = kept
	return nil
}

func (r *fakeEventRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeQuestionRepo struct {
	questions map[string]*model.Question
	err       error
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	m := make(map[string]*model.Question)
	for _, q := range questions {
		m[q.ID] = q
	}
	return &fakeQuestionRepo{questions: m}
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *model.Question) error {
	if r.err != nil {
		return r.err
	}
	r.questions[question.ID] = question
	return nil
}

func (r *fakeQuestionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.questions[id], nil
}

func (r *fakeQuestionRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[string]*model.Question)
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) List(ctx context.Context, filter model.QuestionFilter) ([]*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*model.Question
	for _, q := range r.questions {
		if filter.Specialty != "" && q.Specialty != filter.Specialty {
			continue
		}
		if filter.Source != "" && q.Source != filter.Source {
			continue
		}
		if filter.Year != 0 && q.Year != filter.Year {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

type fakeResolutionRepo struct {
	byQuestion map[string]*model.Resolution
	getErr     error
	insertErr  error
}

func newFakeResolutionRepo() *fakeResolutionRepo {
	return &fakeResolutionRepo{byQuestion: make(map[string]*model.Resolution)}
}

func (r *fakeResolutionRepo) Insert(ctx context.Context, resolution *model.Resolution) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if _, ok := r.byQuestion[resolution.QuestionID]; ok {
		return repository.ErrDuplicateResolution
	}
	r.byQuestion[resolution.QuestionID] = resolution
	return nil
}

func (r *fakeResolutionRepo) GetByQuestionID(ctx context.Context, questionID string) (*model.Resolution, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.byQuestion[questionID], nil
}

func (r *fakeResolutionRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeResolutionCache struct {
	entries map[string]string
}

func newFakeResolutionCache() *fakeResolutionCache {
	return &fakeResolutionCache{entries: make(map[string]string)}
}

func (c *fakeResolutionCache) Get(ctx context.Context, questionID string) (string, bool, error) {
	text, ok := c.entries[questionID]
	return text, ok, nil
}

func (c *fakeResolutionCache) SetNX(ctx context.Context, questionID, text string) error {
	if _, ok := c.entries[questionID]; !ok {
		c.entries[questionID] = text
	}
	return nil
}
