package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

const (
	// minGroupAttempts suppresses statistically unreliable breakdown groups.
	// Events in a suppressed group still count toward overall totals.
	minGroupAttempts = 3

	daySeconds         = 86400
	shortWindowSeconds = 7 * daySeconds
	longWindowSeconds  = 30 * daySeconds
)

// PerformanceService recomputes the performance summary from raw events on
// every call. Nothing is cached incrementally, so a concurrent write may or
// may not be visible to an in-flight computation, and that is acceptable.
type PerformanceService struct {
	eventRepo    repository.AnswerEventRepo
	questionRepo repository.QuestionRepo
	now          func() time.Time
}

// NewPerformanceService creates a new performance service
func NewPerformanceService(eventRepo repository.AnswerEventRepo, questionRepo repository.QuestionRepo) *PerformanceService {
	return &PerformanceService{
		eventRepo:    eventRepo,
		questionRepo: questionRepo,
		now:          time.Now,
	}
}

// ComputeSummary aggregates the user's full answer history. A user with zero
// events gets (nil, nil): no data yet is a valid state, not a failure.
func (s *PerformanceService) ComputeSummary(ctx context.Context, userID string) (*model.PerformanceSummary, error) {
	events, err := s.eventRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, &StorageError{Op: "load answer history", Err: err}
	}
	if len(events) == 0 {
		return nil, nil
	}

	questions, err := s.resolveQuestions(ctx, events)
	if err != nil {
		return nil, err
	}

	total := len(events)
	correct := 0
	for _, e := range events {
		if e.IsCorrect {
			correct++
		}
	}

	bySpecialty := groupStats(events, questions, func(q *model.Question) string { return q.Specialty })
	sort.SliceStable(bySpecialty, func(i, j int) bool {
		return bySpecialty[i].Accuracy > bySpecialty[j].Accuracy
	})

	bySource := groupStats(events, questions, func(q *model.Question) string { return q.Source })
	sort.SliceStable(bySource, func(i, j int) bool {
		return bySource[i].Total > bySource[j].Total
	})

	// Best and weakest come from the emitted (>= minGroupAttempts) specialty
	// groups only; empty string when no group qualifies, never an arbitrary
	// pick.
	best, weakest := "", ""
	if len(bySpecialty) > 0 {
		best = bySpecialty[0].Name
		weakest = bySpecialty[len(bySpecialty)-1].Name
	}

	now := s.now().Unix()
	last7 := windowAccuracy(events, now-shortWindowSeconds)
	last30 := windowAccuracy(events, now-longWindowSeconds)
	improvement := math.Round((last7-last30)*100) / 100

	return &model.PerformanceSummary{
		TotalQuestions:   total,
		CorrectAnswers:   correct,
		IncorrectAnswers: total - correct,
		Accuracy:         float64(correct) / float64(total) * 100,
		BySpecialty:      bySpecialty,
		BySource:         bySource,
		RecentTrend: model.RecentTrend{
			Last7Days:   last7,
			Last30Days:  last30,
			Improvement: improvement,
		},
		Streak:           activeDays(events, now-shortWindowSeconds),
		BestSpecialty:    best,
		WeakestSpecialty: weakest,
	}, nil
}

func (s *PerformanceService) resolveQuestions(ctx context.Context, events []*model.AnswerEvent) (map[string]*model.Question, error) {
	seen := make(map[string]bool, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		if !seen[e.QuestionID] {
			seen[e.QuestionID] = true
			ids = append(ids, e.QuestionID)
		}
	}

	questions, err := s.questionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, &StorageError{Op: "load questions", Err: err}
	}
	return questions, nil
}

// groupStats groups events by a question dimension. Events whose question is
// gone from the catalog, or lacks the dimension, are excluded from the
// breakdown only, never from overall totals.
func groupStats(events []*model.AnswerEvent, questions map[string]*model.Question, key func(*model.Question) string) []model.GroupStat {
	type counter struct {
		total   int
		correct int
	}

	counts := make(map[string]*counter)
	var order []string
	for _, e := range events {
		q := questions[e.QuestionID]
		if q == nil {
			continue
		}
		name := key(q)
		if name == "" {
			continue
		}
		c := counts[name]
		if c == nil {
			c = &counter{}
			counts[name] = c
			order = append(order, name)
		}
		c.total++
		if e.IsCorrect {
			c.correct++
		}
	}

	stats := make([]model.GroupStat, 0, len(counts))
	for _, name := range order {
		c := counts[name]
		if c.total < minGroupAttempts {
			continue
		}
		stats = append(stats, model.GroupStat{
			Name:     name,
			Total:    c.total,
			Correct:  c.correct,
			Accuracy: float64(c.correct) / float64(c.total) * 100,
		})
	}
	return stats
}

// windowAccuracy reports 0 for an empty window, which is indistinguishable
// from genuinely 0% accuracy; display layers are expected to know this.
func windowAccuracy(events []*model.AnswerEvent, since int64) float64 {
	total, correct := 0, 0
	for _, e := range events {
		if e.AnsweredAt < since {
			continue
		}
		total++
		if e.IsCorrect {
			correct++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// activeDays counts distinct UTC calendar dates with at least one event at
// or after since. Despite being surfaced as "streak", this is a
// distinct-active-days count, not a consecutive-day run.
func activeDays(events []*model.AnswerEvent, since int64) int {
	days := make(map[string]bool)
	for _, e := range events {
		if e.AnsweredAt < since {
			continue
		}
		days[time.Unix(e.AnsweredAt, 0).UTC().Format("2006-01-02")] = true
	}
	return len(days)
}
