package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provamed/backend/internal/model"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newPerformanceService(events *fakeEventRepo, questions *fakeQuestionRepo) *PerformanceService {
	svc := NewPerformanceService(events, questions)
	svc.now = func() time.Time { return testNow }
	return svc
}

func event(userID, questionID string, correct bool, answeredAt time.Time) *model.AnswerEvent {
	return &model.AnswerEvent{
		UserID:         userID,
		QuestionID:     questionID,
		SelectedOption: "A",
		IsCorrect:      correct,
		AnsweredAt:     answeredAt.Unix(),
	}
}

func TestComputeSummary_NoEvents(t *testing.T) {
	svc := newPerformanceService(&fakeEventRepo{}, newFakeQuestionRepo())

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestComputeSummary_SpecialtyThresholdScenario(t *testing.T) {
	questions := newFakeQuestionRepo(
		&model.Question{ID: "q1", Specialty: "Cardiologia", Source: "USP", CorrectAnswer: "A"},
		&model.Question{ID: "q2", Specialty: "Cardiologia", Source: "USP", CorrectAnswer: "A"},
		&model.Question{ID: "q3", Specialty: "Cardiologia", Source: "USP", CorrectAnswer: "A"},
		&model.Question{ID: "q4", Specialty: "Pediatria", Source: "UNIFESP", CorrectAnswer: "A"},
		&model.Question{ID: "q5", Specialty: "Pediatria", Source: "UNIFESP", CorrectAnswer: "A"},
	)
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		event("u1", "q1", true, testNow.Add(-time.Hour)),
		event("u1", "q2", true, testNow.Add(-2*time.Hour)),
		event("u1", "q3", false, testNow.Add(-3*time.Hour)),
		event("u1", "q4", true, testNow.Add(-4*time.Hour)),
		event("u1", "q5", true, testNow.Add(-5*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 5, summary.TotalQuestions)
	assert.Equal(t, 4, summary.CorrectAnswers)
	assert.Equal(t, 1, summary.IncorrectAnswers)
	assert.InDelta(t, 80.0, summary.Accuracy, 1e-9)

	// Pediatria has only 2 attempts and is suppressed from the breakdown,
	// while its events still count toward the totals above.
	require.Len(t, summary.BySpecialty, 1)
	assert.Equal(t, "Cardiologia", summary.BySpecialty[0].Name)
	assert.Equal(t, 3, summary.BySpecialty[0].Total)
	assert.Equal(t, 2, summary.BySpecialty[0].Correct)
	assert.InDelta(t, 66.67, summary.BySpecialty[0].Accuracy, 0.01)

	assert.Equal(t, "Cardiologia", summary.BestSpecialty)
	assert.Equal(t, "Cardiologia", summary.WeakestSpecialty)
}

func TestComputeSummary_Ordering(t *testing.T) {
	questions := newFakeQuestionRepo(
		&model.Question{ID: "c1", Specialty: "Cardiologia", Source: "USP"},
		&model.Question{ID: "p1", Specialty: "Pediatria", Source: "UNIFESP"},
	)
	var events fakeEventRepo
	// Cardiologia: 3 of 4 correct (75%), source USP total 4
	for i := 0; i < 4; i++ {
		events.events = append(events.events, event("u1", "c1", i < 3, testNow.Add(-time.Hour)))
	}
	// Pediatria: 3 of 3 correct (100%), source UNIFESP total 3
	for i := 0; i < 3; i++ {
		events.events = append(events.events, event("u1", "p1", true, testNow.Add(-time.Hour)))
	}
	svc := newPerformanceService(&events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	// Specialties descend by accuracy, sources descend by volume.
	require.Len(t, summary.BySpecialty, 2)
	assert.Equal(t, "Pediatria", summary.BySpecialty[0].Name)
	assert.Equal(t, "Cardiologia", summary.BySpecialty[1].Name)

	require.Len(t, summary.BySource, 2)
	assert.Equal(t, "USP", summary.BySource[0].Name)
	assert.Equal(t, "UNIFESP", summary.BySource[1].Name)

	assert.Equal(t, "Pediatria", summary.BestSpecialty)
	assert.Equal(t, "Cardiologia", summary.WeakestSpecialty)
}

func TestComputeSummary_NoQualifyingSpecialty(t *testing.T) {
	questions := newFakeQuestionRepo(
		&model.Question{ID: "q1", Specialty: "Cardiologia", Source: "USP"},
	)
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		event("u1", "q1", true, testNow.Add(-time.Hour)),
		event("u1", "q1", false, testNow.Add(-2*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Empty(t, summary.BySpecialty)
	assert.Equal(t, "", summary.BestSpecialty)
	assert.Equal(t, "", summary.WeakestSpecialty)
}

func TestComputeSummary_ThresholdRecomputedEachCall(t *testing.T) {
	questions := newFakeQuestionRepo(
		&model.Question{ID: "q1", Specialty: "Cardiologia", Source: "USP"},
	)
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		event("u1", "q1", true, testNow.Add(-time.Hour)),
		event("u1", "q1", true, testNow.Add(-2*time.Hour)),
		event("u1", "q1", false, testNow.Add(-3*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, summary.BySpecialty, 1)

	// Dropping the third event must remove the group on the next call.
	events.events = events.events[:2]
	summary, err = svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, summary.BySpecialty)
}

func TestComputeSummary_DanglingQuestionExcludedFromBreakdownsOnly(t *testing.T) {
	questions := newFakeQuestionRepo(
		&model.Question{ID: "q1", Specialty: "Cardiologia", Source: "USP"},
	)
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		event("u1", "q1", true, testNow.Add(-time.Hour)),
		event("u1", "q1", true, testNow.Add(-2*time.Hour)),
		event("u1", "q1", true, testNow.Add(-3*time.Hour)),
		event("u1", "gone", false, testNow.Add(-4*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 4, summary.TotalQuestions)
	assert.Equal(t, 1, summary.IncorrectAnswers)
	require.Len(t, summary.BySpecialty, 1)
	assert.Equal(t, 3, summary.BySpecialty[0].Total)
}

func TestComputeSummary_RecentTrend(t *testing.T) {
	questions := newFakeQuestionRepo()
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		// last 7 days: 1 of 2 correct -> 50%
		event("u1", "q1", true, testNow.Add(-2*24*time.Hour)),
		event("u1", "q1", false, testNow.Add(-3*24*time.Hour)),
		// between 7 and 30 days: 2 of 2 correct -> 30d window 3 of 4 = 75%
		event("u1", "q1", true, testNow.Add(-10*24*time.Hour)),
		event("u1", "q1", true, testNow.Add(-20*24*time.Hour)),
		// older than 30 days: ignored by both windows
		event("u1", "q1", false, testNow.Add(-40*24*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.InDelta(t, 50.0, summary.RecentTrend.Last7Days, 1e-9)
	assert.InDelta(t, 75.0, summary.RecentTrend.Last30Days, 1e-9)
	assert.InDelta(t, -25.0, summary.RecentTrend.Improvement, 1e-9)
}

func TestComputeSummary_EmptyWindowIsZero(t *testing.T) {
	questions := newFakeQuestionRepo()
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		event("u1", "q1", true, testNow.Add(-10*24*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Zero(t, summary.RecentTrend.Last7Days)
	assert.InDelta(t, 100.0, summary.RecentTrend.Last30Days, 1e-9)
	assert.InDelta(t, -100.0, summary.RecentTrend.Improvement, 1e-9)
}

func TestComputeSummary_ImprovementRounding(t *testing.T) {
	questions := newFakeQuestionRepo()
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		// 7d window: 1 of 3 correct -> 33.333...%
		event("u1", "q1", true, testNow.Add(-24*time.Hour)),
		event("u1", "q1", false, testNow.Add(-24*time.Hour)),
		event("u1", "q1", false, testNow.Add(-24*time.Hour)),
		// 30d window adds 3 wrong -> 1 of 6 = 16.666...%
		event("u1", "q1", false, testNow.Add(-10*24*time.Hour)),
		event("u1", "q1", false, testNow.Add(-10*24*time.Hour)),
		event("u1", "q1", false, testNow.Add(-10*24*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	// 33.333... - 16.666... = 16.666..., rounded to 2 decimals
	assert.InDelta(t, 16.67, summary.RecentTrend.Improvement, 1e-9)
}

func TestComputeSummary_StreakCountsDistinctDays(t *testing.T) {
	questions := newFakeQuestionRepo()
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		// two events on the same UTC day count once
		event("u1", "q1", true, testNow.Add(-1*time.Hour)),
		event("u1", "q1", false, testNow.Add(-2*time.Hour)),
		event("u1", "q1", true, testNow.Add(-1*24*time.Hour)),
		event("u1", "q1", true, testNow.Add(-3*24*time.Hour)),
		// outside the 7-day window
		event("u1", "q1", true, testNow.Add(-9*24*time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 3, summary.Streak)
}

func TestComputeSummary_PerUserIsolation(t *testing.T) {
	questions := newFakeQuestionRepo()
	events := &fakeEventRepo{events: []*model.AnswerEvent{
		event("u1", "q1", true, testNow.Add(-time.Hour)),
		event("u2", "q1", false, testNow.Add(-time.Hour)),
	}}
	svc := newPerformanceService(events, questions)

	summary, err := svc.ComputeSummary(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 1, summary.TotalQuestions)
	assert.Equal(t, 1, summary.CorrectAnswers)
}

func TestComputeSummary_StorageErrorPropagates(t *testing.T) {
	events := &fakeEventRepo{err: assert.AnError}
	svc := newPerformanceService(events, newFakeQuestionRepo())

	_, err := svc.ComputeSummary(context.Background(), "u1")
	var sErr *StorageError
	require.ErrorAs(t, err, &sErr)
}
