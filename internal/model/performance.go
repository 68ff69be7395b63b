package model

// GroupStat is the per-dimension accuracy breakdown (specialty or source).
type GroupStat struct {
	Name     string  `json:"name"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// RecentTrend compares recent accuracy against the trailing 30-day baseline.
// A window with zero events reports 0, which callers cannot distinguish from
// genuinely 0% accuracy.
type RecentTrend struct {
	Last7Days   float64 `json:"last7Days"`
	Last30Days  float64 `json:"last30Days"`
	Improvement float64 `json:"improvement"` // last7Days - last30Days, 2 decimals
}

// PerformanceSummary is the aggregated view over a user's full answer history.
type PerformanceSummary struct {
	TotalQuestions   int         `json:"totalQuestions"`
	CorrectAnswers   int         `json:"correctAnswers"`
	IncorrectAnswers int         `json:"incorrectAnswers"`
	Accuracy         float64     `json:"accuracy"` // percentage, unrounded
	BySpecialty      []GroupStat `json:"bySpecialty"`
	BySource         []GroupStat `json:"bySource"`
	RecentTrend      RecentTrend `json:"recentTrend"`
	Streak           int         `json:"streak"` // distinct active days in the last 7
	BestSpecialty    string      `json:"bestSpecialty"`
	WeakestSpecialty string      `json:"weakestSpecialty"`
}
