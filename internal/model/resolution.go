package model

import "time"

// Resolution is the cached explanatory text for a question. At most one
// entry exists per question; the first successful generation wins.
type Resolution struct {
	QuestionID     string    `json:"questionId" bson:"questionId"`
	ResolutionText string    `json:"resolutionText" bson:"resolutionText"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// ResolutionResult is returned by the cache gate.
type ResolutionResult struct {
	ResolutionText string `json:"resolutionText"`
	Cached         bool   `json:"cached"`
}
