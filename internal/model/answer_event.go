package model

// AnswerEvent is one immutable record of a user answering a question.
// Retries append new events; nothing is ever updated in place. Correctness
// is denormalized at grading time so later catalog fixes do not rewrite
// history.
type AnswerEvent struct {
	ID                string `json:"id" bson:"_id,omitempty"`
	UserID            string `json:"userId" bson:"userId"`
	QuestionID        string `json:"questionId" bson:"questionId"`
	SelectedOption    string `json:"selectedOption" bson:"selectedOption"`
	IsCorrect         bool   `json:"isCorrect" bson:"isCorrect"`
	AnsweredAt        int64  `json:"answeredAt" bson:"answeredAt"` // epoch seconds, server-assigned
	ElapsedSeconds    int    `json:"elapsedSeconds,omitempty" bson:"elapsedSeconds,omitempty"`
	Topic             string `json:"topic,omitempty" bson:"topic,omitempty"`
	HighlightSnapshot string `json:"highlightSnapshot,omitempty" bson:"highlightSnapshot,omitempty"`
}

// AnswerEventInput carries a pre-graded event into the store. IsCorrect is a
// pointer so a missing value is distinguishable from an explicit false.
type AnswerEventInput struct {
	UserID            string `json:"userId"`
	QuestionID        string `json:"questionId"`
	SelectedOption    string `json:"selectedOption"`
	IsCorrect         *bool  `json:"isCorrect"`
	ElapsedSeconds    int    `json:"elapsedSeconds,omitempty"`
	Topic             string `json:"topic,omitempty"`
	HighlightSnapshot string `json:"highlightSnapshot,omitempty"`
}

// SubmitAnswerRequest is the REST body for answering a question. The server
// grades the selected option against the catalog; clients never send
// correctness or timestamps.
type SubmitAnswerRequest struct {
	QuestionID        string `json:"questionId"`
	SelectedOption    string `json:"selectedOption"`
	ElapsedSeconds    int    `json:"elapsedSeconds,omitempty"`
	Topic             string `json:"topic,omitempty"`
	HighlightSnapshot string `json:"highlightSnapshot,omitempty"`
}
