package model

// ErrorEntry is one deduplicated (question, chosen-wrong-option) pair in the
// error notebook. Repeating the same wrong option bumps Attempts; a different
// wrong option on the same question is a separate entry, since each wrong
// option represents a distinct misconception.
type ErrorEntry struct {
	QuestionID     string            `json:"questionId"`
	Statement      string            `json:"statement"`
	Options        map[string]string `json:"options,omitempty"`
	Specialty      string            `json:"specialty,omitempty"`
	Source         string            `json:"source,omitempty"`
	Year           int               `json:"year,omitempty"`
	SelectedOption string            `json:"selectedOption"`
	CorrectAnswer  string            `json:"correctAnswer"`
	Attempts       int               `json:"attempts"`
	LastWrongAt    int64             `json:"lastWrongAt"` // epoch seconds
}
