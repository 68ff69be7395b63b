package model

// Question is one multiple-choice exam question from the catalog.
type Question struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	Statement     string            `json:"statement" bson:"statement"`
	Options       map[string]string `json:"options" bson:"options"` // option letter -> text
	CorrectAnswer string            `json:"correctAnswer" bson:"correctAnswer"`
	Specialty     string            `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Source        string            `json:"source,omitempty" bson:"source,omitempty"` // issuing institution
	Year          int               `json:"year,omitempty" bson:"year,omitempty"`
	Topic         string            `json:"topic,omitempty" bson:"topic,omitempty"`
}

// QuestionFilter narrows catalog listings for the exam filter UI.
type QuestionFilter struct {
	Specialty string
	Source    string
	Year      int
}
