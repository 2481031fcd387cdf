package model

// Question is a multiple-choice question. Options has at least one entry and
// CorrectAnswer is a valid 0-based index into it. Content is immutable once
// created; the quiz engine never mutates questions.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject"`
}
