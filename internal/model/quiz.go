package model

// Unanswered marks a question the user has not answered yet. Any non-negative
// entry in QuizState.Answers is an option index for the matching question.
const Unanswered = -1

// QuizState is the single in-memory quiz attempt. It is created when a
// subject is chosen, mutated by navigation and answer selection, and
// discarded on reset. It is never persisted.
//
// Invariant: len(Answers) == number of questions filtered for
// SelectedSubject, and each entry is Unanswered or a valid option index.
type QuizState struct {
	CurrentQuestionIndex int    `json:"currentQuestionIndex"`
	Answers              []int  `json:"answers"`
	ShowingReview        bool   `json:"showingReview"`
	SelectedAnswer       int    `json:"selectedAnswer"`
	SelectedSubject      string `json:"selectedSubject"`
}

// NewQuizState returns a fresh attempt over a question set of the given size:
// index 0, every answer Unanswered, review off.
func NewQuizState(subject string, questionCount int) *QuizState {
	answers := make([]int, questionCount)
	for i := range answers {
		answers[i] = Unanswered
	}
	return &QuizState{
		CurrentQuestionIndex: 0,
		Answers:              answers,
		ShowingReview:        false,
		SelectedAnswer:       Unanswered,
		SelectedSubject:      subject,
	}
}

// Score summarizes a graded attempt. Percentage is rounded to the nearest
// integer and defined as 0 when Total is 0.
type Score struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
