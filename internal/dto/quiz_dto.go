package dto

// AnswerFeedbackDTO is returned once the current question has been answered,
// matching the portal's immediate-feedback behavior. CorrectOption and
// Explanation are only filled in for a wrong answer.
type AnswerFeedbackDTO struct {
	Correct       bool   `json:"correct"`
	CorrectOption string `json:"correct_option,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

// QuizQuestionDTO is the current question as presented to the user. The
// correct answer index is deliberately absent until the question is answered;
// it then only surfaces through Feedback.
type QuizQuestionDTO struct {
	Index          int                `json:"index"`
	Text           string             `json:"text"`
	Options        []string           `json:"options"`
	Answered       bool               `json:"answered"`
	SelectedOption *int               `json:"selected_option,omitempty"`
	Feedback       *AnswerFeedbackDTO `json:"feedback,omitempty"`
}

// QuizStateDTO is the full state-machine snapshot. Answers uses null for
// unanswered entries. IncompleteWarning is set after an attempt to finish
// the quiz with unanswered questions and cleared by explicit navigation.
type QuizStateDTO struct {
	Subject              string           `json:"subject"`
	CurrentQuestionIndex int              `json:"current_question_index"`
	TotalQuestions       int              `json:"total_questions"`
	Answers              []*int           `json:"answers"`
	ShowingReview        bool             `json:"showing_review"`
	IncompleteWarning    bool             `json:"incomplete_warning"`
	CurrentQuestion      *QuizQuestionDTO `json:"current_question,omitempty"`
}

type ScoreDTO struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// QuestionReviewDTO is the per-question breakdown in review mode. YourAnswer
// is the text of the chosen option; for a wrong answer CorrectAnswer and
// Explanation are included as well.
type QuestionReviewDTO struct {
	Index         int    `json:"index"`
	Text          string `json:"text"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	YourAnswer    string `json:"your_answer,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

type QuizResultsDTO struct {
	Subject   string              `json:"subject"`
	Score     ScoreDTO            `json:"score"`
	Questions []QuestionReviewDTO `json:"questions"`
}
