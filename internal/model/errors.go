package model

import "errors"

// Access gate errors
var (
	ErrInvalidAccessCode  = errors.New("invalid access code. Please check your access code and try again")
	ErrAccessCodeConflict = errors.New("this access code is already associated with a different email address")
)

// Quiz engine errors
var (
	ErrNoQuestionsForSubject = errors.New("there are no questions available for this subject yet")
	ErrNoActiveQuiz          = errors.New("no quiz in progress")
	ErrQuizNotComplete       = errors.New("quiz results are not available until the quiz is completed")
	ErrInvalidQuestionIndex  = errors.New("question index out of range")
	ErrInvalidOptionIndex    = errors.New("option index out of range")
)

// ErrIncompleteQuiz is a warning, not a failure: finishing the quiz with
// unanswered questions navigates back to the first unanswered one.
var ErrIncompleteQuiz = errors.New("please answer all questions before viewing the results")

// Content errors
var (
	ErrMaterialNotFound = errors.New("material not found")
)
