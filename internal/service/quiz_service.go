package service

import (
	"fmt"
	"math"
	"sync"

	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService drives the single active quiz attempt through its states:
// subject selection, in progress, review. There is exactly one attempt at a
// time; selecting a subject replaces whatever attempt existed before.
type QuizService interface {
	// SelectSubject filters the question bank to the subject and starts a
	// fresh attempt. Returns ErrNoQuestionsForSubject (and stays in subject
	// selection) when the subject has no questions.
	SelectSubject(subject string) (*dto.QuizStateDTO, error)
	// SelectAnswer records the answer for the current question. The first
	// answer sticks: re-selecting on an already answered question is a
	// silent no-op.
	SelectAnswer(optionIndex int) (*dto.QuizStateDTO, error)
	// Next advances to the next question. From the last question it either
	// enters review (all answered) or jumps back to the first unanswered
	// question and raises the incomplete warning.
	Next() (*dto.QuizStateDTO, error)
	Previous() (*dto.QuizStateDTO, error)
	// JumpTo navigates to any question, leaving review mode and clearing
	// any pending warning.
	JumpTo(index int) (*dto.QuizStateDTO, error)
	// Restart begins a fresh attempt over the same subject.
	Restart() (*dto.QuizStateDTO, error)
	// Reset discards the attempt and returns to subject selection.
	Reset()
	State() (*dto.QuizStateDTO, error)
	// Results returns the score and per-question breakdown. Only available
	// in review mode.
	Results() (*dto.QuizResultsDTO, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository

	mu        sync.Mutex
	questions []model.Question // filtered set for the selected subject
	state     *model.QuizState
	warning   bool
}

func NewQuizService(questionRepo repository.QuestionRepository) QuizService {
	return &quizService{questionRepo: questionRepo}
}

func (s *quizService) SelectSubject(subject string) (*dto.QuizStateDTO, error) {
	all, err := s.questionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}
	var filtered []model.Question
	for _, q := range all {
		if q.Subject == subject {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		return nil, model.ErrNoQuestionsForSubject
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = filtered
	s.state = model.NewQuizState(subject, len(filtered))
	s.warning = false
	log.Info().Str("subject", subject).Int("questions", len(filtered)).Msg("Quiz started")
	return s.snapshot(), nil
}

func (s *quizService) SelectAnswer(optionIndex int) (*dto.QuizStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	current := s.state.CurrentQuestionIndex
	if optionIndex < 0 || optionIndex >= len(s.questions[current].Options) {
		return nil, model.ErrInvalidOptionIndex
	}
	// First answer is sticky. Re-selecting is ignored, not an error.
	if s.state.Answers[current] == model.Unanswered {
		s.state.Answers[current] = optionIndex
		s.state.SelectedAnswer = optionIndex
	}
	return s.snapshot(), nil
}

func (s *quizService) Next() (*dto.QuizStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	if s.state.CurrentQuestionIndex < len(s.questions)-1 {
		s.state.CurrentQuestionIndex++
		s.state.SelectedAnswer = model.Unanswered
		return s.snapshot(), nil
	}
	// Last question: grade only when every question is answered, otherwise
	// send the user back to the first unanswered one.
	for i, answer := range s.state.Answers {
		if answer == model.Unanswered {
			s.state.CurrentQuestionIndex = i
			s.state.ShowingReview = false
			s.state.SelectedAnswer = model.Unanswered
			s.warning = true
			return s.snapshot(), nil
		}
	}
	s.state.ShowingReview = true
	return s.snapshot(), nil
}

func (s *quizService) Previous() (*dto.QuizStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	if s.state.CurrentQuestionIndex > 0 {
		s.state.CurrentQuestionIndex--
		s.state.SelectedAnswer = model.Unanswered
	}
	return s.snapshot(), nil
}

func (s *quizService) JumpTo(index int) (*dto.QuizStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	if index < 0 || index >= len(s.questions) {
		return nil, model.ErrInvalidQuestionIndex
	}
	s.state.CurrentQuestionIndex = index
	s.state.ShowingReview = false
	s.state.SelectedAnswer = model.Unanswered
	s.warning = false
	return s.snapshot(), nil
}

func (s *quizService) Restart() (*dto.QuizStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	s.state = model.NewQuizState(s.state.SelectedSubject, len(s.questions))
	s.warning = false
	return s.snapshot(), nil
}

func (s *quizService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = nil
	s.state = nil
	s.warning = false
}

func (s *quizService) State() (*dto.QuizStateDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	return s.snapshot(), nil
}

func (s *quizService) Results() (*dto.QuizResultsDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, model.ErrNoActiveQuiz
	}
	if !s.state.ShowingReview {
		return nil, model.ErrQuizNotComplete
	}

	results := &dto.QuizResultsDTO{
		Subject: s.state.SelectedSubject,
		Score:   s.score(),
	}
	for i, question := range s.questions {
		answer := s.state.Answers[i]
		review := dto.QuestionReviewDTO{
			Index:    i,
			Text:     question.Text,
			Answered: answer != model.Unanswered,
		}
		if review.Answered {
			review.Correct = answer == question.CorrectAnswer
			review.YourAnswer = question.Options[answer]
			if !review.Correct {
				review.CorrectAnswer = question.Options[question.CorrectAnswer]
				review.Explanation = question.Explanation
			}
		}
		results.Questions = append(results.Questions, review)
	}
	return results, nil
}

// score counts answers matching the correct index. Unanswered entries never
// match, so they count as incorrect without special-casing. A zero-length
// question set yields percentage 0 rather than a division by zero.
func (s *quizService) score() dto.ScoreDTO {
	correct := 0
	for i, answer := range s.state.Answers {
		if answer == s.questions[i].CorrectAnswer {
			correct++
		}
	}
	total := len(s.questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return dto.ScoreDTO{Correct: correct, Total: total, Percentage: percentage}
}

// snapshot builds the state DTO. Callers must hold s.mu.
func (s *quizService) snapshot() *dto.QuizStateDTO {
	snap := &dto.QuizStateDTO{
		Subject:              s.state.SelectedSubject,
		CurrentQuestionIndex: s.state.CurrentQuestionIndex,
		TotalQuestions:       len(s.questions),
		Answers:              make([]*int, len(s.state.Answers)),
		ShowingReview:        s.state.ShowingReview,
		IncompleteWarning:    s.warning,
	}
	for i, answer := range s.state.Answers {
		if answer != model.Unanswered {
			a := answer
			snap.Answers[i] = &a
		}
	}
	if !s.state.ShowingReview {
		snap.CurrentQuestion = s.currentQuestionDTO()
	}
	return snap
}

func (s *quizService) currentQuestionDTO() *dto.QuizQuestionDTO {
	index := s.state.CurrentQuestionIndex
	question := s.questions[index]
	q := &dto.QuizQuestionDTO{
		Index:   index,
		Text:    question.Text,
		Options: question.Options,
	}
	answer := s.state.Answers[index]
	if answer == model.Unanswered {
		return q
	}
	selected := answer
	q.Answered = true
	q.SelectedOption = &selected
	feedback := &dto.AnswerFeedbackDTO{Correct: answer == question.CorrectAnswer}
	if !feedback.Correct {
		feedback.CorrectOption = question.Options[question.CorrectAnswer]
		feedback.Explanation = question.Explanation
	}
	q.Feedback = feedback
	return q
}
