package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/learnhub/internal/content"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	GetAllQuestions(subject string) ([]dto.QuestionResponse, error)
	// GetSubjects lists every subject label with its question count,
	// including subjects that currently have no questions.
	GetSubjects() ([]dto.SubjectSummary, error)
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) GetAllQuestions(subject string) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	responses := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		if subject != "" && question.Subject != subject {
			continue
		}
		var resp dto.QuestionResponse
		if err := copier.Copy(&resp, &question); err != nil {
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *questionService) GetSubjects() ([]dto.SubjectSummary, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	counts := make(map[string]int)
	for _, question := range questions {
		counts[question.Subject]++
	}
	summaries := make([]dto.SubjectSummary, 0, len(content.Subjects))
	for _, subject := range content.Subjects {
		summaries = append(summaries, dto.SubjectSummary{
			Name:          subject,
			QuestionCount: counts[subject],
		})
	}
	return summaries, nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if *req.CorrectAnswer >= len(req.Options) {
		return nil, fmt.Errorf("correct_answer %d is out of range for %d options", *req.CorrectAnswer, len(req.Options))
	}

	question := model.Question{
		ID:            uuid.NewString(),
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: *req.CorrectAnswer,
		Explanation:   req.Explanation,
		Subject:       req.Subject,
	}
	if err := s.questionRepo.Add(question); err != nil {
		log.Error().Err(err).Msg("Failed to persist question")
		return nil, fmt.Errorf("error saving question: %w", err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}
