package repository

import (
	"errors"

	"github.com/lshigami/learnhub/internal/content"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/rs/zerolog/log"
)

type QuestionRepository interface {
	// List returns the stored question bank, falling back to the bundled
	// defaults when nothing (or nothing readable) is stored.
	List() ([]model.Question, error)
	// Add appends a question and persists the full list back.
	Add(question model.Question) error
}

type questionRepository struct {
	store storage.Store
}

func NewQuestionRepository(store storage.Store) QuestionRepository {
	return &questionRepository{store: store}
}

func (r *questionRepository) List() ([]model.Question, error) {
	var questions []model.Question
	if err := r.store.Get(storage.KeyQuestions, &questions); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("Stored questions unreadable, falling back to bundled defaults")
		}
		return content.DefaultQuestions(), nil
	}
	return questions, nil
}

func (r *questionRepository) Add(question model.Question) error {
	questions, err := r.List()
	if err != nil {
		return err
	}
	questions = append(questions, question)
	return r.store.Set(storage.KeyQuestions, questions)
}
