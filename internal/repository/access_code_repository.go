package repository

import (
	"errors"
	"strings"

	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/rs/zerolog/log"
)

type AccessCodeRepository interface {
	// FindByCode returns the first stored binding whose code matches
	// (case-insensitive), or nil when the code has never been used.
	FindByCode(code string) (*model.UsedAccessCode, error)
	// Append records a binding. The list is append-only and not deduplicated:
	// a repeat login with the same pair appends another identical entry.
	Append(code, email string) error
	All() ([]model.UsedAccessCode, error)
}

type accessCodeRepository struct {
	store storage.Store
}

func NewAccessCodeRepository(store storage.Store) AccessCodeRepository {
	return &accessCodeRepository{store: store}
}

func (r *accessCodeRepository) All() ([]model.UsedAccessCode, error) {
	var codes []model.UsedAccessCode
	if err := r.store.Get(storage.KeyUsedAccessCodes, &codes); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("Stored access-code bindings unreadable, starting empty")
		}
		return []model.UsedAccessCode{}, nil
	}
	return codes, nil
}

func (r *accessCodeRepository) FindByCode(code string) (*model.UsedAccessCode, error) {
	codes, err := r.All()
	if err != nil {
		return nil, err
	}
	normalized := strings.ToUpper(code)
	for i := range codes {
		if strings.ToUpper(codes[i].Code) == normalized {
			return &codes[i], nil
		}
	}
	return nil, nil
}

func (r *accessCodeRepository) Append(code, email string) error {
	codes, err := r.All()
	if err != nil {
		return err
	}
	codes = append(codes, model.UsedAccessCode{Code: code, Email: email})
	return r.store.Set(storage.KeyUsedAccessCodes, codes)
}
