package repository

import (
	"errors"

	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/rs/zerolog/log"
)

type SessionRepository interface {
	// Load returns the persisted session, or nil when none is stored or the
	// stored record cannot be decoded.
	Load() (*model.User, error)
	Save(user *model.User) error
	Clear() error
}

type sessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Load() (*model.User, error) {
	var user model.User
	if err := r.store.Get(storage.KeyUser, &user); err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		// A malformed record is treated as absent, not surfaced.
		log.Warn().Err(err).Msg("Stored session unreadable, treating as absent")
		return nil, nil
	}
	if user.ID == "" || user.Email == "" {
		log.Warn().Msg("Stored session incomplete, treating as absent")
		return nil, nil
	}
	return &user, nil
}

func (r *sessionRepository) Save(user *model.User) error {
	return r.store.Set(storage.KeyUser, user)
}

func (r *sessionRepository) Clear() error {
	return r.store.Delete(storage.KeyUser)
}
