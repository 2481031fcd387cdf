package repository

import (
	"errors"

	"github.com/lshigami/learnhub/internal/content"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/rs/zerolog/log"
)

type MaterialRepository interface {
	List() ([]model.Material, error)
	Add(material model.Material) error
}

type materialRepository struct {
	store storage.Store
}

func NewMaterialRepository(store storage.Store) MaterialRepository {
	return &materialRepository{store: store}
}

func (r *materialRepository) List() ([]model.Material, error) {
	var materials []model.Material
	if err := r.store.Get(storage.KeyMaterials, &materials); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("Stored materials unreadable, falling back to bundled defaults")
		}
		return content.DefaultMaterials(), nil
	}
	return materials, nil
}

func (r *materialRepository) Add(material model.Material) error {
	materials, err := r.List()
	if err != nil {
		return err
	}
	materials = append(materials, material)
	return r.store.Set(storage.KeyMaterials, materials)
}
