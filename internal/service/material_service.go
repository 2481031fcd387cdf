package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/learnhub/internal/dto"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
)

type MaterialService interface {
	GetAllMaterials(subject string) ([]dto.MaterialResponse, error)
	GetMaterial(id string) (*dto.MaterialResponse, error)
	CreateMaterial(req dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
}

type materialService struct {
	materialRepo repository.MaterialRepository
}

func NewMaterialService(materialRepo repository.MaterialRepository) MaterialService {
	return &materialService{materialRepo: materialRepo}
}

func (s *materialService) GetAllMaterials(subject string) ([]dto.MaterialResponse, error) {
	materials, err := s.materialRepo.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list materials")
		return nil, fmt.Errorf("error fetching materials: %w", err)
	}

	responses := make([]dto.MaterialResponse, 0, len(materials))
	for _, material := range materials {
		if subject != "" && material.Subject != subject {
			continue
		}
		var resp dto.MaterialResponse
		if err := copier.Copy(&resp, &material); err != nil {
			return nil, fmt.Errorf("error preparing material response: %w", err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *materialService) GetMaterial(id string) (*dto.MaterialResponse, error) {
	materials, err := s.materialRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error fetching materials: %w", err)
	}
	for _, material := range materials {
		if material.ID == id {
			var resp dto.MaterialResponse
			if err := copier.Copy(&resp, &material); err != nil {
				return nil, fmt.Errorf("error preparing material response: %w", err)
			}
			return &resp, nil
		}
	}
	return nil, model.ErrMaterialNotFound
}

func (s *materialService) CreateMaterial(req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	material := model.Material{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		PDFURL:   req.PDFURL,
		VideoURL: req.VideoURL,
		Subject:  req.Subject,
	}
	if err := s.materialRepo.Add(material); err != nil {
		log.Error().Err(err).Msg("Failed to persist material")
		return nil, fmt.Errorf("error saving material: %w", err)
	}

	var resp dto.MaterialResponse
	if err := copier.Copy(&resp, &material); err != nil {
		return nil, fmt.Errorf("error preparing material response: %w", err)
	}
	return &resp, nil
}
