package service

import (
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
)

type PassService struct {
	passRepo *repository.PassTierRepository
}

func NewPassService(passRepo *repository.PassTierRepository) *PassService {
	return &PassService{passRepo: passRepo}
}

func (s *PassService) GetTiers() ([]models.PassTier, error) {
	return s.passRepo.GetAll()
}
