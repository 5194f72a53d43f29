package service

import (
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
)

type EventService struct {
	eventRepo *repository.EventRepository
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) GetCatalog() ([]models.FestEvent, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) GetBySlug(slug string) (*models.FestEvent, error) {
	return s.eventRepo.GetBySlug(slug)
}
