package repository

import (
	"errors"

	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetAll() ([]models.FestEvent, error) {
	var events []models.FestEvent
	err := r.db.Order("day ASC, name ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) GetBySlug(slug string) (*models.FestEvent, error) {
	var event models.FestEvent
	err := r.db.Where("slug = ?", slug).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FestEvent{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
