package repository

import (
	"errors"

	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Add(item *models.CartItem) error {
	err := r.db.Create(item).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrInvalidInput
	}
	return err
}

func (r *CartRepository) Remove(userID uint, eventSlug string) error {
	res := r.db.Where("user_id = ? AND event_slug = ?", userID, eventSlug).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CartRepository) GetUserItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *CartRepository) Count(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CartRepository) Contains(userID uint, eventSlug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND event_slug = ?", userID, eventSlug).
		Count(&count).Error
	return count > 0, err
}
