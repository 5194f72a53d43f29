package repository

import (
	"errors"

	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
)

type PassTierRepository struct {
	db *gorm.DB
}

func NewPassTierRepository(db *gorm.DB) *PassTierRepository {
	return &PassTierRepository{db: db}
}

func (r *PassTierRepository) GetAll() ([]models.PassTier, error) {
	var tiers []models.PassTier
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&tiers).Error
	return tiers, err
}

func (r *PassTierRepository) GetByCode(code string) (*models.PassTier, error) {
	var tier models.PassTier
	err := r.db.Where("code = ? AND is_active = ?", code, true).First(&tier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tier, nil
}
