package repository

import (
	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
)

type CoinHistoryRepository struct {
	db *gorm.DB
}

func NewCoinHistoryRepository(db *gorm.DB) *CoinHistoryRepository {
	return &CoinHistoryRepository{db: db}
}

func (r *CoinHistoryRepository) GetUserHistory(userID uint) ([]models.CoinHistory, error) {
	var history []models.CoinHistory
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}

func (r *CoinHistoryRepository) SumForUser(userID uint) (int, error) {
	var total int64
	err := r.db.Model(&models.CoinHistory{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return int(total), err
}
