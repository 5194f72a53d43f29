package models

import "time"

// PassTier is a purchasable fest pass level (basic/premium), seeded at
// migration time.
type PassTier struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Code               string    `json:"code" gorm:"unique;not null"`
	Name               string    `json:"name" gorm:"not null"`
	Description        string    `json:"description"`
	Price              float64   `json:"price" gorm:"not null"`
	AccommodationPrice float64   `json:"accommodation_price" gorm:"not null;default:0"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
