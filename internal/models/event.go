package models

import "time"

// FestEvent is a catalog entry for the fest program. The catalog is seeded
// at migration time and treated as read-only by the API.
type FestEvent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"unique;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	Day         int       `json:"day" gorm:"not null;default:1"`
	IsTeam      bool      `json:"is_team" gorm:"not null;default:false"`
	MaxSize     int       `json:"max_size" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
