package models

import "time"

type Team struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Name      string       `json:"name" gorm:"not null"`
	Code      string       `json:"code" gorm:"unique;not null;size:10"`
	EventSlug string       `json:"event_slug" gorm:"not null;index"`
	LeaderID  uint         `json:"leader_id" gorm:"not null"`
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TeamMember links a user to a team. EventSlug is denormalized from the team
// so the single-team-per-event rule can be a unique index instead of a
// check-then-act read.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_member_per_event"`
	EventSlug string    `json:"event_slug" gorm:"not null;uniqueIndex:idx_member_per_event"`
	CreatedAt time.Time `json:"created_at"`
}
