package models

import (
	"time"
)

type UserRole string

const (
	RoleAttendee   UserRole = "attendee"
	RoleAmbassador UserRole = "ca"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	FullName string   `json:"full_name" gorm:"not null"`
	Email    string   `json:"email" gorm:"unique;not null"`
	Password string   `json:"-" gorm:"not null"`
	College  string   `json:"college"`
	Phone    string   `json:"phone"`
	Role     UserRole `json:"role" gorm:"not null;default:'attendee'"`

	// Nawabi coin balance. Always equals the sum of the user's CoinHistory
	// rows; mutated only through guarded updates that append a ledger entry
	// in the same transaction.
	CACoins int `json:"ca_coins" gorm:"not null;default:0"`

	// One-time reward flags. A flag flips to true at most once, atomically
	// with the matching balance increment.
	TaskInsta        bool `json:"task_insta" gorm:"not null;default:false"`
	TaskLinkedin     bool `json:"task_linkedin" gorm:"not null;default:false"`
	TaskX            bool `json:"task_x" gorm:"not null;default:false"`
	TaskFacebook     bool `json:"task_facebook" gorm:"not null;default:false"`
	TaskCart         bool `json:"task_cart" gorm:"not null;default:false"`
	TaskCart5        bool `json:"task_cart5" gorm:"not null;default:false"`
	TaskCart10       bool `json:"task_cart10" gorm:"not null;default:false"`
	ProfileCompleted bool `json:"profile_completed" gorm:"not null;default:false"`

	// ReferralCode is the user's own code; ReferredBy holds the code the
	// user signed up with, if any.
	ReferralCode *string `json:"referral_code" gorm:"uniqueIndex"`
	ReferredBy   *string `json:"referred_by" gorm:"index"`

	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
