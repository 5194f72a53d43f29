package models

import "time"

type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_event"`
	EventSlug string    `json:"event_slug" gorm:"not null;uniqueIndex:idx_cart_user_event"`
	CreatedAt time.Time `json:"created_at"`
}

type AddCartItemRequest struct {
	EventSlug string `json:"event_slug" validate:"required"`
}
