package models

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id" gorm:"not null;index"`
	PassType        string      `json:"pass_type" gorm:"not null"`
	Accommodation   bool        `json:"accommodation" gorm:"not null;default:false"`
	Amount          float64     `json:"amount" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentProofURL string      `json:"payment_proof_url"`
	StripeSessionID string      `json:"-" gorm:"index"`
	ReviewNote      string      `json:"review_note"`
	Items           []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of one cart line at checkout time.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	EventSlug string    `json:"event_slug" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type CheckoutRequest struct {
	PassType      string `json:"pass_type" validate:"required,oneof=basic premium"`
	Accommodation bool   `json:"accommodation"`
}

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ReviewOrderRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Note   string `json:"note"`
}
