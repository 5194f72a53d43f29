package models

import "time"

// CoinHistory is the append-only Nawabi coin ledger. Rows are never updated
// or deleted; a user's CACoins balance is the sum of their rows.
type CoinHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Amount    int       `json:"amount" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
