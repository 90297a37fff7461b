package entity

import (
	"time"
)

// IdempotencyKey stores processed submissions so a replayed request
// gets the original response instead of creating a duplicate order
type IdempotencyKey struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Key          string    `gorm:"uniqueIndex;size:255;not null"` // The idempotency key from client
	CashierID    int64     `gorm:"not null;index"`                // Operator who made the request
	Endpoint     string    `gorm:"size:255;not null"`             // API endpoint (e.g., "POST /orders")
	ResponseCode int       `gorm:"not null"`                      // HTTP status code of original response
	ResponseBody string    `gorm:"type:text"`                     // JSON response body (cached)
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"` // Keys expire after 24 hours
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
