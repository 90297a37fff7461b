package entity

import (
	"time"

	"gorm.io/gorm"
)

// Cashier is a terminal operator. Operators sign in with a short PIN;
// full identity management lives outside this service.
type Cashier struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Code      string         `gorm:"size:50;uniqueIndex;not null" json:"code"`
	PINHash   string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:50;default:cashier" json:"role"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Cashier model
func (Cashier) TableName() string {
	return "cashiers"
}
