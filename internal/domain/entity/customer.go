package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/alnubras/pos-api/internal/checkout"
)

// Customer represents a tailoring customer
type Customer struct {
	ID          int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string                `gorm:"size:255;not null" json:"name"`
	Phone       string                `gorm:"size:50;index" json:"phone"`
	Email       *string               `gorm:"size:255" json:"email,omitempty"`
	Status      string                `gorm:"size:50;default:active" json:"status"`
	Address     *string               `gorm:"type:text" json:"address,omitempty"`
	Measurement *checkout.Measurement `gorm:"serializer:json" json:"measurement,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Orders []SalesOrder `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
