package entity

import (
	"time"

	"github.com/alnubras/pos-api/internal/checkout"
)

// HeldOrder persists a parked terminal draft. The snapshot column
// carries the full engine snapshot; the flat columns exist so held
// orders can be listed without decoding every snapshot. Rows are
// immutable once stored except for deletion.
type HeldOrder struct {
	ID           string             `gorm:"primaryKey;size:64" json:"id"`
	CustomerName string             `gorm:"size:255" json:"customer_name"`
	TotalAmount  string             `gorm:"size:32" json:"total_amount"`
	ItemCount    int                `gorm:"default:0" json:"item_count"`
	Snapshot     checkout.HeldOrder `gorm:"serializer:json" json:"snapshot"`
	CreatedAt    time.Time          `json:"created_at"`
}

// TableName returns the table name for the HeldOrder model
func (HeldOrder) TableName() string {
	return "held_orders"
}
