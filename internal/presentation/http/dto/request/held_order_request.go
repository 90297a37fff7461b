package request

import (
	"time"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// HoldOrderRequest parks the current terminal draft
type HoldOrderRequest struct {
	CustomerID     int64              `json:"customer_id"`
	Items          []OrderItemRequest `json:"items" binding:"required"`
	DiscountAmount string             `json:"discount_amount"`
	TaxEnabled     *bool              `json:"tax_enabled,omitempty"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	PaymentTerms   enum.PaymentTerms  `json:"payment_terms"`
	Priority       enum.Priority      `json:"priority"`
	DeliveryDate   *time.Time         `json:"delivery_date,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}
