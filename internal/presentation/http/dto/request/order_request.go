package request

import (
	"time"

	"github.com/alnubras/pos-api/internal/checkout"
	"github.com/alnubras/pos-api/internal/domain/enum"
)

// OrderItemRequest is one submitted cart line
type OrderItemRequest struct {
	Type        enum.ItemType         `json:"type"`
	CatalogID   int64                 `json:"catalog_id" binding:"required"`
	Quantity    int                   `json:"quantity"`
	ModelID     *int64                `json:"model_id,omitempty"`
	Measurement *checkout.Measurement `json:"measurement,omitempty"`
}

// NewCustomerRequest creates a walk-in customer inline with the order
type NewCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CreateOrderRequest is the terminal submission payload
type CreateOrderRequest struct {
	CustomerID     int64               `json:"customer_id"`
	NewCustomer    *NewCustomerRequest `json:"new_customer,omitempty"`
	Items          []OrderItemRequest  `json:"items"`
	DiscountAmount string              `json:"discount_amount"`
	TaxEnabled     *bool               `json:"tax_enabled,omitempty"`
	AmountTendered string              `json:"amount_tendered"`
	PaymentMethod  enum.PaymentMethod  `json:"payment_method"`
	PaymentTerms   enum.PaymentTerms   `json:"payment_terms"`
	Priority       enum.Priority       `json:"priority"`
	DeliveryDate   *time.Time          `json:"delivery_date,omitempty"`
	PromotionCode  string              `json:"promotion_code,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	HeldOrderID    string              `json:"held_order_id,omitempty"`
}

// UpdateOrderStatusRequest moves an order through the workflow
type UpdateOrderStatusRequest struct {
	Status enum.OrderStatus `json:"status"`
}

// PayDueRequest records a payment against an outstanding balance
type PayDueRequest struct {
	Amount string `json:"amount" binding:"required"`
}
