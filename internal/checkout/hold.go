package checkout

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// HeldOrder is an independent snapshot of a draft parked for later.
// It carries no back-reference to the live draft: restoring it fills a
// fresh draft and leaves the stored snapshot untouched.
type HeldOrder struct {
	ID             string             `json:"id"`
	CustomerID     int64              `json:"customer_id,omitempty"`
	CustomerName   string             `json:"customer_name"`
	CustomerPhone  string             `json:"customer_phone,omitempty"`
	Items          []LineItem         `json:"items"`
	Subtotal       string             `json:"subtotal"`
	TaxAmount      string             `json:"tax_amount"`
	DiscountAmount string             `json:"discount_amount"`
	TotalAmount    string             `json:"total_amount"`
	TaxEnabled     bool               `json:"tax_enabled"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	PaymentTerms   enum.PaymentTerms  `json:"payment_terms"`
	Priority       enum.Priority      `json:"priority"`
	DeliveryDate   *time.Time         `json:"delivery_date,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewHeldOrderID generates the snapshot id in the held-<timestamp> form.
func NewHeldOrderID(now time.Time) string {
	return fmt.Sprintf("held-%d", now.UnixMilli())
}

// Hold snapshots the draft. The caller supplies the display name and
// phone of the selected customer since the draft only keeps the id.
func (d *Draft) Hold(customerName, customerPhone string, now time.Time) *HeldOrder {
	return &HeldOrder{
		ID:             NewHeldOrderID(now),
		CustomerID:     d.CustomerID,
		CustomerName:   customerName,
		CustomerPhone:  customerPhone,
		Items:          d.Cart.Items(),
		Subtotal:       d.Cart.Subtotal().StringFixed(2),
		TaxAmount:      d.Cart.TaxAmount().StringFixed(2),
		DiscountAmount: d.Cart.Discount().StringFixed(2),
		TotalAmount:    d.Cart.Total().StringFixed(2),
		TaxEnabled:     d.Cart.TaxEnabled(),
		PaymentMethod:  d.PaymentMethod,
		PaymentTerms:   d.PaymentTerms,
		Priority:       d.Priority,
		DeliveryDate:   d.DeliveryDate,
		Notes:          d.Notes,
		CreatedAt:      now,
	}
}

// Restore builds a fresh draft from a held snapshot. The amount entry
// starts empty; payment is re-tendered when the order resumes.
func Restore(h *HeldOrder) (*Draft, error) {
	discount, err := decimal.NewFromString(h.DiscountAmount)
	if err != nil {
		return nil, fmt.Errorf("restore held order %s: bad discount %q: %w", h.ID, h.DiscountAmount, err)
	}

	draft := NewDraft()
	draft.CustomerID = h.CustomerID
	draft.PaymentMethod = h.PaymentMethod
	draft.PaymentTerms = h.PaymentTerms
	draft.Priority = h.Priority
	draft.DeliveryDate = h.DeliveryDate
	draft.Notes = h.Notes

	draft.Cart.ToggleTax(h.TaxEnabled)
	for _, item := range h.Items {
		draft.Cart.AddItem(item)
	}
	if err := draft.Cart.SetDiscount(discount); err != nil {
		return nil, err
	}

	return draft, nil
}
