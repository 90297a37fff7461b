package checkout

import (
	"time"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// DeliveryOffsets are the quick-pick day offsets the terminal offers
// for the delivery date. Arbitrary dates stay allowed alongside them.
var DeliveryOffsets = []int{1, 3, 5, 7, 10, 14}

// Draft is the in-flight order a terminal instance owns: cart, amount
// entry, customer and scheduling fields. It has no identity until
// submitted; holding it produces an independent snapshot.
type Draft struct {
	CustomerID    int64
	Cart          Cart
	Tender        Tender
	PaymentMethod enum.PaymentMethod
	PaymentTerms  enum.PaymentTerms
	Priority      enum.Priority
	DeliveryDate  *time.Time
	Notes         string
}

// NewDraft returns an empty draft with the terminal defaults.
func NewDraft() *Draft {
	return &Draft{
		Cart:          *NewCart(),
		PaymentMethod: enum.PaymentMethodCash,
		PaymentTerms:  enum.PaymentTermsImmediate,
		Priority:      enum.PriorityMedium,
	}
}

// Validate checks every submission rule and returns all violations,
// not just the first, so the cashier sees the full list at once.
func (d *Draft) Validate() []RuleViolation {
	var violations []RuleViolation

	if d.CustomerID <= 0 {
		violations = append(violations, RuleViolation{
			Field: "customer_id", Message: "Please select a customer",
		})
	}
	if d.Cart.IsEmpty() {
		violations = append(violations, RuleViolation{
			Field: "items", Message: "Cart must contain at least one item",
		})
	}
	if d.Cart.Discount().IsNegative() {
		violations = append(violations, RuleViolation{
			Field: "discount_amount", Message: "Discount cannot be negative",
		})
	}
	if d.Tender.Amount().IsNegative() {
		violations = append(violations, RuleViolation{
			Field: "amount_tendered", Message: "Tendered amount cannot be negative",
		})
	}
	// Submissions carry a formed amount string rather than keystrokes,
	// so the keypad entry cap is re-checked here against the cart total.
	if d.Tender.Amount().GreaterThan(d.Cart.Total().Mul(entryCapMultiplier)) {
		violations = append(violations, RuleViolation{
			Field: "amount_tendered", Message: "Tendered amount cannot exceed ten times the order total",
		})
	}
	if !d.PaymentMethod.IsValid() {
		violations = append(violations, RuleViolation{
			Field: "payment_method", Message: "Please choose a payment method",
		})
	}
	if !d.PaymentTerms.IsValid() {
		violations = append(violations, RuleViolation{
			Field: "payment_terms", Message: "Please choose payment terms",
		})
	}
	if !d.Priority.IsValid() {
		violations = append(violations, RuleViolation{
			Field: "priority", Message: "Priority must be low, medium or high",
		})
	}

	return violations
}

// DueDate derives the balance due date from payment terms by plain
// calendar-day arithmetic on the local date.
func DueDate(terms enum.PaymentTerms, today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return day.AddDate(0, 0, terms.DueInDays())
}

// SetDeliveryFromOffset sets the delivery date from one of the
// quick-pick chips.
func (d *Draft) SetDeliveryFromOffset(days int, today time.Time) {
	due := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).AddDate(0, 0, days)
	d.DeliveryDate = &due
}

// Reset returns the draft to its freshly-mounted state after a
// successful submission or a manual clear.
func (d *Draft) Reset() {
	d.CustomerID = 0
	d.Cart = *NewCart()
	d.Tender.Clear()
	d.PaymentMethod = enum.PaymentMethodCash
	d.PaymentTerms = enum.PaymentTermsImmediate
	d.Priority = enum.PriorityMedium
	d.DeliveryDate = nil
	d.Notes = ""
}

// OrderPayload is the finalized submission object. Every monetary field
// is a fixed 2-decimal string; that formatting is a hard contract with
// the submission API.
type OrderPayload struct {
	CustomerID     int64              `json:"customer_id"`
	Items          []PayloadItem      `json:"items"`
	Subtotal       string             `json:"subtotal"`
	TaxAmount      string             `json:"tax_amount"`
	DiscountAmount string             `json:"discount_amount"`
	TotalAmount    string             `json:"total_amount"`
	AmountTendered string             `json:"amount_tendered"`
	ChangeDue      string             `json:"change_due"`
	PaymentMethod  enum.PaymentMethod `json:"payment_method"`
	PaymentTerms   enum.PaymentTerms  `json:"payment_terms"`
	PaymentStatus  enum.PaymentStatus `json:"payment_status"`
	Priority       enum.Priority      `json:"priority"`
	DueDate        time.Time          `json:"due_date"`
	DeliveryDate   *time.Time         `json:"delivery_date,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// PayloadItem is one submitted line with its money fields formatted.
type PayloadItem struct {
	Type        enum.ItemType `json:"type"`
	CatalogID   int64         `json:"catalog_id"`
	Description string        `json:"description"`
	SKU         string        `json:"sku,omitempty"`
	Quantity    int           `json:"quantity"`
	UnitPrice   string        `json:"unit_price"`
	ModelName   string        `json:"model_name,omitempty"`
	ModelPrice  string        `json:"model_price,omitempty"`
	LineTotal   string        `json:"line_total"`
	Measurement *Measurement  `json:"measurement,omitempty"`
}

// Assemble produces the submission payload. The draft must already
// pass Validate; assembling an invalid draft returns ErrDraftInvalid.
func (d *Draft) Assemble(now time.Time) (*OrderPayload, error) {
	if len(d.Validate()) > 0 {
		return nil, ErrDraftInvalid
	}

	items := d.Cart.Items()
	payloadItems := make([]PayloadItem, 0, len(items))
	for _, item := range items {
		pi := PayloadItem{
			Type:        item.Type,
			CatalogID:   item.CatalogID,
			Description: item.Description,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			ModelName:   item.ModelName,
			LineTotal:   item.LineTotal().StringFixed(2),
			Measurement: item.Measurement,
		}
		if item.ModelName != "" {
			pi.ModelPrice = item.ModelPrice.StringFixed(2)
		}
		payloadItems = append(payloadItems, pi)
	}

	total := d.Cart.Total()
	entered := d.Tender.Amount()

	return &OrderPayload{
		CustomerID:     d.CustomerID,
		Items:          payloadItems,
		Subtotal:       d.Cart.Subtotal().StringFixed(2),
		TaxAmount:      d.Cart.TaxAmount().StringFixed(2),
		DiscountAmount: d.Cart.Discount().StringFixed(2),
		TotalAmount:    total.StringFixed(2),
		AmountTendered: entered.StringFixed(2),
		ChangeDue:      d.Tender.Change(total).StringFixed(2),
		PaymentMethod:  d.PaymentMethod,
		PaymentTerms:   d.PaymentTerms,
		PaymentStatus:  PaymentStatusFor(entered, total),
		Priority:       d.Priority,
		DueDate:        DueDate(d.PaymentTerms, now),
		DeliveryDate:   d.DeliveryDate,
		Notes:          d.Notes,
	}, nil
}
