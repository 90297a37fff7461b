package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alnubras/pos-api/internal/checkout"
	"github.com/alnubras/pos-api/internal/domain/enum"
)

// SalesOrder is a submitted terminal order moving through the
// tailoring workflow
type SalesOrder struct {
	ID             int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNo      string             `gorm:"size:100;uniqueIndex;not null" json:"invoice_no"`
	CustomerID     int64              `gorm:"not null;index" json:"customer_id"`
	CashierID      *int64             `gorm:"index" json:"cashier_id,omitempty"`
	OrderDate      time.Time          `gorm:"type:date;not null" json:"order_date"`
	Status         enum.OrderStatus   `gorm:"default:0" json:"status"`
	Subtotal       decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	TaxAmount      decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	DiscountAmount decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	TotalAmount    decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	AmountPaid     decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	ChangeGiven    decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	BalanceDue     decimal.Decimal    `gorm:"type:numeric(12,2)" json:"-"`
	PaymentMethod  enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	PaymentTerms   enum.PaymentTerms  `gorm:"default:0" json:"payment_terms"`
	PaymentStatus  enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	Priority       enum.Priority      `gorm:"default:1" json:"priority"`
	DueDate        time.Time          `gorm:"type:date" json:"due_date"`
	DeliveryDate   *time.Time         `gorm:"type:date" json:"delivery_date,omitempty"`
	PromotionCode  string             `gorm:"size:50" json:"promotion_code,omitempty"`
	Notes          string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Cashier  *Cashier         `gorm:"foreignKey:CashierID" json:"-"`
	Items    []SalesOrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON emits every monetary field as a fixed 2-decimal string,
// the contract the terminal frontend depends on.
func (o SalesOrder) MarshalJSON() ([]byte, error) {
	type Alias SalesOrder
	return json.Marshal(&struct {
		Alias
		Subtotal       string `json:"subtotal"`
		TaxAmount      string `json:"tax_amount"`
		DiscountAmount string `json:"discount_amount"`
		TotalAmount    string `json:"total_amount"`
		AmountPaid     string `json:"amount_paid"`
		ChangeGiven    string `json:"change_given"`
		BalanceDue     string `json:"balance_due"`
	}{
		Alias:          Alias(o),
		Subtotal:       o.Subtotal.StringFixed(2),
		TaxAmount:      o.TaxAmount.StringFixed(2),
		DiscountAmount: o.DiscountAmount.StringFixed(2),
		TotalAmount:    o.TotalAmount.StringFixed(2),
		AmountPaid:     o.AmountPaid.StringFixed(2),
		ChangeGiven:    o.ChangeGiven.StringFixed(2),
		BalanceDue:     o.BalanceDue.StringFixed(2),
	})
}

// TableName returns the table name for the SalesOrder model
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesOrderItem is one line of a submitted order. Custom lines keep
// their measurement snapshot exactly as taken at the terminal.
type SalesOrderItem struct {
	ID          int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64                 `gorm:"not null;index" json:"order_id"`
	CatalogID   int64                 `gorm:"not null;index" json:"catalog_id"`
	Type        enum.ItemType         `gorm:"default:0" json:"type"`
	Description string                `gorm:"size:255;not null" json:"description"`
	SKU         string                `gorm:"size:20" json:"sku,omitempty"`
	Quantity    int                   `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal       `gorm:"type:numeric(12,2)" json:"-"`
	ModelName   string                `gorm:"size:255" json:"model_name,omitempty"`
	ModelPrice  decimal.Decimal       `gorm:"type:numeric(12,2)" json:"-"`
	LineTotal   decimal.Decimal       `gorm:"type:numeric(12,2)" json:"-"`
	Measurement *checkout.Measurement `gorm:"serializer:json" json:"measurement,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`

	// Relationships
	Order SalesOrder `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON emits line money fields as fixed 2-decimal strings.
func (i SalesOrderItem) MarshalJSON() ([]byte, error) {
	type Alias SalesOrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  string `json:"unit_price"`
		ModelPrice string `json:"model_price"`
		LineTotal  string `json:"line_total"`
	}{
		Alias:      Alias(i),
		UnitPrice:  i.UnitPrice.StringFixed(2),
		ModelPrice: i.ModelPrice.StringFixed(2),
		LineTotal:  i.LineTotal.StringFixed(2),
	})
}

// TableName returns the table name for the SalesOrderItem model
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}
