package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Promotion discount kinds
const (
	PromotionKindPercent = "percent"
	PromotionKindFixed   = "fixed"
)

// Promotion is a promo code the terminal can apply to a sale. Percent
// promotions discount a share of the order total; fixed promotions
// take a flat amount off.
type Promotion struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Kind      string          `gorm:"size:20;not null" json:"kind"`
	Value     decimal.Decimal `gorm:"type:numeric(12,2)" json:"value"`
	Active    bool            `gorm:"default:true" json:"active"`
	StartsAt  *time.Time      `json:"starts_at,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

// CurrentAt reports whether the promotion can be applied at the given
// moment.
func (p *Promotion) CurrentAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return false
	}
	return true
}

// DiscountFor computes the discount this promotion grants against an
// order total.
func (p *Promotion) DiscountFor(total decimal.Decimal) decimal.Decimal {
	if p.Kind == PromotionKindPercent {
		return total.Mul(p.Value).Div(decimal.NewFromInt(100)).Round(2)
	}
	if p.Value.GreaterThan(total) {
		return total
	}
	return p.Value
}
