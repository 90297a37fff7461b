package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// TaxRate is the VAT rate applied when the tax toggle is on.
var TaxRate = decimal.NewFromFloat(0.05)

// Cart holds the ordered line-item sequence of a draft order. Subtotal,
// tax and total are recomputed from the items on every read; nothing is
// cached, so the getters can never drift from their inputs.
type Cart struct {
	items      []LineItem
	discount   decimal.Decimal
	taxEnabled bool
}

// NewCart returns an empty cart with tax applied by default.
func NewCart() *Cart {
	return &Cart{discount: decimal.Zero, taxEnabled: true}
}

// AddItem appends or merges a candidate line. Ready-made candidates
// collapse into an existing line with the same catalog ID and model
// name by incrementing its quantity; custom candidates always append
// so each tailoring job stays individually addressable.
func (c *Cart) AddItem(candidate LineItem) {
	if candidate.Type == enum.ItemTypeReadyMade {
		for i := range c.items {
			if c.items[i].mergeKeyMatches(candidate) {
				c.items[i].Quantity += candidate.Quantity
				return
			}
		}
	}
	c.items = append(c.items, candidate)
}

// UpdateQuantity changes the quantity of the ready-made line at index.
// Custom lines are quantity-locked; requests against them are rejected
// without touching the cart.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemIndexOutOfRange
	}
	if c.items[index].Type == enum.ItemTypeCustom {
		return ErrCustomQuantityLocked
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.items[index].Quantity = quantity
	return nil
}

// RemoveItem removes the line at index. Remaining lines keep their
// insertion order; nothing is renumbered or merged.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemIndexOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// SetDiscount replaces the manual discount.
func (c *Cart) SetDiscount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeDiscount, amount)
	}
	c.discount = amount
	return nil
}

// StackDiscounts is the promotion stacking policy: a promotional
// discount adds to whatever manual discount is already applied rather
// than replacing it. Swapping the policy means swapping this function.
func StackDiscounts(manual, promo decimal.Decimal) decimal.Decimal {
	return manual.Add(promo)
}

// ApplyPromotionDiscount stacks a promotion-supplied discount amount
// onto the current discount per StackDiscounts.
func (c *Cart) ApplyPromotionDiscount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeDiscount, amount)
	}
	c.discount = StackDiscounts(c.discount, amount)
	return nil
}

// ToggleTax flips whether tax is applied. The subtotal is unaffected;
// only the tax amount and total change.
func (c *Cart) ToggleTax(enabled bool) {
	c.taxEnabled = enabled
}

// TaxEnabled reports the current tax toggle.
func (c *Cart) TaxEnabled() bool {
	return c.taxEnabled
}

// Subtotal is the sum of every line total.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// TaxAmount is subtotal x TaxRate when the toggle is on, else zero.
func (c *Cart) TaxAmount() decimal.Decimal {
	if !c.taxEnabled {
		return decimal.Zero
	}
	return c.Subtotal().Mul(TaxRate)
}

// Discount returns the combined manual plus promotional discount.
func (c *Cart) Discount() decimal.Decimal {
	return c.discount
}

// Total is subtotal - discount + tax, derived on every call.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.discount).Add(c.TaxAmount())
}

// Items returns a copy of the line sequence in display order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear drops every line and resets the discount. The tax toggle is
// left as the cashier set it.
func (c *Cart) Clear() {
	c.items = nil
	c.discount = decimal.Zero
}
