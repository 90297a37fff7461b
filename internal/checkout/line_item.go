package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// maxSKULen caps the SKU carried on a line item.
const maxSKULen = 15

// CatalogItem is the slice of a catalog product the engine needs to
// build a line item. Callers map their product records onto it.
type CatalogItem struct {
	ID    int64
	Name  string
	SKU   string
	Price decimal.Decimal
	Type  enum.ItemType
}

// ModelOption is a paid customization add-on applied to a product.
type ModelOption struct {
	Name  string
	Price decimal.Decimal
}

// LineItem is one cart entry. Ready-made lines are fungible and merge
// by catalog ID and model name; custom lines each represent a unique
// tailoring job, never merge, and keep quantity locked at 1.
type LineItem struct {
	Type        enum.ItemType `json:"type"`
	CatalogID   int64         `json:"catalog_id"`
	Description string        `json:"description"`
	SKU         string        `json:"sku,omitempty"`
	Quantity    int           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ModelName   string          `json:"model_name,omitempty"`
	ModelPrice  decimal.Decimal `json:"model_price"`
	Measurement *Measurement    `json:"measurement,omitempty"`
}

// NewReadyMadeItem builds a quantity-1 ready-made line. The cart is
// responsible for merging it into an existing line where one matches.
func NewReadyMadeItem(product CatalogItem, model *ModelOption) (LineItem, error) {
	return newLineItem(enum.ItemTypeReadyMade, product, model, nil)
}

// NewCustomItem builds a custom tailoring line. Each call produces a
// distinct entry; the measurement travels with the line.
func NewCustomItem(product CatalogItem, model *ModelOption, m *Measurement) (LineItem, error) {
	return newLineItem(enum.ItemTypeCustom, product, model, m)
}

func newLineItem(t enum.ItemType, product CatalogItem, model *ModelOption, m *Measurement) (LineItem, error) {
	if product.ID <= 0 {
		return LineItem{}, fmt.Errorf("%w: catalog id must be positive, got %d", ErrInvalidLineItem, product.ID)
	}
	if product.Price.IsNegative() {
		return LineItem{}, fmt.Errorf("%w: unit price cannot be negative", ErrInvalidLineItem)
	}

	sku := product.SKU
	if len(sku) > maxSKULen {
		sku = sku[:maxSKULen]
	}

	item := LineItem{
		Type:        t,
		CatalogID:   product.ID,
		Description: product.Name,
		SKU:         sku,
		Quantity:    1,
		UnitPrice:   product.Price,
		ModelPrice:  decimal.Zero,
		Measurement: m,
	}
	if model != nil {
		item.ModelName = model.Name
		item.ModelPrice = model.Price
	}
	return item, nil
}

// LineTotal is quantity x (unit price + model price). It is derived on
// every call; there is no stored total to go stale.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Add(li.ModelPrice).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// mergeKeyMatches reports whether a ready-made candidate collapses into
// this line. Custom lines never match anything.
func (li LineItem) mergeKeyMatches(other LineItem) bool {
	return li.Type == enum.ItemTypeReadyMade &&
		other.Type == enum.ItemTypeReadyMade &&
		li.CatalogID == other.CatalogID &&
		li.ModelName == other.ModelName
}
