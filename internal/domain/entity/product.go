package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// Product is a sellable catalog entry: either a stocked ready-made
// garment or a custom tailoring service priced per job.
type Product struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID *int64          `gorm:"index" json:"category_id,omitempty"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	SKU        string          `gorm:"size:100;uniqueIndex" json:"sku,omitempty"`
	Type       enum.ItemType   `gorm:"default:0" json:"type"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)" json:"-"`
	Image      *string         `gorm:"size:255" json:"image,omitempty"`
	Active     bool            `gorm:"default:true" json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category *Category      `gorm:"foreignKey:CategoryID" json:"-"`
	Models   []ProductModel `gorm:"foreignKey:ProductID" json:"models,omitempty"`
}

// MarshalJSON emits the price as a fixed 2-decimal string, matching the
// monetary wire contract used everywhere else.
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price string `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.Price.StringFixed(2),
	})
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ProductModel is a paid customization add-on offered for a product
// (collar style, cuff style and similar).
type ProductModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MarshalJSON emits the add-on price as a fixed 2-decimal string.
func (m ProductModel) MarshalJSON() ([]byte, error) {
	type Alias ProductModel
	return json.Marshal(&struct {
		Alias
		Price string `json:"price"`
	}{
		Alias: Alias(m),
		Price: m.Price.StringFixed(2),
	})
}

// TableName returns the table name for the ProductModel model
func (ProductModel) TableName() string {
	return "product_models"
}

// Category groups catalog products for the terminal's category tabs
type Category struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
