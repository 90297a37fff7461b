package request

import "github.com/alnubras/pos-api/internal/domain/enum"

// CreateProductRequest adds a product to the catalog
type CreateProductRequest struct {
	CategoryID *int64        `json:"category_id,omitempty"`
	Name       string        `json:"name" binding:"required"`
	SKU        string        `json:"sku"`
	Type       enum.ItemType `json:"type"`
	Price      string        `json:"price" binding:"required"`
	Image      string        `json:"image"`
}

// UpdateProductRequest updates a catalog product. Nil fields are left
// unchanged.
type UpdateProductRequest struct {
	CategoryID *int64  `json:"category_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Price      *string `json:"price,omitempty"`
	Image      *string `json:"image,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// CreateCategoryRequest adds a catalog category
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// AddModelRequest attaches a customization model to a product
type AddModelRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}
