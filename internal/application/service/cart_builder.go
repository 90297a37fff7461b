package service

import (
	"context"
	"fmt"

	"github.com/alnubras/pos-api/internal/checkout"
	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/pkg/apperror"
)

// cartBuilder resolves submitted lines against the catalog and loads
// them into a draft cart. Submission and hold share it so a parked
// order prices exactly like a submitted one.
type cartBuilder struct {
	productRepo repository.ProductRepository
}

func (b *cartBuilder) build(ctx context.Context, draft *checkout.Draft, inputs []OrderItemInput) []apperror.FieldError {
	var violations []apperror.FieldError

	if len(inputs) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.CatalogID)
	}
	products, err := b.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return []apperror.FieldError{{Field: "items", Message: "Could not load catalog items"}}
	}
	productMap := make(map[int64]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	for idx, in := range inputs {
		field := fmt.Sprintf("items[%d]", idx)

		product, exists := productMap[in.CatalogID]
		if !exists {
			violations = append(violations, apperror.FieldError{
				Field: field, Message: fmt.Sprintf("Catalog item %d not found", in.CatalogID),
			})
			continue
		}

		var model *checkout.ModelOption
		if in.ModelID != nil {
			found := false
			for _, m := range product.Models {
				if m.ID == *in.ModelID {
					model = &checkout.ModelOption{Name: m.Name, Price: m.Price}
					found = true
					break
				}
			}
			if !found {
				violations = append(violations, apperror.FieldError{
					Field: field + ".model_id", Message: "Model does not belong to this item",
				})
				continue
			}
		}

		catalogItem := checkout.CatalogItem{
			ID:    product.ID,
			Name:  product.Name,
			SKU:   product.SKU,
			Price: product.Price,
			Type:  product.Type,
		}

		if in.Type == enum.ItemTypeCustom || product.Type == enum.ItemTypeCustom {
			if in.Quantity > 1 {
				violations = append(violations, apperror.FieldError{
					Field: field + ".quantity", Message: "Custom items are submitted one per line",
				})
				continue
			}
			line, err := checkout.NewCustomItem(catalogItem, model, in.Measurement)
			if err != nil {
				violations = append(violations, apperror.FieldError{Field: field, Message: err.Error()})
				continue
			}
			draft.Cart.AddItem(line)
			continue
		}

		if in.Quantity < 1 {
			violations = append(violations, apperror.FieldError{
				Field: field + ".quantity", Message: "Quantity must be at least 1",
			})
			continue
		}
		line, err := checkout.NewReadyMadeItem(catalogItem, model)
		if err != nil {
			violations = append(violations, apperror.FieldError{Field: field, Message: err.Error()})
			continue
		}
		line.Quantity = in.Quantity
		draft.Cart.AddItem(line)
	}

	return violations
}
