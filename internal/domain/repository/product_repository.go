package repository

import (
	"context"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)
	ListByCategory(ctx context.Context) ([]entity.Category, error)
	GetModel(ctx context.Context, productID, modelID int64) (*entity.ProductModel, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
