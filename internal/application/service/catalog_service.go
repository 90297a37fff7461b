package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/pkg/apperror"
	"github.com/alnubras/pos-api/pkg/pagination"
	"github.com/alnubras/pos-api/pkg/utils"
)

// CatalogService handles the product catalog the terminal sells from
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	CategoryID *int64
	Name       string
	SKU        string
	Type       enum.ItemType
	Price      string
	Image      string
}

// CreateProduct creates a new catalog product
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, apperror.NewBadRequestError("Price must be a non-negative amount")
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Item type must be ready-made or custom")
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU("PRD")
	}

	product := &entity.Product{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		SKU:        sku,
		Type:       input.Type,
		Price:      price,
		Active:     true,
	}
	if input.Image != "" {
		product.Image = &input.Image
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product with its models
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	CategoryID *int64
	Name       *string
	Price      *string
	Image      *string
	Active     *bool
}

// UpdateProduct updates an existing product
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		price, err := decimal.NewFromString(*input.Price)
		if err != nil || price.IsNegative() {
			return nil, apperror.NewBadRequestError("Price must be a non-negative amount")
		}
		product.Price = price
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists active products with pagination and search
func (s *CatalogService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// BrowseCatalog returns the full catalog grouped by category, the shape
// the terminal's item grid renders from
func (s *CatalogService) BrowseCatalog(ctx context.Context) ([]entity.Category, error) {
	return s.productRepo.ListByCategory(ctx)
}

// ListCategories lists all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory creates a new category
func (s *CatalogService) CreateCategory(ctx context.Context, name string, sortOrder int) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}
	category := &entity.Category{Name: name, SortOrder: sortOrder}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// AddModelInput represents a customization model added to a product
type AddModelInput struct {
	Name  string
	Price string
}

// AddModel attaches a customization model to a product
func (s *CatalogService) AddModel(ctx context.Context, productID int64, input *AddModelInput) (*entity.ProductModel, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, apperror.NewBadRequestError("Model price must be a non-negative amount")
	}

	model := entity.ProductModel{ProductID: productID, Name: input.Name, Price: price}
	product.Models = append(product.Models, model)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return &product.Models[len(product.Models)-1], nil
}
