package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/pkg/apperror"
)

func TestCreateProduct_WithImage(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewCatalogService(productRepo, categoryRepo)

	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:  "Emirati Kandura",
		SKU:   "KAN-001",
		Type:  enum.ItemTypeReadyMade,
		Price: "100.00",
		Image: "kandura.png",
	})
	require.NoError(t, err)

	require.NotNil(t, product.Image)
	assert.Equal(t, "kandura.png", *product.Image)
	assert.True(t, product.Active)
}

func TestCreateProduct_WithoutImage(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewCatalogService(productRepo, categoryRepo)

	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:  "Emirati Kandura",
		Type:  enum.ItemTypeReadyMade,
		Price: "100.00",
	})
	require.NoError(t, err)

	assert.Nil(t, product.Image)
	assert.NotEmpty(t, product.SKU)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(new(MockProductRepository), new(MockCategoryRepository))

	_, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:  "Emirati Kandura",
		Type:  enum.ItemTypeReadyMade,
		Price: "-5.00",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateProduct_PatchesImage(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewCatalogService(productRepo, categoryRepo)

	productRepo.On("GetByID", ctx, int64(3)).Return(&entity.Product{
		ID: 3, Name: "Emirati Kandura", SKU: "KAN-001",
		Type: enum.ItemTypeReadyMade, Price: mustDecimal("100.00"), Active: true,
	}, nil)
	productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	image := "kandura-v2.png"
	product, err := svc.UpdateProduct(ctx, 3, &UpdateProductInput{Image: &image})
	require.NoError(t, err)

	require.NotNil(t, product.Image)
	assert.Equal(t, "kandura-v2.png", *product.Image)
	assert.Equal(t, "Emirati Kandura", product.Name)
}

func TestUpdateProduct_LeavesUnsetFieldsAlone(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewCatalogService(productRepo, categoryRepo)

	image := "kandura.png"
	productRepo.On("GetByID", ctx, int64(3)).Return(&entity.Product{
		ID: 3, Name: "Emirati Kandura", SKU: "KAN-001",
		Type: enum.ItemTypeReadyMade, Price: mustDecimal("100.00"),
		Image: &image, Active: true,
	}, nil)
	productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	name := "Emirati Kandura Premium"
	product, err := svc.UpdateProduct(ctx, 3, &UpdateProductInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Emirati Kandura Premium", product.Name)
	require.NotNil(t, product.Image)
	assert.Equal(t, "kandura.png", *product.Image)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	svc := NewCatalogService(productRepo, new(MockCategoryRepository))

	productRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

	name := "Ghost"
	_, err := svc.UpdateProduct(ctx, 99, &UpdateProductInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
