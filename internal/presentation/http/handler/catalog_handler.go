package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/request"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/response"
	"github.com/alnubras/pos-api/pkg/pagination"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Browse returns the catalog grouped by category for the terminal grid
func (h *CatalogHandler) Browse(c *gin.Context) {
	categories, err := h.catalogService.BrowseCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog retrieved successfully", categories)
}

// ListProducts handles listing products with pagination and search
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.catalogService.ListProducts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// GetProduct handles retrieving a single product with its models
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// CreateProduct handles adding a product to the catalog
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product name and price are required")
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		SKU:        req.SKU,
		Type:       req.Type,
		Price:      req.Price,
		Image:      req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// UpdateProduct handles updating a product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
		Active:     req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// DeleteProduct handles removing a product
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// AddModel handles attaching a customization model to a product
func (h *CatalogHandler) AddModel(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.AddModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Model name and price are required")
		return
	}

	model, err := h.catalogService.AddModel(c.Request.Context(), id, &service.AddModelInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Model added successfully", model)
}

// ListCategories handles listing catalog categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles adding a category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Category name is required")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name, req.SortOrder)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}
