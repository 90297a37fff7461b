package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/request"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/response"
)

// PromotionHandler handles promotion HTTP requests
type PromotionHandler struct {
	promotionService *service.PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(promotionService *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// List handles listing promotions
func (h *PromotionHandler) List(c *gin.Context) {
	promos, err := h.promotionService.ListPromotions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotions retrieved successfully", promos)
}

// Create handles creating a promotion
func (h *PromotionHandler) Create(c *gin.Context) {
	var req request.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Code, kind and value are required")
		return
	}

	promo, err := h.promotionService.CreatePromotion(c.Request.Context(), &service.CreatePromotionInput{
		Code:      req.Code,
		Kind:      req.Kind,
		Value:     req.Value,
		StartsAt:  req.StartsAt,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Promotion created successfully", promo)
}

// Apply handles checking a code against the current cart total
func (h *PromotionHandler) Apply(c *gin.Context) {
	var req request.ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Code and total are required")
		return
	}

	applied, err := h.promotionService.Apply(c.Request.Context(), req.Code, req.Total)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion applied", applied)
}

// Deactivate handles turning a promotion off
func (h *PromotionHandler) Deactivate(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	if err := h.promotionService.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion deactivated", nil)
}
