package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/request"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/response"
)

// HeldOrderHandler handles parked order HTTP requests
type HeldOrderHandler struct {
	heldOrderService *service.HeldOrderService
}

// NewHeldOrderHandler creates a new held order handler
func NewHeldOrderHandler(heldOrderService *service.HeldOrderService) *HeldOrderHandler {
	return &HeldOrderHandler{heldOrderService: heldOrderService}
}

// Hold handles parking the current terminal draft
func (h *HeldOrderHandler) Hold(c *gin.Context) {
	var req request.HoldOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Items are required")
		return
	}

	input := &service.HoldOrderInput{
		CustomerID:     req.CustomerID,
		DiscountAmount: req.DiscountAmount,
		TaxEnabled:     req.TaxEnabled,
		PaymentMethod:  req.PaymentMethod,
		PaymentTerms:   req.PaymentTerms,
		Priority:       req.Priority,
		DeliveryDate:   req.DeliveryDate,
		Notes:          req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			Type:        item.Type,
			CatalogID:   item.CatalogID,
			Quantity:    item.Quantity,
			ModelID:     item.ModelID,
			Measurement: item.Measurement,
		})
	}

	held, err := h.heldOrderService.Hold(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order held successfully", held)
}

// List handles listing parked orders
func (h *HeldOrderHandler) List(c *gin.Context) {
	held, err := h.heldOrderService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Held orders retrieved successfully", held)
}

// Restore handles rebuilding a terminal draft from a parked order
func (h *HeldOrderHandler) Restore(c *gin.Context) {
	draft, err := h.heldOrderService.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Held order restored", draft)
}

// Delete handles discarding a parked order
func (h *HeldOrderHandler) Delete(c *gin.Context) {
	if err := h.heldOrderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Held order deleted", nil)
}
