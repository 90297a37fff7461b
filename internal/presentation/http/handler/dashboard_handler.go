package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles back-office report HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles the headline numbers block
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// DailySales handles the daily sales chart series
func (h *DashboardHandler) DailySales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	points, err := h.dashboardService.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", points)
}

// TopProducts handles the best sellers table
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	products, err := h.dashboardService.GetTopProducts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", products)
}

// SalesByItemType handles the ready-made versus custom revenue split
func (h *DashboardHandler) SalesByItemType(c *gin.Context) {
	splits, err := h.dashboardService.GetSalesByItemType(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales by item type retrieved successfully", splits)
}

// SalesByPaymentMethod handles the payment method revenue split
func (h *DashboardHandler) SalesByPaymentMethod(c *gin.Context) {
	splits, err := h.dashboardService.GetSalesByPaymentMethod(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales by payment method retrieved successfully", splits)
}
