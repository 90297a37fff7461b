package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/request"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/response"
	"github.com/alnubras/pos-api/pkg/pagination"
)

// OrderHandler handles sales order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles a terminal order submission
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid order payload")
		return
	}

	input := &service.CreateOrderInput{
		CashierID:      GetCashierID(c),
		CustomerID:     req.CustomerID,
		Items:          make([]service.OrderItemInput, 0, len(req.Items)),
		DiscountAmount: req.DiscountAmount,
		TaxEnabled:     req.TaxEnabled,
		AmountTendered: req.AmountTendered,
		PaymentMethod:  req.PaymentMethod,
		PaymentTerms:   req.PaymentTerms,
		Priority:       req.Priority,
		DeliveryDate:   req.DeliveryDate,
		PromotionCode:  req.PromotionCode,
		Notes:          req.Notes,
		HeldOrderID:    req.HeldOrderID,
	}
	if req.NewCustomer != nil {
		input.NewCustomer = &service.NewCustomerInput{
			Name:  req.NewCustomer.Name,
			Phone: req.NewCustomer.Phone,
		}
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

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := enum.ParseOrderStatus(statusStr)
		if err != nil {
			response.BadRequest(c, "Unknown order status")
			return
		}
		params.Status = &status
	}
	if customerStr := c.Query("customer_id"); customerStr != "" {
		customerID, err := strconv.ParseInt(customerStr, 10, 64)
		if err != nil || customerID <= 0 {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if from := c.Query("start_date"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.BadRequest(c, "start_date must be YYYY-MM-DD")
			return
		}
		params.StartDate = &t
	}
	if to := c.Query("end_date"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.BadRequest(c, "end_date must be YYYY-MM-DD")
			return
		}
		params.EndDate = &t
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving an order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles moving an order through the workflow
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", nil)
}

// Cancel handles cancelling an order
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", nil)
}

// Due handles listing orders with an outstanding balance
func (h *OrderHandler) Due(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.orderService.GetDueOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Due orders retrieved successfully", result)
}

// PayDue handles recording a payment against an outstanding balance
func (h *OrderHandler) PayDue(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.PayDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Amount is required")
		return
	}

	order, err := h.orderService.PayDue(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", order)
}
