package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/checkout"
	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/pkg/apperror"
	"github.com/alnubras/pos-api/pkg/pagination"
	"github.com/alnubras/pos-api/pkg/utils"
)

// OrderService rebuilds the terminal draft server-side against catalog
// prices and persists the submitted order. Client-sent totals are never
// trusted; everything is recomputed from the engine.
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	promotionRepo repository.PromotionRepository
	heldOrderRepo repository.HeldOrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	promotionRepo repository.PromotionRepository,
	heldOrderRepo repository.HeldOrderRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		promotionRepo: promotionRepo,
		heldOrderRepo: heldOrderRepo,
	}
}

// OrderItemInput represents one submitted line
type OrderItemInput struct {
	Type        enum.ItemType
	CatalogID   int64
	Quantity    int
	ModelID     *int64
	Measurement *checkout.Measurement
}

// NewCustomerInput creates a walk-in customer inline with the order
type NewCustomerInput struct {
	Name  string
	Phone string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CashierID      int64
	CustomerID     int64
	NewCustomer    *NewCustomerInput
	Items          []OrderItemInput
	DiscountAmount string
	TaxEnabled     *bool
	AmountTendered string
	PaymentMethod  enum.PaymentMethod
	PaymentTerms   enum.PaymentTerms
	Priority       enum.Priority
	DeliveryDate   *time.Time
	PromotionCode  string
	Notes          string
	HeldOrderID    string
}

// CreateOrder validates and persists a terminal submission. Validation
// is collect-all: the caller gets every field problem in one response.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.SalesOrder, error) {
	now := time.Now()
	var violations []apperror.FieldError

	customerID, verr := s.resolveCustomer(ctx, input)
	if verr != nil {
		violations = append(violations, *verr)
	}

	draft := checkout.NewDraft()
	draft.CustomerID = customerID
	draft.PaymentMethod = input.PaymentMethod
	draft.PaymentTerms = input.PaymentTerms
	draft.Priority = input.Priority
	draft.DeliveryDate = input.DeliveryDate
	draft.Notes = input.Notes

	if input.TaxEnabled != nil {
		draft.Cart.ToggleTax(*input.TaxEnabled)
	}

	builder := &cartBuilder{productRepo: s.productRepo}
	violations = append(violations, builder.build(ctx, draft, input.Items)...)

	if input.DiscountAmount != "" {
		discount, err := decimal.NewFromString(input.DiscountAmount)
		if err != nil {
			violations = append(violations, apperror.FieldError{
				Field: "discount_amount", Message: "Discount must be a valid amount",
			})
		} else if err := draft.Cart.SetDiscount(discount); err != nil {
			violations = append(violations, apperror.FieldError{
				Field: "discount_amount", Message: "Discount cannot be negative",
			})
		}
	}

	promoCode := ""
	if input.PromotionCode != "" {
		promo, err := s.promotionRepo.GetByCode(ctx, input.PromotionCode)
		if err != nil {
			return nil, err
		}
		if promo == nil || !promo.CurrentAt(now) {
			violations = append(violations, apperror.FieldError{
				Field: "promotion_code", Message: "Promotion code is not valid",
			})
		} else {
			if err := draft.Cart.ApplyPromotionDiscount(promo.DiscountFor(draft.Cart.Total())); err != nil {
				return nil, err
			}
			promoCode = promo.Code
		}
	}

	if err := draft.Tender.SetAmount(input.AmountTendered); err != nil {
		violations = append(violations, apperror.FieldError{
			Field: "amount_tendered", Message: "Tendered amount must be a valid amount",
		})
	}

	for _, v := range draft.Validate() {
		violations = append(violations, apperror.FieldError{Field: v.Field, Message: v.Message})
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidationError(dedupeFieldErrors(violations))
	}

	payload, err := draft.Assemble(now)
	if err != nil {
		return nil, apperror.ErrUnprocessable
	}

	total := draft.Cart.Total()
	entered := draft.Tender.Amount()
	paid := entered
	if paid.GreaterThan(total) {
		paid = total
	}

	order := &entity.SalesOrder{
		InvoiceNo:      utils.GenerateInvoiceNo(),
		CustomerID:     customerID,
		CashierID:      &input.CashierID,
		OrderDate:      now,
		Status:         enum.OrderStatusPending,
		Subtotal:       draft.Cart.Subtotal(),
		TaxAmount:      draft.Cart.TaxAmount(),
		DiscountAmount: draft.Cart.Discount(),
		TotalAmount:    total,
		AmountPaid:     paid,
		ChangeGiven:    draft.Tender.Change(total),
		BalanceDue:     total.Sub(paid),
		PaymentMethod:  payload.PaymentMethod,
		PaymentTerms:   payload.PaymentTerms,
		PaymentStatus:  payload.PaymentStatus,
		Priority:       payload.Priority,
		DueDate:        payload.DueDate,
		DeliveryDate:   payload.DeliveryDate,
		PromotionCode:  promoCode,
		Notes:          payload.Notes,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	items := make([]entity.SalesOrderItem, 0, draft.Cart.Len())
	for _, line := range draft.Cart.Items() {
		items = append(items, entity.SalesOrderItem{
			OrderID:     order.ID,
			CatalogID:   line.CatalogID,
			Type:        line.Type,
			Description: line.Description,
			SKU:         line.SKU,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ModelName:   line.ModelName,
			ModelPrice:  line.ModelPrice,
			LineTotal:   line.LineTotal(),
			Measurement: line.Measurement,
		})
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	// A submission that came from a parked draft consumes the snapshot
	if input.HeldOrderID != "" {
		_ = s.heldOrderRepo.Delete(ctx, input.HeldOrderID)
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// resolveCustomer returns the customer id for the submission, creating
// a walk-in customer when new_customer is supplied.
func (s *OrderService) resolveCustomer(ctx context.Context, input *CreateOrderInput) (int64, *apperror.FieldError) {
	if input.NewCustomer != nil {
		if input.NewCustomer.Name == "" {
			return 0, &apperror.FieldError{Field: "new_customer.name", Message: "Customer name is required"}
		}
		if input.NewCustomer.Phone != "" {
			existing, err := s.customerRepo.GetByPhone(ctx, input.NewCustomer.Phone)
			if err != nil {
				return 0, &apperror.FieldError{Field: "new_customer.phone", Message: "Could not look up customer by phone"}
			}
			if existing != nil {
				return existing.ID, nil
			}
		}
		customer := &entity.Customer{
			Name:   input.NewCustomer.Name,
			Phone:  input.NewCustomer.Phone,
			Status: "active",
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return 0, &apperror.FieldError{Field: "new_customer", Message: "Could not create customer"}
		}
		return customer.ID, nil
	}

	if input.CustomerID <= 0 {
		return 0, nil // draft validation reports the missing customer
	}
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil || customer == nil {
		return 0, &apperror.FieldError{Field: "customer_id", Message: "Customer not found"}
	}
	return customer.ID, nil
}

// dedupeFieldErrors keeps the first message reported for each field so
// engine-level and service-level checks do not double-report.
func dedupeFieldErrors(errs []apperror.FieldError) []apperror.FieldError {
	seen := make(map[string]bool, len(errs))
	out := make([]apperror.FieldError, 0, len(errs))
	for _, e := range errs {
		if seen[e.Field] {
			continue
		}
		seen[e.Field] = true
		out = append(out, e)
	}
	return out
}

// GetOrder retrieves an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*entity.SalesOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.SalesOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderStatus moves an order through the tailoring workflow.
// Delivered and cancelled orders are terminal.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, status enum.OrderStatus) error {
	if !status.IsValid() {
		return apperror.NewBadRequestError("Unknown order status")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.Status == enum.OrderStatusCancelled || order.Status == enum.OrderStatusDelivered {
		return apperror.NewBadRequestError("Order is already " + order.Status.String())
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// CancelOrder cancels an order
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.Status == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Order is already cancelled")
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled)
}

// GetDueOrders returns orders with an outstanding balance
func (s *OrderService) GetDueOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SalesOrder], error) {
	orders, total, err := s.orderRepo.GetDueOrders(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// PayDue records a payment towards an order's outstanding balance
func (s *OrderService) PayDue(ctx context.Context, orderID int64, amount string) (*entity.SalesOrder, error) {
	payment, err := decimal.NewFromString(amount)
	if err != nil || !payment.IsPositive() {
		return nil, apperror.NewBadRequestError("Payment must be a positive amount")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Cannot pay a cancelled order")
	}
	if !order.BalanceDue.IsPositive() {
		return nil, apperror.NewBadRequestError("Order has no outstanding balance")
	}

	if payment.GreaterThan(order.BalanceDue) {
		payment = order.BalanceDue
	}
	order.AmountPaid = order.AmountPaid.Add(payment)
	order.BalanceDue = order.BalanceDue.Sub(payment)
	order.PaymentStatus = checkout.PaymentStatusFor(order.AmountPaid, order.TotalAmount)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
