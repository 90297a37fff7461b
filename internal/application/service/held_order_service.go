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
)

// HeldOrderService parks and restores terminal drafts. Snapshots are
// immutable once stored; restoring one never mutates it.
type HeldOrderService struct {
	heldOrderRepo repository.HeldOrderRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
}

// NewHeldOrderService creates a new held order service
func NewHeldOrderService(
	heldOrderRepo repository.HeldOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *HeldOrderService {
	return &HeldOrderService{
		heldOrderRepo: heldOrderRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
	}
}

// HoldOrderInput represents the hold order input. Lines arrive the
// same way submissions do and are re-priced against the catalog.
type HoldOrderInput struct {
	CustomerID     int64
	Items          []OrderItemInput
	DiscountAmount string
	TaxEnabled     *bool
	PaymentMethod  enum.PaymentMethod
	PaymentTerms   enum.PaymentTerms
	Priority       enum.Priority
	DeliveryDate   *time.Time
	Notes          string
}

// Hold snapshots the submitted draft state and stores it
func (s *HeldOrderService) Hold(ctx context.Context, input *HoldOrderInput) (*entity.HeldOrder, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cannot hold an empty cart")
	}

	draft := checkout.NewDraft()
	draft.CustomerID = input.CustomerID
	draft.PaymentMethod = input.PaymentMethod
	draft.PaymentTerms = input.PaymentTerms
	draft.Priority = input.Priority
	draft.DeliveryDate = input.DeliveryDate
	draft.Notes = input.Notes

	if input.TaxEnabled != nil {
		draft.Cart.ToggleTax(*input.TaxEnabled)
	}

	builder := &cartBuilder{productRepo: s.productRepo}
	if violations := builder.build(ctx, draft, input.Items); len(violations) > 0 {
		return nil, apperror.NewValidationError(violations)
	}

	if input.DiscountAmount != "" {
		discount, err := decimal.NewFromString(input.DiscountAmount)
		if err != nil {
			return nil, apperror.NewBadRequestError("Discount must be a valid amount")
		}
		if err := draft.Cart.SetDiscount(discount); err != nil {
			return nil, apperror.NewBadRequestError("Discount cannot be negative")
		}
	}

	customerName, customerPhone := "Walk-in", ""
	if input.CustomerID > 0 {
		customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName, customerPhone = customer.Name, customer.Phone
	}

	snapshot := draft.Hold(customerName, customerPhone, time.Now())
	held := &entity.HeldOrder{
		ID:           snapshot.ID,
		CustomerName: snapshot.CustomerName,
		TotalAmount:  snapshot.TotalAmount,
		ItemCount:    len(snapshot.Items),
		Snapshot:     *snapshot,
	}
	if err := s.heldOrderRepo.Save(ctx, held); err != nil {
		return nil, err
	}
	return held, nil
}

// List returns every parked order, newest first
func (s *HeldOrderService) List(ctx context.Context) ([]entity.HeldOrder, error) {
	return s.heldOrderRepo.List(ctx)
}

// RestoredDraft is the terminal-ready state rebuilt from a snapshot.
// The amount entry always starts empty; payment is re-tendered.
type RestoredDraft struct {
	HeldOrderID    string                `json:"held_order_id"`
	CustomerID     int64                 `json:"customer_id,omitempty"`
	CustomerName   string                `json:"customer_name"`
	Items          []checkout.LineItem   `json:"items"`
	Subtotal       string                `json:"subtotal"`
	TaxAmount      string                `json:"tax_amount"`
	DiscountAmount string                `json:"discount_amount"`
	TotalAmount    string                `json:"total_amount"`
	TaxEnabled     bool                  `json:"tax_enabled"`
	PaymentMethod  enum.PaymentMethod    `json:"payment_method"`
	PaymentTerms   enum.PaymentTerms     `json:"payment_terms"`
	Priority       enum.Priority         `json:"priority"`
	DeliveryDate   *time.Time            `json:"delivery_date,omitempty"`
	Notes          string                `json:"notes,omitempty"`
}

// Restore rebuilds a draft from a held snapshot. The stored snapshot
// stays in place until the restored order is submitted or discarded.
func (s *HeldOrderService) Restore(ctx context.Context, id string) (*RestoredDraft, error) {
	held, err := s.heldOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if held == nil {
		return nil, apperror.NewNotFoundError("Held order")
	}

	draft, err := checkout.Restore(&held.Snapshot)
	if err != nil {
		return nil, apperror.NewBadRequestError("Held order snapshot is corrupt")
	}

	return &RestoredDraft{
		HeldOrderID:    held.ID,
		CustomerID:     draft.CustomerID,
		CustomerName:   held.Snapshot.CustomerName,
		Items:          draft.Cart.Items(),
		Subtotal:       draft.Cart.Subtotal().StringFixed(2),
		TaxAmount:      draft.Cart.TaxAmount().StringFixed(2),
		DiscountAmount: draft.Cart.Discount().StringFixed(2),
		TotalAmount:    draft.Cart.Total().StringFixed(2),
		TaxEnabled:     draft.Cart.TaxEnabled(),
		PaymentMethod:  draft.PaymentMethod,
		PaymentTerms:   draft.PaymentTerms,
		Priority:       draft.Priority,
		DeliveryDate:   draft.DeliveryDate,
		Notes:          draft.Notes,
	}, nil
}

// Delete discards a parked order
func (s *HeldOrderService) Delete(ctx context.Context, id string) error {
	held, err := s.heldOrderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if held == nil {
		return apperror.NewNotFoundError("Held order")
	}
	return s.heldOrderRepo.Delete(ctx, id)
}
