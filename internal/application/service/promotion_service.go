package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/pkg/apperror"
)

// PromotionService handles promo code management and application
type PromotionService struct {
	promotionRepo repository.PromotionRepository
}

// NewPromotionService creates a new promotion service
func NewPromotionService(promotionRepo repository.PromotionRepository) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo}
}

// CreatePromotionInput represents the create promotion input
type CreatePromotionInput struct {
	Code      string
	Kind      string
	Value     string
	StartsAt  *time.Time
	ExpiresAt *time.Time
}

// CreatePromotion creates a new promotion
func (s *PromotionService) CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error) {
	if input.Code == "" {
		return nil, apperror.NewBadRequestError("Promotion code is required")
	}
	if input.Kind != entity.PromotionKindPercent && input.Kind != entity.PromotionKindFixed {
		return nil, apperror.NewBadRequestError("Promotion kind must be percent or fixed")
	}
	value, err := decimal.NewFromString(input.Value)
	if err != nil || !value.IsPositive() {
		return nil, apperror.NewBadRequestError("Promotion value must be a positive amount")
	}

	existing, err := s.promotionRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Promotion code already exists")
	}

	promo := &entity.Promotion{
		Code:      input.Code,
		Kind:      input.Kind,
		Value:     value,
		Active:    true,
		StartsAt:  input.StartsAt,
		ExpiresAt: input.ExpiresAt,
	}
	if err := s.promotionRepo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// ListPromotions lists all promotions
func (s *PromotionService) ListPromotions(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

// AppliedPromotion is the terminal's answer when a code is applied to
// the current cart total
type AppliedPromotion struct {
	Code           string `json:"code"`
	Kind           string `json:"kind"`
	DiscountAmount string `json:"discount_amount"`
	NewTotal       string `json:"new_total"`
}

// Apply validates a code against the current cart total and returns
// the discount it grants. The discount stacks onto any manual discount
// already entered at the terminal.
func (s *PromotionService) Apply(ctx context.Context, code string, total string) (*AppliedPromotion, error) {
	cartTotal, err := decimal.NewFromString(total)
	if err != nil || cartTotal.IsNegative() {
		return nil, apperror.NewBadRequestError("Total must be a valid amount")
	}

	promo, err := s.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, apperror.NewNotFoundError("Promotion code")
	}
	if !promo.CurrentAt(time.Now()) {
		return nil, apperror.NewBadRequestError("Promotion code is not active")
	}

	discount := promo.DiscountFor(cartTotal)
	return &AppliedPromotion{
		Code:           promo.Code,
		Kind:           promo.Kind,
		DiscountAmount: discount.StringFixed(2),
		NewTotal:       cartTotal.Sub(discount).StringFixed(2),
	}, nil
}

// Deactivate turns a promotion off
func (s *PromotionService) Deactivate(ctx context.Context, id int64) error {
	promos, err := s.promotionRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range promos {
		if promos[i].ID == id {
			promos[i].Active = false
			return s.promotionRepo.Update(ctx, &promos[i])
		}
	}
	return apperror.NewNotFoundError("Promotion")
}
