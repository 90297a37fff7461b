package repository

import (
	"context"

	"github.com/alnubras/pos-api/internal/domain/entity"
)

// PromotionRepository defines the interface for promotion data operations
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByCode(ctx context.Context, code string) (*entity.Promotion, error)
	List(ctx context.Context) ([]entity.Promotion, error)
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id int64) error
}
