package repository

import (
	"context"

	"github.com/alnubras/pos-api/internal/domain/entity"
)

// CashierRepository defines the interface for terminal operator lookups
type CashierRepository interface {
	Create(ctx context.Context, cashier *entity.Cashier) error
	GetByID(ctx context.Context, id int64) (*entity.Cashier, error)
	GetByCode(ctx context.Context, code string) (*entity.Cashier, error)
	List(ctx context.Context) ([]entity.Cashier, error)
}
