package repository

import (
	"context"

	"github.com/alnubras/pos-api/internal/domain/entity"
)

// HeldOrderRepository defines the interface for the held-order store.
// Snapshots are written once per hold and only ever read or deleted
// afterwards.
type HeldOrderRepository interface {
	Save(ctx context.Context, held *entity.HeldOrder) error
	GetByID(ctx context.Context, id string) (*entity.HeldOrder, error)
	List(ctx context.Context) ([]entity.HeldOrder, error)
	Delete(ctx context.Context, id string) error
}
