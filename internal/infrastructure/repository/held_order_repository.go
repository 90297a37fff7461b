package repository

import (
	"context"
	"errors"

	"github.com/alnubras/pos-api/internal/domain/entity"
	domainRepo "github.com/alnubras/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type heldOrderRepository struct {
	db *gorm.DB
}

// NewHeldOrderRepository creates a new held order repository
func NewHeldOrderRepository(db *gorm.DB) domainRepo.HeldOrderRepository {
	return &heldOrderRepository{db: db}
}

func (r *heldOrderRepository) Save(ctx context.Context, held *entity.HeldOrder) error {
	return r.db.WithContext(ctx).Create(held).Error
}

func (r *heldOrderRepository) GetByID(ctx context.Context, id string) (*entity.HeldOrder, error) {
	var held entity.HeldOrder
	err := r.db.WithContext(ctx).First(&held, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &held, err
}

func (r *heldOrderRepository) List(ctx context.Context) ([]entity.HeldOrder, error) {
	var held []entity.HeldOrder
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&held).Error
	return held, err
}

func (r *heldOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.HeldOrder{}, "id = ?", id).Error
}
