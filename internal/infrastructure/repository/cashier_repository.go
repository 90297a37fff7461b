package repository

import (
	"context"
	"errors"

	"github.com/alnubras/pos-api/internal/domain/entity"
	domainRepo "github.com/alnubras/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) domainRepo.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) Create(ctx context.Context, cashier *entity.Cashier) error {
	return r.db.WithContext(ctx).Create(cashier).Error
}

func (r *cashierRepository) GetByID(ctx context.Context, id int64) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) GetByCode(ctx context.Context, code string) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) List(ctx context.Context) ([]entity.Cashier, error) {
	var cashiers []entity.Cashier
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("name ASC").Find(&cashiers).Error
	return cashiers, err
}
