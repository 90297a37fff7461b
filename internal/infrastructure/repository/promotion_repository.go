package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/alnubras/pos-api/internal/domain/entity"
	domainRepo "github.com/alnubras/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *gorm.DB) domainRepo.PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promo *entity.Promotion) error {
	promo.Code = strings.ToUpper(promo.Code)
	return r.db.WithContext(ctx).Create(promo).Error
}

func (r *promotionRepository) GetByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	var promo entity.Promotion
	err := r.db.WithContext(ctx).First(&promo, "code = ?", strings.ToUpper(code)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &promo, err
}

func (r *promotionRepository) List(ctx context.Context) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.db.WithContext(ctx).Order("code ASC").Find(&promos).Error
	return promos, err
}

func (r *promotionRepository) Update(ctx context.Context, promo *entity.Promotion) error {
	return r.db.WithContext(ctx).Save(promo).Error
}

func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Promotion{}, "id = ?", id).Error
}
