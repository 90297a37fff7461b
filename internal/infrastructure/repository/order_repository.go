package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	domainRepo "github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new sales order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.SalesOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*entity.SalesOrder, error) {
	var order entity.SalesOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.SalesOrder, error) {
	var order entity.SalesOrder
	err := r.db.WithContext(ctx).First(&order, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id int64) (*entity.SalesOrder, error) {
	var order entity.SalesOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Cashier").
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.SalesOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.SalesOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.SalesOrder, int64, error) {
	var orders []entity.SalesOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalesOrder{})

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Customer").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(orderClause(params.SortBy, params.SortOrder)).
		Find(&orders).Error

	return orders, total, err
}

// sortableOrderColumns whitelists the columns a client may sort the
// order list by. Anything else interpolates into ORDER BY, so unknown
// values fall back to created_at instead of reaching the SQL string.
var sortableOrderColumns = map[string]bool{
	"created_at":   true,
	"order_date":   true,
	"total_amount": true,
	"due_date":     true,
}

func orderClause(sortBy, sortOrder string) string {
	if !sortableOrderColumns[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}

func (r *orderRepository) GetDueOrders(ctx context.Context, params *pagination.PaginationParams) ([]entity.SalesOrder, int64, error) {
	var orders []entity.SalesOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalesOrder{}).
		Where("balance_due > 0 AND status <> ?", enum.OrderStatusCancelled)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Customer").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("due_date ASC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.SalesOrder{}).
		Where("status <> ?", enum.OrderStatusCancelled).
		Count(&total).Error
	return total, err
}

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository creates a new order item repository
func NewOrderItemRepository(db *gorm.DB) domainRepo.OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) CreateBatch(ctx context.Context, items []entity.SalesOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepository) GetByOrderID(ctx context.Context, orderID int64) ([]entity.SalesOrderItem, error) {
	var items []entity.SalesOrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *orderItemRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Delete(&entity.SalesOrderItem{}, "order_id = ?", orderID).Error
}
