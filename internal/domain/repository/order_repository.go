package repository

import (
	"context"
	"time"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/pkg/pagination"
)

// OrderRepository defines the interface for sales order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.SalesOrder) error
	GetByID(ctx context.Context, id int64) (*entity.SalesOrder, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.SalesOrder, error)
	GetWithItems(ctx context.Context, id int64) (*entity.SalesOrder, error)
	Update(ctx context.Context, order *entity.SalesOrder) error
	UpdateStatus(ctx context.Context, id int64, status enum.OrderStatus) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.SalesOrder, int64, error)
	GetDueOrders(ctx context.Context, params *pagination.PaginationParams) ([]entity.SalesOrder, int64, error)
	Count(ctx context.Context) (int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	CustomerID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// OrderItemRepository defines the interface for order line data operations
type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SalesOrderItem) error
	GetByOrderID(ctx context.Context, orderID int64) ([]entity.SalesOrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
