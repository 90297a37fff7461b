package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult represents a product's sales performance
type TopProductResult struct {
	ProductID    int64
	ProductName  string
	ProductSKU   string
	QuantitySold int
	Revenue      decimal.Decimal
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue decimal.Decimal
	Orders  int
}

// ItemTypeSalesResult splits revenue between ready-made and custom lines
type ItemTypeSalesResult struct {
	ItemType   string
	TotalSales decimal.Decimal
	LineCount  int
}

// PaymentMethodSalesResult aggregates revenue per payment method
type PaymentMethodSalesResult struct {
	PaymentMethod string
	TotalSales    decimal.Decimal
	OrderCount    int
}

// AnalyticsRepository defines interface for report/aggregation queries
type AnalyticsRepository interface {
	// GetTopProducts returns top selling products by revenue
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetSalesByItemType splits revenue between ready-made and custom work
	GetSalesByItemType(ctx context.Context) ([]ItemTypeSalesResult, error)

	// GetSalesByPaymentMethod aggregates revenue per payment method
	GetSalesByPaymentMethod(ctx context.Context) ([]PaymentMethodSalesResult, error)

	// GetTotalRevenue returns total revenue from non-cancelled orders
	GetTotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// GetOutstandingBalance returns the sum of unpaid balances
	GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error)
}
