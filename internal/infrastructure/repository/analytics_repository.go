package repository

import (
	"context"
	"time"

	"github.com/alnubras/pos-api/internal/domain/enum"
	domainRepo "github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.sku as product_sku,
			COALESCE(SUM(i.quantity), 0) as quantity_sold,
			COALESCE(SUM(i.line_total), 0) as revenue
		FROM sales_order_items i
		JOIN products p ON p.id = i.catalog_id
		JOIN sales_orders o ON o.id = i.order_id
		WHERE o.status <> ? AND o.deleted_at IS NULL
		GROUP BY p.id, p.name, p.sku
		ORDER BY revenue DESC
		LIMIT ?
	`, enum.OrderStatusCancelled, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue decimal.Decimal
			Orders  int
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total_amount), 0) as revenue, COUNT(id) as orders
			FROM sales_orders
			WHERE status <> ? AND deleted_at IS NULL
			AND order_date >= ? AND order_date < ?
		`, enum.OrderStatusCancelled, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    startOfDay,
			Revenue: row.Revenue,
			Orders:  row.Orders,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByItemType(ctx context.Context) ([]domainRepo.ItemTypeSalesResult, error) {
	var rows []struct {
		Type       enum.ItemType
		TotalSales decimal.Decimal
		LineCount  int
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.type as type,
			COALESCE(SUM(i.line_total), 0) as total_sales,
			COUNT(i.id) as line_count
		FROM sales_order_items i
		JOIN sales_orders o ON o.id = i.order_id
		WHERE o.status <> ? AND o.deleted_at IS NULL
		GROUP BY i.type
		ORDER BY total_sales DESC
	`, enum.OrderStatusCancelled).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.ItemTypeSalesResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.ItemTypeSalesResult{
			ItemType:   row.Type.String(),
			TotalSales: row.TotalSales,
			LineCount:  row.LineCount,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByPaymentMethod(ctx context.Context) ([]domainRepo.PaymentMethodSalesResult, error) {
	var rows []struct {
		PaymentMethod enum.PaymentMethod
		TotalSales    decimal.Decimal
		OrderCount    int
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COALESCE(SUM(total_amount), 0) as total_sales,
			COUNT(id) as order_count
		FROM sales_orders
		WHERE status <> ? AND deleted_at IS NULL
		GROUP BY payment_method
		ORDER BY total_sales DESC
	`, enum.OrderStatusCancelled).Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.PaymentMethodSalesResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.PaymentMethodSalesResult{
			PaymentMethod: row.PaymentMethod.String(),
			TotalSales:    row.TotalSales,
			OrderCount:    row.OrderCount,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales_orders
		WHERE status <> ? AND deleted_at IS NULL
	`, enum.OrderStatusCancelled).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetOutstandingBalance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(balance_due), 0)
		FROM sales_orders
		WHERE status <> ? AND deleted_at IS NULL
	`, enum.OrderStatusCancelled).Scan(&balance).Error

	return balance, err
}
