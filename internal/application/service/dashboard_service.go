package service

import (
	"context"

	"github.com/alnubras/pos-api/internal/domain/repository"
)

// DashboardService aggregates the back-office report numbers
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
	}
}

// DashboardStats is the headline numbers block
type DashboardStats struct {
	TotalRevenue       string `json:"total_revenue"`
	OutstandingBalance string `json:"outstanding_balance"`
	TotalOrders        int64  `json:"total_orders"`
	TotalCustomers     int64  `json:"total_customers"`
	TotalProducts      int64  `json:"total_products"`
}

// GetStats returns the headline dashboard numbers
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	revenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.analyticsRepo.GetOutstandingBalance(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalRevenue:       revenue.StringFixed(2),
		OutstandingBalance: outstanding.StringFixed(2),
		TotalOrders:        orders,
		TotalCustomers:     customers,
		TotalProducts:      products,
	}, nil
}

// DailySalesPoint is one day on the sales chart
type DailySalesPoint struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
	Orders  int    `json:"orders"`
}

// GetDailySales returns the daily sales series for the last N days
func (s *DashboardService) GetDailySales(ctx context.Context, days int) ([]DailySalesPoint, error) {
	if days < 1 || days > 90 {
		days = 7
	}
	rows, err := s.analyticsRepo.GetDailySales(ctx, days)
	if err != nil {
		return nil, err
	}

	points := make([]DailySalesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, DailySalesPoint{
			Date:    row.Date.Format("2006-01-02"),
			Revenue: row.Revenue.StringFixed(2),
			Orders:  row.Orders,
		})
	}
	return points, nil
}

// TopProduct is one row of the top sellers table
type TopProduct struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	QuantitySold int    `json:"quantity_sold"`
	Revenue      string `json:"revenue"`
}

// GetTopProducts returns the best selling products by revenue
func (s *DashboardService) GetTopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}
	rows, err := s.analyticsRepo.GetTopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}

	products := make([]TopProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, TopProduct{
			ProductID:    row.ProductID,
			Name:         row.ProductName,
			SKU:          row.ProductSKU,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue.StringFixed(2),
		})
	}
	return products, nil
}

// SalesSplit is one slice of a revenue breakdown
type SalesSplit struct {
	Label string `json:"label"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// GetSalesByItemType splits revenue between ready-made and custom work
func (s *DashboardService) GetSalesByItemType(ctx context.Context) ([]SalesSplit, error) {
	rows, err := s.analyticsRepo.GetSalesByItemType(ctx)
	if err != nil {
		return nil, err
	}

	splits := make([]SalesSplit, 0, len(rows))
	for _, row := range rows {
		splits = append(splits, SalesSplit{
			Label: row.ItemType,
			Total: row.TotalSales.StringFixed(2),
			Count: row.LineCount,
		})
	}
	return splits, nil
}

// GetSalesByPaymentMethod splits revenue across payment methods
func (s *DashboardService) GetSalesByPaymentMethod(ctx context.Context) ([]SalesSplit, error) {
	rows, err := s.analyticsRepo.GetSalesByPaymentMethod(ctx)
	if err != nil {
		return nil, err
	}

	splits := make([]SalesSplit, 0, len(rows))
	for _, row := range rows {
		splits = append(splits, SalesSplit{
			Label: row.PaymentMethod,
			Total: row.TotalSales.StringFixed(2),
			Count: row.OrderCount,
		})
	}
	return splits, nil
}
