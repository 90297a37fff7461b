package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnubras/pos-api/internal/config"
	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/repository"
	applog "github.com/alnubras/pos-api/internal/logger"
	"github.com/alnubras/pos-api/pkg/apperror"
	"github.com/alnubras/pos-api/pkg/printer"
)

// PrinterService formats order receipts and sends them to the thermal
// printer. When no printer is configured the formatted receipt is still
// returned so the terminal can render it on screen.
type PrinterService struct {
	printer   printer.Printer
	orderRepo repository.OrderRepository
	pos       config.POSConfig
	width     int
	enabled   bool
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, orderRepo repository.OrderRepository, pos config.POSConfig, prn config.PrinterConfig) *PrinterService {
	width := prn.Width
	if width <= 0 {
		width = 42
	}
	return &PrinterService{
		printer:   p,
		orderRepo: orderRepo,
		pos:       pos,
		width:     width,
		enabled:   prn.Enabled,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Enabled   bool `json:"enabled"`
	Connected bool `json:"connected"`
}

// GetStatus returns printer connection status
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Enabled:   s.enabled,
		Connected: s.printer.IsConnected(),
	}
}

// PrintOrderReceipt fetches an order with its lines and prints it
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID int64) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := s.buildReceipt(order)
	if !s.enabled {
		return receipt, nil
	}

	data := FormatReceipt(receipt, s.width)
	if err := s.printer.Print(data); err != nil {
		applog.FromCtx(ctx).Warn("receipt print failed",
			zap.Int64("order_id", orderID), zap.Error(err))
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *PrinterService) buildReceipt(order *entity.SalesOrder) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.pos.StoreName,
			Address:   s.pos.StoreAddress,
			Phone:     s.pos.StorePhone,
		},
		InvoiceNo: order.InvoiceNo,
		Date:      order.OrderDate.Format("2006-01-02 15:04"),
		Payment:   order.PaymentMethod.String(),
		Subtotal:  order.Subtotal.StringFixed(2),
		Tax:       order.TaxAmount.StringFixed(2),
		Discount:  order.DiscountAmount.StringFixed(2),
		Total:     order.TotalAmount.StringFixed(2),
		Paid:      order.AmountPaid.StringFixed(2),
		Balance:   order.BalanceDue.StringFixed(2),
	}

	if order.Cashier != nil {
		receipt.Cashier = order.Cashier.Name
	}
	if order.Customer != nil {
		receipt.Customer = order.Customer.Name
	}
	if order.ChangeGiven.IsPositive() {
		receipt.Change = order.ChangeGiven.StringFixed(2)
	}
	if order.BalanceDue.IsPositive() {
		receipt.DueDate = order.DueDate.Format("2006-01-02")
	}
	if order.DeliveryDate != nil {
		receipt.DeliveryDate = order.DeliveryDate.Format("2006-01-02")
	}

	for _, line := range order.Items {
		name := line.Description
		if line.ModelName != "" {
			name = name + " (" + line.ModelName + ")"
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.Add(line.ModelPrice).StringFixed(2),
			Total:     line.LineTotal.StringFixed(2),
		})
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.Payment != "" {
		doc.KeyValue("Payment:", r.Payment)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Total)
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", r.Subtotal)
	if r.Discount != "0.00" {
		doc.KeyValue("Discount:", "-"+r.Discount)
	}
	if r.Tax != "0.00" {
		doc.KeyValue("VAT:", r.Tax)
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total).
		SetBold(false)

	doc.KeyValue("Paid:", r.Paid)
	if r.Change != "" {
		doc.KeyValue("Change:", r.Change)
	}
	if r.Balance != "0.00" {
		doc.KeyValue("Balance:", r.Balance)
		if r.DueDate != "" {
			doc.KeyValue("Due by:", r.DueDate)
		}
	}
	if r.DeliveryDate != "" {
		doc.KeyValue("Delivery:", r.DeliveryDate)
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
