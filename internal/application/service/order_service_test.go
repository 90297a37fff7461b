package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/enum"
	"github.com/alnubras/pos-api/pkg/apperror"
)

func newOrderServiceWithMocks() (*OrderService, *MockOrderRepository, *MockOrderItemRepository, *MockProductRepository, *MockCustomerRepository, *MockPromotionRepository, *MockHeldOrderRepository) {
	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockOrderItemRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	promoRepo := new(MockPromotionRepository)
	heldRepo := new(MockHeldOrderRepository)
	svc := NewOrderService(orderRepo, itemRepo, productRepo, customerRepo, promoRepo, heldRepo)
	return svc, orderRepo, itemRepo, productRepo, customerRepo, promoRepo, heldRepo
}

func TestCreateOrder_RecomputesTotalsFromCatalog(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, itemRepo, productRepo, customerRepo, _, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByID", ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Ahmed"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SalesOrder).ID = 42
	}).Return(nil)
	itemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.SalesOrderItem")).Return(nil)
	orderRepo.On("GetWithItems", ctx, int64(42)).Return(&entity.SalesOrder{ID: 42}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		CustomerID:     7,
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 2}},
		AmountTendered: "210",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.NoError(t, err)

	// 2 x 100.00 plus 5% tax, fully tendered
	created := orderRepo.Calls[0].Arguments.Get(1).(*entity.SalesOrder)
	assert.Equal(t, "200.00", created.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", created.TaxAmount.StringFixed(2))
	assert.Equal(t, "210.00", created.TotalAmount.StringFixed(2))
	assert.Equal(t, "210.00", created.AmountPaid.StringFixed(2))
	assert.True(t, created.BalanceDue.IsZero())
	assert.Equal(t, enum.PaymentStatusCompleted, created.PaymentStatus)
	assert.NotEmpty(t, created.InvoiceNo)

	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

func TestCreateOrder_CapsPaidAtTotal(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, itemRepo, productRepo, customerRepo, _, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByID", ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Ahmed"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SalesOrder).ID = 42
	}).Return(nil)
	itemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.SalesOrderItem")).Return(nil)
	orderRepo.On("GetWithItems", ctx, int64(42)).Return(&entity.SalesOrder{ID: 42}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		CustomerID:     7,
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 1}},
		AmountTendered: "500",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.NoError(t, err)

	// Change is handed back in cash; the stored paid amount never
	// exceeds the order total.
	created := orderRepo.Calls[0].Arguments.Get(1).(*entity.SalesOrder)
	assert.Equal(t, "105.00", created.TotalAmount.StringFixed(2))
	assert.Equal(t, "105.00", created.AmountPaid.StringFixed(2))
	assert.True(t, created.BalanceDue.IsZero())
}

func TestCreateOrder_CollectsEveryViolation(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _, _, _, _ := newOrderServiceWithMocks()

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		DiscountAmount: "abc",
		AmountTendered: "xyz",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["customer_id"])
	assert.True(t, fields["items"])
	assert.True(t, fields["discount_amount"])
	assert.True(t, fields["amount_tendered"])

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_RejectsMultiQuantityCustomLine(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, productRepo, customerRepo, _, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByID", ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Ahmed"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{9}).Return([]entity.Product{customThobeFixture()}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		CustomerID:     7,
		Items:          []OrderItemInput{{Type: enum.ItemTypeCustom, CatalogID: 9, Quantity: 3}},
		AmountTendered: "100",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "items[0].quantity", appErr.Errors[0].Field)

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_CreatesWalkInCustomer(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, itemRepo, productRepo, customerRepo, _, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByPhone", ctx, "55501234").Return(nil, nil)
	customerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Customer).ID = 88
	}).Return(nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SalesOrder).ID = 43
	}).Return(nil)
	itemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.SalesOrderItem")).Return(nil)
	orderRepo.On("GetWithItems", ctx, int64(43)).Return(&entity.SalesOrder{ID: 43}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		NewCustomer:    &NewCustomerInput{Name: "Fahad", Phone: "55501234"},
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 1}},
		AmountTendered: "105",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.NoError(t, err)

	created := orderRepo.Calls[0].Arguments.Get(1).(*entity.SalesOrder)
	assert.Equal(t, int64(88), created.CustomerID)
	customerRepo.AssertExpectations(t)
}

func TestCreateOrder_ReusesCustomerMatchingPhone(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, itemRepo, productRepo, customerRepo, _, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByPhone", ctx, "55501234").Return(&entity.Customer{ID: 12, Name: "Fahad"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SalesOrder).ID = 44
	}).Return(nil)
	itemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.SalesOrderItem")).Return(nil)
	orderRepo.On("GetWithItems", ctx, int64(44)).Return(&entity.SalesOrder{ID: 44}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		NewCustomer:    &NewCustomerInput{Name: "Fahad", Phone: "55501234"},
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 1}},
		AmountTendered: "105",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.NoError(t, err)

	created := orderRepo.Calls[0].Arguments.Get(1).(*entity.SalesOrder)
	assert.Equal(t, int64(12), created.CustomerID)
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_PhoneLookupFailureDoesNotCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, productRepo, customerRepo, _, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByPhone", ctx, "55501234").Return(nil, errors.New("connection reset"))
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		NewCustomer:    &NewCustomerInput{Name: "Fahad", Phone: "55501234"},
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 1}},
		AmountTendered: "105",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.Error(t, err)

	fields := make(map[string]bool)
	for _, fe := range apperror.GetAppError(err).Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["new_customer.phone"])

	// A failed lookup must not fall through to Create: that is how the
	// same phone ends up on two customer rows.
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_AppliesPromotionOnTopOfDiscount(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, itemRepo, productRepo, customerRepo, promoRepo, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByID", ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Ahmed"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	promoRepo.On("GetByCode", ctx, "EID10").Return(&entity.Promotion{
		ID: 1, Code: "EID10", Kind: entity.PromotionKindPercent,
		Value: mustDecimal("10"), Active: true,
	}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SalesOrder).ID = 45
	}).Return(nil)
	itemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.SalesOrderItem")).Return(nil)
	orderRepo.On("GetWithItems", ctx, int64(45)).Return(&entity.SalesOrder{ID: 45}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		CustomerID:     7,
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 2}},
		DiscountAmount: "10.00",
		PromotionCode:  "EID10",
		AmountTendered: "100",
		PaymentMethod:  enum.PaymentMethodCard,
		PaymentTerms:   enum.PaymentTermsNet30,
		Priority:       enum.PriorityMedium,
	})
	require.NoError(t, err)

	// Subtotal 200.00, tax 10.00, manual discount 10.00 gives 200.00;
	// the 10% promotion stacks on that for 20.00 more off.
	created := orderRepo.Calls[0].Arguments.Get(1).(*entity.SalesOrder)
	assert.Equal(t, "30.00", created.DiscountAmount.StringFixed(2))
	assert.Equal(t, "180.00", created.TotalAmount.StringFixed(2))
	assert.Equal(t, "100.00", created.AmountPaid.StringFixed(2))
	assert.Equal(t, "80.00", created.BalanceDue.StringFixed(2))
	assert.Equal(t, enum.PaymentStatusPartial, created.PaymentStatus)
	assert.Equal(t, "EID10", created.PromotionCode)
}

func TestCreateOrder_RejectsExpiredPromotion(t *testing.T) {
	ctx := context.Background()
	svc, _, _, productRepo, customerRepo, promoRepo, _ := newOrderServiceWithMocks()

	customerRepo.On("GetByID", ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Ahmed"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	promoRepo.On("GetByCode", ctx, "OLD").Return(&entity.Promotion{
		ID: 2, Code: "OLD", Kind: entity.PromotionKindFixed,
		Value: mustDecimal("5"), Active: false,
	}, nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		CustomerID:     7,
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 1}},
		PromotionCode:  "OLD",
		AmountTendered: "105",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "promotion_code", appErr.Errors[0].Field)
}

func TestCreateOrder_ConsumesHeldSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, itemRepo, productRepo, customerRepo, _, heldRepo := newOrderServiceWithMocks()

	customerRepo.On("GetByID", ctx, int64(7)).Return(&entity.Customer{ID: 7, Name: "Ahmed"}, nil)
	productRepo.On("GetByIDs", ctx, []int64{3}).Return([]entity.Product{kanduraFixture()}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.SalesOrder")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SalesOrder).ID = 46
	}).Return(nil)
	itemRepo.On("CreateBatch", ctx, mock.AnythingOfType("[]entity.SalesOrderItem")).Return(nil)
	orderRepo.On("GetWithItems", ctx, int64(46)).Return(&entity.SalesOrder{ID: 46}, nil)
	heldRepo.On("Delete", ctx, "held-1700000000000").Return(nil)

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{
		CashierID:      1,
		CustomerID:     7,
		Items:          []OrderItemInput{{Type: enum.ItemTypeReadyMade, CatalogID: 3, Quantity: 1}},
		AmountTendered: "105",
		PaymentMethod:  enum.PaymentMethodCash,
		PaymentTerms:   enum.PaymentTermsImmediate,
		Priority:       enum.PriorityMedium,
		HeldOrderID:    "held-1700000000000",
	})
	require.NoError(t, err)
	heldRepo.AssertExpectations(t)
}

func TestUpdateOrderStatus_TerminalStatesAreFinal(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _, _, _, _ := newOrderServiceWithMocks()

	orderRepo.On("GetByID", ctx, int64(5)).Return(&entity.SalesOrder{
		ID: 5, Status: enum.OrderStatusDelivered,
	}, nil)

	err := svc.UpdateOrderStatus(ctx, 5, enum.OrderStatusPending)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayDue_CapsPaymentAtBalance(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _, _, _, _ := newOrderServiceWithMocks()

	orderRepo.On("GetByID", ctx, int64(5)).Return(&entity.SalesOrder{
		ID:            5,
		Status:        enum.OrderStatusPending,
		TotalAmount:   mustDecimal("180.00"),
		AmountPaid:    mustDecimal("100.00"),
		BalanceDue:    mustDecimal("80.00"),
		PaymentStatus: enum.PaymentStatusPartial,
	}, nil)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.SalesOrder")).Return(nil)

	order, err := svc.PayDue(ctx, 5, "200.00")
	require.NoError(t, err)

	assert.Equal(t, "180.00", order.AmountPaid.StringFixed(2))
	assert.True(t, order.BalanceDue.IsZero())
	assert.Equal(t, enum.PaymentStatusCompleted, order.PaymentStatus)
}

func TestPayDue_RejectsSettledOrder(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _, _, _, _ := newOrderServiceWithMocks()

	orderRepo.On("GetByID", ctx, int64(5)).Return(&entity.SalesOrder{
		ID:            5,
		Status:        enum.OrderStatusReady,
		TotalAmount:   mustDecimal("180.00"),
		AmountPaid:    mustDecimal("180.00"),
		BalanceDue:    mustDecimal("0.00"),
		PaymentStatus: enum.PaymentStatusCompleted,
	}, nil)

	_, err := svc.PayDue(ctx, 5, "10.00")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
