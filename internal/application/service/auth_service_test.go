package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/pkg/apperror"
	"github.com/alnubras/pos-api/pkg/utils"
)

func newAuthServiceWithMocks() (*AuthService, *MockCashierRepository) {
	cashierRepo := new(MockCashierRepository)
	svc := NewAuthService(cashierRepo, utils.NewJWTManager("test-secret", time.Hour))
	return svc, cashierRepo
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc, cashierRepo := newAuthServiceWithMocks()

	hash, err := utils.HashPIN("1234")
	require.NoError(t, err)
	cashierRepo.On("GetByCode", ctx, "1001").Return(&entity.Cashier{
		ID: 1, Code: "1001", Name: "Ahmed", Role: "cashier", PINHash: hash, Active: true,
	}, nil)

	out, err := svc.Login(ctx, &LoginInput{Code: "1001", PIN: "1234"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "Ahmed", out.Cashier.Name)
}

func TestLogin_WrongPIN(t *testing.T) {
	ctx := context.Background()
	svc, cashierRepo := newAuthServiceWithMocks()

	hash, err := utils.HashPIN("1234")
	require.NoError(t, err)
	cashierRepo.On("GetByCode", ctx, "1001").Return(&entity.Cashier{
		ID: 1, Code: "1001", PINHash: hash, Active: true,
	}, nil)

	_, err = svc.Login(ctx, &LoginInput{Code: "1001", PIN: "9999"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_InactiveCashier(t *testing.T) {
	ctx := context.Background()
	svc, cashierRepo := newAuthServiceWithMocks()

	cashierRepo.On("GetByCode", ctx, "1001").Return(&entity.Cashier{
		ID: 1, Code: "1001", Active: false,
	}, nil)

	_, err := svc.Login(ctx, &LoginInput{Code: "1001", PIN: "1234"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_UnknownCode(t *testing.T) {
	ctx := context.Background()
	svc, cashierRepo := newAuthServiceWithMocks()

	cashierRepo.On("GetByCode", ctx, "9999").Return(nil, nil)

	_, err := svc.Login(ctx, &LoginInput{Code: "9999", PIN: "1234"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRegisterCashier_ShortPIN(t *testing.T) {
	ctx := context.Background()
	svc, cashierRepo := newAuthServiceWithMocks()

	_, err := svc.RegisterCashier(ctx, &RegisterCashierInput{Name: "Ahmed", Code: "1002", PIN: "12"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	cashierRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCashier_HashesPINAndDefaultsRole(t *testing.T) {
	ctx := context.Background()
	svc, cashierRepo := newAuthServiceWithMocks()

	cashierRepo.On("GetByCode", ctx, "1002").Return(nil, nil)
	cashierRepo.On("Create", ctx, mock.AnythingOfType("*entity.Cashier")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Cashier).ID = 2
	}).Return(nil)

	cashier, err := svc.RegisterCashier(ctx, &RegisterCashierInput{Name: "Fahad", Code: "1002", PIN: "4321"})
	require.NoError(t, err)

	assert.Equal(t, "cashier", cashier.Role)
	assert.NotEqual(t, "4321", cashier.PINHash)
	assert.True(t, utils.CheckPIN("4321", cashier.PINHash))
	assert.True(t, cashier.Active)
}
