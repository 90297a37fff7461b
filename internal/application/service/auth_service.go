package service

import (
	"context"

	"github.com/alnubras/pos-api/internal/domain/entity"
	"github.com/alnubras/pos-api/internal/domain/repository"
	"github.com/alnubras/pos-api/pkg/apperror"
	"github.com/alnubras/pos-api/pkg/utils"
)

// AuthService signs terminal operators in with their code and PIN
type AuthService struct {
	cashierRepo repository.CashierRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(cashierRepo repository.CashierRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{cashierRepo: cashierRepo, jwtManager: jwtManager}
}

// LoginInput represents the login input
type LoginInput struct {
	Code string
	PIN  string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Cashier     *entity.Cashier
	AccessToken string
}

// Login authenticates a cashier and returns an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	cashier, err := s.cashierRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if cashier == nil || !cashier.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPIN(input.PIN, cashier.PINHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(cashier.ID, cashier.Name, cashier.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Cashier: cashier, AccessToken: token}, nil
}

// RegisterCashierInput represents the register cashier input
type RegisterCashierInput struct {
	Name string
	Code string
	PIN  string
	Role string
}

// RegisterCashier creates a new terminal operator
func (s *AuthService) RegisterCashier(ctx context.Context, input *RegisterCashierInput) (*entity.Cashier, error) {
	if len(input.PIN) < 4 {
		return nil, apperror.NewBadRequestError("PIN must be at least 4 digits")
	}

	existing, err := s.cashierRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Cashier code already in use")
	}

	hash, err := utils.HashPIN(input.PIN)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "cashier"
	}

	cashier := &entity.Cashier{
		Name:    input.Name,
		Code:    input.Code,
		PINHash: hash,
		Role:    role,
		Active:  true,
	}
	if err := s.cashierRepo.Create(ctx, cashier); err != nil {
		return nil, err
	}
	return cashier, nil
}

// GetCashier retrieves a cashier by ID
func (s *AuthService) GetCashier(ctx context.Context, id int64) (*entity.Cashier, error) {
	cashier, err := s.cashierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.NewNotFoundError("Cashier")
	}
	return cashier, nil
}
