package request

// LoginRequest signs a cashier in with their code and PIN
type LoginRequest struct {
	Code string `json:"code" binding:"required"`
	PIN  string `json:"pin" binding:"required"`
}

// RegisterCashierRequest creates a new terminal operator
type RegisterCashierRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
	PIN  string `json:"pin" binding:"required"`
	Role string `json:"role"`
}
