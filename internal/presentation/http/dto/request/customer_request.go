package request

import "github.com/alnubras/pos-api/internal/checkout"

// CreateCustomerRequest creates a customer record
type CreateCustomerRequest struct {
	Name        string                `json:"name" binding:"required"`
	Phone       string                `json:"phone"`
	Email       *string               `json:"email,omitempty"`
	Address     *string               `json:"address,omitempty"`
	Measurement *checkout.Measurement `json:"measurement,omitempty"`
}

// UpdateCustomerRequest updates a customer record. Nil fields are left
// unchanged.
type UpdateCustomerRequest struct {
	Name        *string               `json:"name,omitempty"`
	Phone       *string               `json:"phone,omitempty"`
	Email       *string               `json:"email,omitempty"`
	Status      *string               `json:"status,omitempty"`
	Address     *string               `json:"address,omitempty"`
	Measurement *checkout.Measurement `json:"measurement,omitempty"`
}
