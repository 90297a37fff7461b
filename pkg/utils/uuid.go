package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID generates an opaque request identifier
func NewRequestID() string {
	return uuid.New().String()
}

// GenerateInvoiceNo generates a unique invoice number
func GenerateInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateSKU generates a catalog SKU with the given prefix
func GenerateSKU(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
