package request

import "time"

// CreatePromotionRequest creates a promo code
type CreatePromotionRequest struct {
	Code      string     `json:"code" binding:"required"`
	Kind      string     `json:"kind" binding:"required"`
	Value     string     `json:"value" binding:"required"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ApplyPromotionRequest checks a code against the current cart total
type ApplyPromotionRequest struct {
	Code  string `json:"code" binding:"required"`
	Total string `json:"total" binding:"required"`
}
