package checkout

import "errors"

var (
	// -- Line items --
	ErrInvalidLineItem      = errors.New("invalid line item")
	ErrItemIndexOutOfRange  = errors.New("line item index out of range")
	ErrCustomQuantityLocked = errors.New("custom item quantity cannot be changed")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")

	// -- Discounts --
	ErrNegativeDiscount = errors.New("discount cannot be negative")

	// -- Amount entry --
	ErrInvalidKeypadToken  = errors.New("invalid keypad token")
	ErrAmountLimitExceeded = errors.New("amount exceeds entry limit")
	ErrNoAmountEntered     = errors.New("must enter a valid amount")

	// -- Assembly --
	ErrDraftInvalid = errors.New("order draft failed validation")
)

// RuleViolation is a single user-facing validation failure. Validation
// collects every violated rule instead of stopping at the first one.
type RuleViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
