package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alnubras/pos-api/internal/domain/enum"
)

// entryCapMultiplier guards against fat-finger entry: an append that
// would push the amount past this multiple of the order total is
// rejected and the previous entry kept.
var entryCapMultiplier = decimal.NewFromInt(10)

// Tender is the keypad-driven amount-tendered entry. The raw string
// keeps an empty-string sentinel so "nothing typed" stays distinct from
// "typed zero"; everything else (amount, payment status, change) is
// derived from it at read time rather than stored as state.
type Tender struct {
	raw string
}

// Raw returns the string exactly as typed.
func (t *Tender) Raw() string {
	return t.raw
}

// IsEmpty reports whether nothing has been typed yet.
func (t *Tender) IsEmpty() bool {
	return t.raw == ""
}

// AppendDigit concatenates one keypad token ("0"-"9", "00" or ".") onto
// the entry. The append is rejected, leaving the prior entry intact,
// when the token is not a keypad token, the result no longer parses, or
// the parsed amount exceeds ten times the order total.
func (t *Tender) AppendDigit(token string, total decimal.Decimal) error {
	if !validKeypadToken(token) {
		return ErrInvalidKeypadToken
	}
	if token == "." && strings.Contains(t.raw, ".") {
		return ErrInvalidKeypadToken
	}
	candidate := t.raw + token
	amount, err := parseAmount(candidate)
	if err != nil {
		return ErrInvalidKeypadToken
	}
	if amount.GreaterThan(total.Mul(entryCapMultiplier)) {
		return ErrAmountLimitExceeded
	}
	t.raw = candidate
	return nil
}

// SetAmount replaces the entry with an already-formed amount string.
// Submissions arrive with the final amount rather than keystrokes; the
// string must still parse the way the keypad would have produced it.
func (t *Tender) SetAmount(raw string) error {
	if raw == "" {
		t.raw = ""
		return nil
	}
	if _, err := parseAmount(raw); err != nil {
		return ErrInvalidKeypadToken
	}
	t.raw = raw
	return nil
}

// Clear resets the entry to the empty sentinel.
func (t *Tender) Clear() {
	t.raw = ""
}

// Amount parses the current entry. An empty entry is zero.
func (t *Tender) Amount() decimal.Decimal {
	amount, err := parseAmount(t.raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Commit is the "Enter" action: it only checks that a positive amount
// has been entered. The authoritative payment status is always derived
// from the amount against the total at read time, never from a stored
// transition.
func (t *Tender) Commit() error {
	if !t.Amount().IsPositive() {
		return ErrNoAmountEntered
	}
	return nil
}

// Status derives the payment status of the entry against a total.
func (t *Tender) Status(total decimal.Decimal) enum.PaymentStatus {
	return PaymentStatusFor(t.Amount(), total)
}

// Change is the amount returned to the customer: max(0, entered-total).
func (t *Tender) Change(total decimal.Decimal) decimal.Decimal {
	change := t.Amount().Sub(total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// PaymentStatusFor maps a tendered amount against a total: zero means
// no payment, anything short of the total is partial, the total or more
// is completed. Submission and the live keypad both derive status with
// exactly this rule.
func PaymentStatusFor(entered, total decimal.Decimal) enum.PaymentStatus {
	switch {
	case entered.IsZero() || entered.IsNegative():
		return enum.PaymentStatusNone
	case entered.GreaterThanOrEqual(total):
		return enum.PaymentStatusCompleted
	default:
		return enum.PaymentStatusPartial
	}
}

func validKeypadToken(token string) bool {
	switch token {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "00", ".":
		return true
	}
	return false
}

// parseAmount interprets a keypad string the way the terminal display
// does: empty means zero, a leading dot reads as "0." and a trailing
// dot as the number typed so far.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	s := strings.TrimSuffix(raw, ".")
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return decimal.NewFromString(s)
}
