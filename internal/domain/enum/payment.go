package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how the customer pays
type PaymentMethod int

const (
	PaymentMethodCash   PaymentMethod = 0
	PaymentMethodCard   PaymentMethod = 1
	PaymentMethodMobile PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCard:
		return "card"
	case PaymentMethodMobile:
		return "mobile"
	default:
		return "cash"
	}
}

func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodMobile
}

// ParsePaymentMethod parses the wire representation of a payment method
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentMethodCash, nil
	case "card":
		return PaymentMethodCard, nil
	case "mobile":
		return PaymentMethodMobile, nil
	}
	return 0, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}

// PaymentTerms controls when the balance falls due
type PaymentTerms int

const (
	PaymentTermsImmediate PaymentTerms = 0
	PaymentTermsNet7      PaymentTerms = 7
	PaymentTermsNet15     PaymentTerms = 15
	PaymentTermsNet30     PaymentTerms = 30
)

func (t PaymentTerms) String() string {
	switch t {
	case PaymentTermsNet7:
		return "net-7"
	case PaymentTermsNet15:
		return "net-15"
	case PaymentTermsNet30:
		return "net-30"
	default:
		return "immediate"
	}
}

func (t PaymentTerms) IsValid() bool {
	switch t {
	case PaymentTermsImmediate, PaymentTermsNet7, PaymentTermsNet15, PaymentTermsNet30:
		return true
	}
	return false
}

// DueInDays returns the number of calendar days until the balance is due
func (t PaymentTerms) DueInDays() int {
	return int(t)
}

// ParsePaymentTerms parses the wire representation of payment terms
func ParsePaymentTerms(s string) (PaymentTerms, error) {
	switch s {
	case "immediate":
		return PaymentTermsImmediate, nil
	case "net-7":
		return PaymentTermsNet7, nil
	case "net-15":
		return PaymentTermsNet15, nil
	case "net-30":
		return PaymentTermsNet30, nil
	}
	return 0, fmt.Errorf("unknown payment terms %q", s)
}

func (t PaymentTerms) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PaymentTerms) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePaymentTerms(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t PaymentTerms) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *PaymentTerms) Scan(value interface{}) error {
	if value == nil {
		*t = PaymentTermsImmediate
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = PaymentTerms(v)
	case int:
		*t = PaymentTerms(v)
	}
	return nil
}

// PaymentStatus classifies how much of the total has been tendered
type PaymentStatus int

const (
	PaymentStatusNone      PaymentStatus = 0
	PaymentStatusPartial   PaymentStatus = 1
	PaymentStatusCompleted PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPartial:
		return "partial"
	case PaymentStatusCompleted:
		return "completed"
	default:
		return "no-payment"
	}
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "no-payment":
		*s = PaymentStatusNone
	case "partial":
		*s = PaymentStatusPartial
	case "completed":
		*s = PaymentStatusCompleted
	default:
		return fmt.Errorf("unknown payment status %q", str)
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
