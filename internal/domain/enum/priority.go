package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Priority ranks how urgently a tailoring order should be worked
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
)

func (p Priority) String() string {
	switch p {
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "low"
	}
}

func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority parses the wire representation of a priority
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePriority(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Priority) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *Priority) Scan(value interface{}) error {
	if value == nil {
		*p = PriorityLow
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = Priority(v)
	case int:
		*p = Priority(v)
	}
	return nil
}
