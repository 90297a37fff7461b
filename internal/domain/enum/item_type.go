package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ItemType distinguishes stocked products from bespoke tailoring jobs
type ItemType int

const (
	ItemTypeReadyMade ItemType = 0
	ItemTypeCustom    ItemType = 1
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeCustom:
		return "custom"
	default:
		return "ready-made"
	}
}

// IsValid reports whether the value is a known item type
func (t ItemType) IsValid() bool {
	return t == ItemTypeReadyMade || t == ItemTypeCustom
}

// ParseItemType parses the wire representation of an item type
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "ready-made":
		return ItemTypeReadyMade, nil
	case "custom":
		return ItemTypeCustom, nil
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

func (t ItemType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ItemType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseItemType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t ItemType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ItemType) Scan(value interface{}) error {
	if value == nil {
		*t = ItemTypeReadyMade
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ItemType(v)
	case int:
		*t = ItemType(v)
	}
	return nil
}
