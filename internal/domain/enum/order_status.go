package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus tracks a sales order through the tailoring workflow
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 0
	OrderStatusInProgress OrderStatus = 1
	OrderStatusReady      OrderStatus = 2
	OrderStatusDelivered  OrderStatus = 3
	OrderStatusCancelled  OrderStatus = 4
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusInProgress:
		return "in-progress"
	case OrderStatusReady:
		return "ready"
	case OrderStatusDelivered:
		return "delivered"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

// ParseOrderStatus parses the wire representation of an order status
func ParseOrderStatus(str string) (OrderStatus, error) {
	switch str {
	case "pending":
		return OrderStatusPending, nil
	case "in-progress":
		return OrderStatusInProgress, nil
	case "ready":
		return OrderStatusReady, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	}
	return 0, fmt.Errorf("unknown order status %q", str)
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseOrderStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
