package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt. Money fields
// are pre-formatted fixed 2-decimal strings.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity -- it is composed from order data at
// print time.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	InvoiceNo    string        `json:"invoice_no"`
	Date         string        `json:"date"`
	Cashier      string        `json:"cashier,omitempty"`
	Customer     string        `json:"customer,omitempty"`
	Payment      string        `json:"payment,omitempty"`
	Items        []ReceiptItem `json:"items"`
	Subtotal     string        `json:"subtotal"`
	Tax          string        `json:"tax"`
	Discount     string        `json:"discount"`
	Total        string        `json:"total"`
	Paid         string        `json:"paid"`
	Change       string        `json:"change,omitempty"`
	Balance      string        `json:"balance"`
	DueDate      string        `json:"due_date,omitempty"`
	DeliveryDate string        `json:"delivery_date,omitempty"`
}
