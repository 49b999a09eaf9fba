package models

import "time"

// Order is a pre-invoice sales order. The posting engine stamps invoice
// fields onto it when a voucher is created against its order number, and
// reverts them when that voucher is deleted.
type Order struct {
	ID            int64     `json:"id"`
	OrderNumber   string    `json:"order_number"`
	OrderDate     time.Time `json:"order_date"`
	PartyID       int64     `json:"party_id"`
	PartyName     string    `json:"party_name"`
	TotalAmount   float64   `json:"total_amount"`
	OrderStatus   string    `json:"order_status"`
	OrderMode     *string   `json:"order_mode,omitempty"`
	InvoiceNumber *string   `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []OrderItem `json:"items"`
}

type OrderItem struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	ProductID     int64      `json:"product_id"`
	ProductName   string     `json:"product_name"`
	Quantity      float64    `json:"quantity"`
	Price         float64    `json:"price"`
	Subtotal      float64    `json:"subtotal"`
	InvoiceStatus int16      `json:"invoice_status"`
	InvoiceNumber *string    `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty"`
}
