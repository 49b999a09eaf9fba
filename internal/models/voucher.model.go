package models

import "time"

// Voucher is one accounting transaction event: a Sales/Purchase invoice,
// a credit or debit note, or a stock transfer/inward movement.
type Voucher struct {
	VoucherID       int64     `json:"voucher_id"`
	TransactionType string    `json:"transaction_type"`
	InvoiceNumber   string    `json:"invoice_number"`
	VchNo           string    `json:"vch_no"`
	OrderNumber     string    `json:"order_number,omitempty"`
	TransactionDate time.Time `json:"transaction_date"`

	// money
	BasicAmount       float64 `json:"basic_amount"`
	TaxAmount         float64 `json:"tax_amount"`
	TotalAmount       float64 `json:"total_amount"`
	SGSTPercent       float64 `json:"sgst_percent"`
	SGSTAmount        float64 `json:"sgst_amount"`
	CGSTPercent       float64 `json:"cgst_percent"`
	CGSTAmount        float64 `json:"cgst_amount"`
	IGSTPercent       float64 `json:"igst_percent"`
	IGSTAmount        float64 `json:"igst_amount"`
	TotalDiscount     float64 `json:"total_discount"`
	TotalCreditCharge float64 `json:"total_credit_charge"`
	PaidAmount        float64 `json:"paid_amount"`
	BalanceAmount     float64 `json:"balance_amount"`

	// party
	PartyID      int64  `json:"party_id"`
	PartyName    string `json:"party_name"`
	AccountID    int64  `json:"account_id"`
	AccountName  string `json:"account_name"`
	BusinessName string `json:"business_name,omitempty"`

	// administrative
	DC             string `json:"dc"`
	DataType       string `json:"data_type,omitempty"`
	OrderMode      string `json:"order_mode,omitempty"`
	TaxSystem      string `json:"tax_system"`
	FlashOffer     bool   `json:"flash_offer"`
	StaffID        int64  `json:"staff_id,omitempty"`
	StaffName      string `json:"staff_name,omitempty"`
	AttachmentName string `json:"attachment_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []VoucherItem `json:"items"`

	// OrderItemIDs limits which order lines get the invoice stamp when the
	// voucher is posted against an order; empty means all of them.
	OrderItemIDs []int64 `json:"-"`
}

// VoucherItem is one product/batch line on a voucher. StockDeductionQty is
// the quantity that actually leaves inventory, which exceeds Quantity for
// promotional (buy-N-get-M) lines.
type VoucherItem struct {
	ID        int64  `json:"id"`
	VoucherID int64  `json:"voucher_id"`
	ProductID int64  `json:"product_id"`
	Product   string `json:"product"`
	Batch     string `json:"batch"`

	Quantity          float64 `json:"quantity"`
	StockDeductionQty float64 `json:"stock_deduction_quantity"`
	Price             float64 `json:"price"`
	Discount          float64 `json:"discount"`

	GSTAmount  float64 `json:"gst_amount"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTAmount float64 `json:"sgst_amount"`
	IGSTAmount float64 `json:"igst_amount"`
	CessAmount float64 `json:"cess_amount"`

	Total float64 `json:"total"`

	MfgDate *time.Time `json:"mfg_date,omitempty"`
}

// Batch is the unit of stock tracking for a product.
// quantity = stock_in - stock_out holds after every reconciliation step.
type Batch struct {
	ID        int64      `json:"id"`
	ProductID int64      `json:"product_id"`
	BatchNo   string     `json:"batch_no"`
	Quantity  float64    `json:"quantity"`
	StockIn   float64    `json:"stock_in"`
	StockOut  float64    `json:"stock_out"`
	MfgDate   *time.Time `json:"mfg_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// StockMovement records one signed batch delta applied for a voucher line,
// so that update/delete can reverse exactly what was applied — including
// FIFO deductions that were split across several batches.
type StockMovement struct {
	ID        int64     `json:"id"`
	VoucherID int64     `json:"voucher_id"`
	ProductID int64     `json:"product_id"`
	BatchNo   string    `json:"batch_no"`
	Quantity  float64   `json:"quantity"` // positive = stock in, negative = stock out
	CreatedAt time.Time `json:"created_at"`
}

// LedgerEntry is a row of a party statement with a running balance.
type LedgerEntry struct {
	VoucherID       int64     `json:"voucher_id"`
	TransactionDate time.Time `json:"transaction_date"`
	TransactionType string    `json:"transaction_type"`
	InvoiceNumber   string    `json:"invoice_number"`
	DC              string    `json:"dc"`
	Amount          float64   `json:"amount"`
	RunningBalance  float64   `json:"running_balance"`
}

// DayBookRow aggregates voucher totals for one day and kind.
type DayBookRow struct {
	Date            time.Time `json:"date"`
	TransactionType string    `json:"transaction_type"`
	VoucherCount    int64     `json:"voucher_count"`
	BasicAmount     float64   `json:"basic_amount"`
	TaxAmount       float64   `json:"tax_amount"`
	TotalAmount     float64   `json:"total_amount"`
}
