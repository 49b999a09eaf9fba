package dbrepo

import "fmt"

// InsufficientStockError reports an outbound line that cannot be fully
// satisfied from available batches.
type InsufficientStockError struct {
	ProductID int64
	Product   string
	Batch     string
	Required  float64
	Fulfilled float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for product %d (%s) batch %q: required %.2f, fulfilled %.2f, short %.2f",
		e.ProductID, e.Product, e.Batch, e.Required, e.Fulfilled, e.Required-e.Fulfilled,
	)
}

// BatchNotFoundError reports an explicit batch reference that does not exist
// for the product.
type BatchNotFoundError struct {
	ProductID int64
	Batch     string
}

func (e *BatchNotFoundError) Error() string {
	return fmt.Sprintf("batch %q not found for product %d", e.Batch, e.ProductID)
}

// QuantityExceedsSourceError reports a credit/debit-note line requesting more
// than the net quantity available on its originating voucher.
type QuantityExceedsSourceError struct {
	ProductID int64
	Batch     string
	Available float64
	Requested float64
}

func (e *QuantityExceedsSourceError) Error() string {
	return fmt.Sprintf(
		"quantity exceeds source voucher for product %d batch %q: available %.2f, requested %.2f",
		e.ProductID, e.Batch, e.Available, e.Requested,
	)
}

// SourceVoucherNotFoundError reports a credit/debit note referencing an
// invoice number with no matching source voucher.
type SourceVoucherNotFoundError struct {
	InvoiceNumber   string
	TransactionType string
}

func (e *SourceVoucherNotFoundError) Error() string {
	return fmt.Sprintf("no %s voucher found for invoice number %q", e.TransactionType, e.InvoiceNumber)
}
