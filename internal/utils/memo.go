package utils

import (
	"fmt"

	"github.com/vyapardesk/billing-api/internal/models"
)

// DefaultInvoiceNo returns the placeholder document number for a voucher
// kind when the caller did not supply one. It is a fallback, not a counter;
// callers normally send real numbers.
func DefaultInvoiceNo(transactionType string) string {
	switch transactionType {
	case models.TRX_SALES:
		return "INV001"
	case models.TRX_PURCHASE:
		return "PINV001"
	case models.TRX_CREDIT_NOTE:
		return "CNOTE001"
	case models.TRX_DEBIT_NOTE:
		return "DNOTE001"
	case models.TRX_STOCK_TRANSFER:
		return "STRF001"
	case models.TRX_STOCK_INWARD:
		return "SINW001"
	}
	return "VCH001"
}

// DefaultVchNo returns the fallback internal voucher number.
func DefaultVchNo(transactionType string, voucherID int64) string {
	if voucherID > 0 {
		return fmt.Sprintf("VCH-%d", voucherID)
	}
	return DefaultInvoiceNo(transactionType)
}
