package utils

import (
	"testing"

	"github.com/vyapardesk/billing-api/internal/models"
)

func TestDefaultInvoiceNo(t *testing.T) {
	cases := []struct {
		trxType string
		want    string
	}{
		{models.TRX_SALES, "INV001"},
		{models.TRX_PURCHASE, "PINV001"},
		{models.TRX_CREDIT_NOTE, "CNOTE001"},
		{models.TRX_DEBIT_NOTE, "DNOTE001"},
		{models.TRX_STOCK_TRANSFER, "STRF001"},
		{models.TRX_STOCK_INWARD, "SINW001"},
		{"anything else", "VCH001"},
	}
	for _, tc := range cases {
		if got := DefaultInvoiceNo(tc.trxType); got != tc.want {
			t.Fatalf("DefaultInvoiceNo(%q) = %q, want %q", tc.trxType, got, tc.want)
		}
	}
}

func TestDefaultVchNo(t *testing.T) {
	if got := DefaultVchNo(models.TRX_SALES, 42); got != "VCH-42" {
		t.Fatalf("got %q, want VCH-42", got)
	}
	if got := DefaultVchNo(models.TRX_SALES, 0); got != "INV001" {
		t.Fatalf("zero id should fall back to invoice number, got %q", got)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPassword("s3cret-pass", hashed) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong-pass", hashed) {
		t.Fatal("wrong password accepted")
	}
}
