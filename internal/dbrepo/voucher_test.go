package dbrepo

import (
	"testing"

	"github.com/vyapardesk/billing-api/internal/models"
)

func TestInheritStoredNumbers(t *testing.T) {
	old := &models.Voucher{InvoiceNumber: "INV042", VchNo: "VCH-42"}

	// omitted numbers inherit the stored ones, so a note update without an
	// invoice number still validates its ceiling against the right source
	v := &models.Voucher{TransactionType: models.TRX_CREDIT_NOTE}
	inheritStoredNumbers(v, old)
	if v.InvoiceNumber != "INV042" {
		t.Fatalf("invoice number = %q, want inherited INV042", v.InvoiceNumber)
	}
	if v.VchNo != "VCH-42" {
		t.Fatalf("vch no = %q, want inherited VCH-42", v.VchNo)
	}

	// caller-supplied numbers are kept
	v = &models.Voucher{InvoiceNumber: "INV100", VchNo: "VCH-100"}
	inheritStoredNumbers(v, old)
	if v.InvoiceNumber != "INV100" || v.VchNo != "VCH-100" {
		t.Fatalf("supplied numbers must win, got %q / %q", v.InvoiceNumber, v.VchNo)
	}
}

func TestBalanceApplies(t *testing.T) {
	cases := []struct {
		trxType     string
		partyID     int64
		orderNumber string
		want        bool
	}{
		{models.TRX_SALES, 5, "ORD1", true},
		{models.TRX_STOCK_TRANSFER, 5, "ORD1", true},
		{models.TRX_STOCK_INWARD, 5, "ORD1", true},
		{models.TRX_SALES, 0, "ORD1", false},
		{models.TRX_SALES, 5, "", false},
		{models.TRX_PURCHASE, 5, "ORD1", false},
		{models.TRX_CREDIT_NOTE, 5, "ORD1", false},
	}
	for _, tc := range cases {
		v := &models.Voucher{TransactionType: tc.trxType, PartyID: tc.partyID, OrderNumber: tc.orderNumber}
		if got := balanceApplies(v); got != tc.want {
			t.Fatalf("balanceApplies(%s, party=%d, order=%q) = %v, want %v",
				tc.trxType, tc.partyID, tc.orderNumber, got, tc.want)
		}
	}
}

func TestOrderStampApplies(t *testing.T) {
	cases := []struct {
		trxType     string
		orderNumber string
		want        bool
	}{
		{models.TRX_SALES, "ORD1", true},
		{models.TRX_STOCK_TRANSFER, "ORD1", true},
		{models.TRX_SALES, "", false},
		{models.TRX_PURCHASE, "ORD1", false},
		{models.TRX_STOCK_INWARD, "ORD1", false},
	}
	for _, tc := range cases {
		v := &models.Voucher{TransactionType: tc.trxType, OrderNumber: tc.orderNumber}
		if got := orderStampApplies(v); got != tc.want {
			t.Fatalf("orderStampApplies(%s, order=%q) = %v, want %v",
				tc.trxType, tc.orderNumber, got, tc.want)
		}
	}
}
