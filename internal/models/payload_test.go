package models

import (
	"encoding/json"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestFlexFloatCoercion(t *testing.T) {
	var payload struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
		C FlexFloat `json:"c"`
		D FlexFloat `json:"d"`
		E FlexFloat `json:"e"`
	}
	body := `{"a": 12.5, "b": "7.25", "c": null, "d": "", "e": "garbage"}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if payload.A.Float() != 12.5 {
		t.Fatalf("numeric value: got %v, want 12.5", payload.A.Float())
	}
	if payload.B.Float() != 7.25 {
		t.Fatalf("quoted value: got %v, want 7.25", payload.B.Float())
	}
	if payload.C.Float() != 0 || payload.D.Float() != 0 || payload.E.Float() != 0 {
		t.Fatalf("null/empty/garbage should coerce to 0, got %v %v %v",
			payload.C.Float(), payload.D.Float(), payload.E.Float())
	}
}

func TestNormalizeRejectsUnknownType(t *testing.T) {
	p := TransactionPayload{TransactionType: "Refund"}
	if _, err := p.Normalize(); err == nil {
		t.Fatal("expected error for unknown transaction type")
	}
}

func TestNormalizeRejectsBadDate(t *testing.T) {
	p := TransactionPayload{TransactionType: TRX_SALES, TransactionDate: "31-01-2026"}
	if _, err := p.Normalize(); err == nil {
		t.Fatal("expected error for non YYYY-MM-DD date")
	}
}

func TestNormalizeDefaultDCFollowsStockDirection(t *testing.T) {
	cases := []struct {
		trxType string
		wantDC  string
	}{
		{TRX_SALES, DC_DEBIT},
		{TRX_DEBIT_NOTE, DC_DEBIT},
		{TRX_STOCK_TRANSFER, DC_DEBIT},
		{TRX_PURCHASE, DC_CREDIT},
		{TRX_CREDIT_NOTE, DC_CREDIT},
		{TRX_STOCK_INWARD, DC_CREDIT},
	}
	for _, tc := range cases {
		p := TransactionPayload{TransactionType: tc.trxType}
		v, err := p.Normalize()
		if err != nil {
			t.Fatalf("%s: normalize failed: %v", tc.trxType, err)
		}
		if v.DC != tc.wantDC {
			t.Fatalf("%s: dc = %q, want %q", tc.trxType, v.DC, tc.wantDC)
		}
	}
}

func TestNormalizeItemTaxes(t *testing.T) {
	p := TransactionPayload{
		TransactionType: TRX_SALES,
		Items: []TransactionItemPayload{{
			ProductID: 7,
			Quantity:  10,
			Price:     100,
			Discount:  50,
			GST:       18,   // percent of taxable
			CGST:      2.5,  // per unit
			SGST:      2.5,  // per unit
			IGST:      5,    // percent of taxable
			Cess:      1,    // percent of taxable
		}},
	}

	v, err := p.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	item := v.Items[0]

	// taxable = 10*100 - 50 = 950
	if !almostEqual(item.Total, 950) {
		t.Fatalf("total = %v, want 950", item.Total)
	}
	if !almostEqual(item.GSTAmount, 171) { // 950 * 18%
		t.Fatalf("gst = %v, want 171", item.GSTAmount)
	}
	if !almostEqual(item.IGSTAmount, 47.5) { // 950 * 5%
		t.Fatalf("igst = %v, want 47.5", item.IGSTAmount)
	}
	if !almostEqual(item.CessAmount, 9.5) { // 950 * 1%
		t.Fatalf("cess = %v, want 9.5", item.CessAmount)
	}
	// per-unit CGST/SGST scale by billed quantity
	if !almostEqual(item.CGSTAmount, 25) || !almostEqual(item.SGSTAmount, 25) {
		t.Fatalf("cgst/sgst = %v/%v, want 25/25", item.CGSTAmount, item.SGSTAmount)
	}
	if item.Batch != DEFAULT_BATCH {
		t.Fatalf("batch = %q, want %q", item.Batch, DEFAULT_BATCH)
	}
}

func TestNormalizeKachaSuppressesAllTaxes(t *testing.T) {
	p := TransactionPayload{
		TransactionType: TRX_SALES,
		OrderMode:       ORDER_MODE_KACHA,
		TaxAmount:       99, // caller tax must be ignored in kacha mode
		SGSTPercent:     9,
		CGSTPercent:     9,
		Items: []TransactionItemPayload{{
			ProductID: 1,
			Quantity:  2,
			Price:     500,
			GST:       18,
			CGST:      5,
			SGST:      5,
		}},
	}

	v, err := p.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if v.TaxSystem != TAX_SYSTEM_NO_GST {
		t.Fatalf("tax system = %q, want %q", v.TaxSystem, TAX_SYSTEM_NO_GST)
	}
	if v.TaxAmount != 0 || v.SGSTPercent != 0 || v.CGSTPercent != 0 {
		t.Fatalf("header taxes should be zero, got tax=%v sgst%%=%v cgst%%=%v",
			v.TaxAmount, v.SGSTPercent, v.CGSTPercent)
	}
	item := v.Items[0]
	if item.GSTAmount != 0 || item.CGSTAmount != 0 || item.SGSTAmount != 0 {
		t.Fatalf("item taxes should be zero, got gst=%v cgst=%v sgst=%v",
			item.GSTAmount, item.CGSTAmount, item.SGSTAmount)
	}
	// grand total = basic + credit charge, no tax
	if !almostEqual(v.TotalAmount, 1000) {
		t.Fatalf("total = %v, want 1000", v.TotalAmount)
	}
}

func TestNormalizePromoDeduction(t *testing.T) {
	p := TransactionPayload{
		TransactionType: TRX_SALES,
		Items: []TransactionItemPayload{{
			ProductID:   3,
			Quantity:    3,
			Price:       100,
			FlashOffer:  1,
			BuyQuantity: 3,
			GetQuantity: 1,
		}},
	}

	v, err := p.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !v.FlashOffer {
		t.Fatal("voucher flash offer flag not set")
	}
	item := v.Items[0]
	if item.Quantity != 3 {
		t.Fatalf("billed quantity = %v, want 3", item.Quantity)
	}
	if item.StockDeductionQty != 4 {
		t.Fatalf("stock deduction = %v, want 4 (buy 3 get 1)", item.StockDeductionQty)
	}
}

func TestNormalizePromoDeductionCallerOverrideWins(t *testing.T) {
	p := TransactionPayload{
		TransactionType: TRX_SALES,
		Items: []TransactionItemPayload{{
			ProductID:         3,
			Quantity:          3,
			FlashOffer:        1,
			BuyQuantity:       3,
			GetQuantity:       1,
			StockDeductionQty: 5,
		}},
	}

	v, err := p.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if v.Items[0].StockDeductionQty != 5 {
		t.Fatalf("stock deduction = %v, want caller-supplied 5", v.Items[0].StockDeductionQty)
	}
}

func TestNormalizeTotalsDerivedFromLines(t *testing.T) {
	p := TransactionPayload{
		TransactionType:   TRX_SALES,
		TotalCreditCharge: 10,
		Items: []TransactionItemPayload{
			{ProductID: 1, Quantity: 2, Price: 100, GST: 18},
			{ProductID: 2, Quantity: 1, Price: 300, GST: 18},
		},
	}

	v, err := p.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !almostEqual(v.BasicAmount, 500) {
		t.Fatalf("basic = %v, want 500", v.BasicAmount)
	}
	if !almostEqual(v.TaxAmount, 90) { // 18% of 500
		t.Fatalf("tax = %v, want 90", v.TaxAmount)
	}
	if !almostEqual(v.TotalAmount, 600) { // basic + tax + credit charge
		t.Fatalf("total = %v, want 600", v.TotalAmount)
	}
}

func TestNormalizeCallerTotalsWin(t *testing.T) {
	p := TransactionPayload{
		TransactionType: TRX_SALES,
		BasicAmount:     777,
		TaxAmount:       42,
		TotalAmount:     999,
		Items: []TransactionItemPayload{
			{ProductID: 1, Quantity: 2, Price: 100, GST: 18},
		},
	}

	v, err := p.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if v.BasicAmount != 777 || v.TaxAmount != 42 || v.TotalAmount != 999 {
		t.Fatalf("caller totals must win, got basic=%v tax=%v total=%v",
			v.BasicAmount, v.TaxAmount, v.TotalAmount)
	}
}

func TestStockDirection(t *testing.T) {
	inbound := []string{TRX_PURCHASE, TRX_CREDIT_NOTE, TRX_STOCK_INWARD}
	outbound := []string{TRX_SALES, TRX_DEBIT_NOTE, TRX_STOCK_TRANSFER}

	for _, trxType := range inbound {
		if StockDirection(trxType) != 1 {
			t.Fatalf("%s should add stock", trxType)
		}
	}
	for _, trxType := range outbound {
		if StockDirection(trxType) != -1 {
			t.Fatalf("%s should remove stock", trxType)
		}
	}
	if StockDirection("bogus") != 0 {
		t.Fatal("unknown type should map to 0")
	}
}
