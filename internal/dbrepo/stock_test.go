package dbrepo

import (
	"testing"

	"github.com/vyapardesk/billing-api/internal/models"
)

func TestAllocateFIFOSingleBatch(t *testing.T) {
	batches := []models.Batch{
		{BatchNo: "B1", Quantity: 10},
		{BatchNo: "B2", Quantity: 5},
	}

	allocs, fulfilled := allocateFIFO(batches, 6)
	if fulfilled != 6 {
		t.Fatalf("fulfilled = %v, want 6", fulfilled)
	}
	if len(allocs) != 1 || allocs[0].BatchNo != "B1" || allocs[0].Quantity != 6 {
		t.Fatalf("unexpected allocations: %+v", allocs)
	}
}

func TestAllocateFIFOSplitsAcrossBatches(t *testing.T) {
	batches := []models.Batch{
		{BatchNo: "B1", Quantity: 4},
		{BatchNo: "B2", Quantity: 3},
		{BatchNo: "B3", Quantity: 10},
	}

	allocs, fulfilled := allocateFIFO(batches, 9)
	if fulfilled != 9 {
		t.Fatalf("fulfilled = %v, want 9", fulfilled)
	}
	want := []batchAllocation{
		{BatchNo: "B1", Quantity: 4},
		{BatchNo: "B2", Quantity: 3},
		{BatchNo: "B3", Quantity: 2},
	}
	if len(allocs) != len(want) {
		t.Fatalf("got %d allocations, want %d: %+v", len(allocs), len(want), allocs)
	}
	for i := range want {
		if allocs[i] != want[i] {
			t.Fatalf("allocation %d = %+v, want %+v", i, allocs[i], want[i])
		}
	}
}

func TestAllocateFIFOShortfall(t *testing.T) {
	batches := []models.Batch{
		{BatchNo: "B1", Quantity: 2},
		{BatchNo: "B2", Quantity: 1},
	}

	allocs, fulfilled := allocateFIFO(batches, 10)
	if fulfilled != 3 {
		t.Fatalf("fulfilled = %v, want 3", fulfilled)
	}
	if len(allocs) != 2 {
		t.Fatalf("got %d allocations, want 2", len(allocs))
	}
}

func TestAllocateFIFOSkipsEmptyBatches(t *testing.T) {
	batches := []models.Batch{
		{BatchNo: "B1", Quantity: 0},
		{BatchNo: "B2", Quantity: 5},
	}

	allocs, fulfilled := allocateFIFO(batches, 5)
	if fulfilled != 5 {
		t.Fatalf("fulfilled = %v, want 5", fulfilled)
	}
	if len(allocs) != 1 || allocs[0].BatchNo != "B2" {
		t.Fatalf("empty batch must be skipped, got %+v", allocs)
	}
}

func TestDeductionQty(t *testing.T) {
	regular := models.VoucherItem{Quantity: 3}
	if deductionQty(regular) != 3 {
		t.Fatalf("regular line should deduct billed quantity")
	}

	promo := models.VoucherItem{Quantity: 3, StockDeductionQty: 4}
	if deductionQty(promo) != 4 {
		t.Fatalf("promotional line should deduct stock deduction quantity")
	}
}

func TestReverseBatchFigures(t *testing.T) {
	cases := []struct {
		name         string
		quantity     float64
		stockIn      float64
		stockOut     float64
		movement     float64
		wantQuantity float64
		wantStockIn  float64
		wantStockOut float64
	}{
		{
			name:     "reverse a stock in takes it back out",
			quantity: 10, stockIn: 10, stockOut: 0,
			movement:     6,
			wantQuantity: 4, wantStockIn: 4, wantStockOut: 0,
		},
		{
			name:     "reverse a stock out puts it back",
			quantity: 4, stockIn: 10, stockOut: 6,
			movement:     -6,
			wantQuantity: 10, wantStockIn: 10, wantStockOut: 0,
		},
		{
			name:     "stock in reversal underflow floors quantity and stock_in",
			quantity: 2, stockIn: 3, stockOut: 0,
			movement:     5,
			wantQuantity: 0, wantStockIn: 0, wantStockOut: 0,
		},
		{
			name:     "stock out reversal underflow floors stock_out only",
			quantity: 0, stockIn: 0, stockOut: 1,
			movement:     -4,
			wantQuantity: 4, wantStockIn: 0, wantStockOut: 0,
		},
	}

	for _, tc := range cases {
		m := models.StockMovement{ProductID: 1, BatchNo: "B1", Quantity: tc.movement}
		q, in, out := reverseBatchFigures(tc.quantity, tc.stockIn, tc.stockOut, m)
		if q != tc.wantQuantity || in != tc.wantStockIn || out != tc.wantStockOut {
			t.Fatalf("%s: got (%v, %v, %v), want (%v, %v, %v)",
				tc.name, q, in, out, tc.wantQuantity, tc.wantStockIn, tc.wantStockOut)
		}
	}
}

func TestReverseBatchFiguresRestoresPrePostState(t *testing.T) {
	// a sale of 7 against quantity=10, stock_in=10, stock_out=0 leaves
	// (3, 10, 7); reversing its movement must restore the original triple
	m := models.StockMovement{ProductID: 9, BatchNo: "B1", Quantity: -7}
	q, in, out := reverseBatchFigures(3, 10, 7, m)
	if q != 10 || in != 10 || out != 0 {
		t.Fatalf("reversal not exact: got (%v, %v, %v), want (10, 10, 0)", q, in, out)
	}

	// same for a purchase of 7 posted onto an empty batch
	m = models.StockMovement{ProductID: 9, BatchNo: "B1", Quantity: 7}
	q, in, out = reverseBatchFigures(7, 7, 0, m)
	if q != 0 || in != 0 || out != 0 {
		t.Fatalf("reversal not exact: got (%v, %v, %v), want (0, 0, 0)", q, in, out)
	}
}

func TestClampZero(t *testing.T) {
	m := models.StockMovement{ProductID: 1, BatchNo: "B1"}
	if got := clampZero(-2.5, m, "quantity"); got != 0 {
		t.Fatalf("negative value should floor at 0, got %v", got)
	}
	if got := clampZero(3, m, "quantity"); got != 3 {
		t.Fatalf("positive value should pass through, got %v", got)
	}
}
