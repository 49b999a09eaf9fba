package dbrepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
)

// Stock reconciliation engine. Every voucher post moves inventory through
// these package-level helpers inside the caller's transaction, and every
// applied delta is recorded in stock_movements so that update/delete can
// reverse exactly what was applied — including FIFO deductions split across
// several batches.

type batchAllocation struct {
	BatchNo  string
	Quantity float64
}

// allocateFIFO plans a deduction of required units across the candidate
// batches in the order given. It returns the per-batch allocations and the
// total quantity fulfilled; the caller decides what a shortfall means.
func allocateFIFO(batches []models.Batch, required float64) ([]batchAllocation, float64) {
	var allocs []batchAllocation
	fulfilled := 0.0
	for _, b := range batches {
		if fulfilled >= required {
			break
		}
		take := required - fulfilled
		if b.Quantity < take {
			take = b.Quantity
		}
		if take <= 0 {
			continue
		}
		allocs = append(allocs, batchAllocation{BatchNo: b.BatchNo, Quantity: take})
		fulfilled += take
	}
	return allocs, fulfilled
}

// deductionQty returns the quantity a line removes from stock: the
// stock-deduction quantity when set (promotional lines), the billed
// quantity otherwise.
func deductionQty(item models.VoucherItem) float64 {
	if item.StockDeductionQty > 0 {
		return item.StockDeductionQty
	}
	return item.Quantity
}

// ApplyVoucherStockTx applies the inventory deltas of every line on the
// voucher: additive for inbound kinds (Purchase, CreditNote, stock inward),
// subtractive for outbound kinds (Sales, DebitNote, stock transfer).
func ApplyVoucherStockTx(tx pgx.Tx, ctx context.Context, v *models.Voucher) error {
	dir := models.StockDirection(v.TransactionType)
	if dir == 0 {
		return fmt.Errorf("unknown transaction type %q", v.TransactionType)
	}

	for _, item := range v.Items {
		qty := deductionQty(item)
		if qty <= 0 {
			continue
		}

		if dir > 0 {
			if err := stockInTx(tx, ctx, v.VoucherID, item, qty); err != nil {
				return err
			}
			continue
		}

		// outbound: explicit batch wins; otherwise FIFO — by manufacture
		// date for order-sourced vouchers, by batch creation time otherwise
		if item.Batch != "" && item.Batch != models.DEFAULT_BATCH {
			if err := deductExplicitTx(tx, ctx, v.VoucherID, item, qty); err != nil {
				return err
			}
			continue
		}
		if err := deductFIFOTx(tx, ctx, v.VoucherID, item, qty, v.OrderNumber != ""); err != nil {
			return err
		}
	}
	return nil
}

// stockInTx adds qty to the (product, batch) row, creating the batch on
// first reference.
func stockInTx(tx pgx.Tx, ctx context.Context, voucherID int64, item models.VoucherItem, qty float64) error {
	var mfg any
	if item.MfgDate != nil {
		mfg = *item.MfgDate
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO batches (product_id, batch_no, quantity, stock_in, stock_out, mfg_date)
		VALUES ($1, $2, $3, $3, 0, $4)
		ON CONFLICT (product_id, batch_no) DO UPDATE SET
			quantity   = batches.quantity + EXCLUDED.quantity,
			stock_in   = batches.stock_in + EXCLUDED.stock_in,
			mfg_date   = COALESCE(batches.mfg_date, EXCLUDED.mfg_date),
			updated_at = CURRENT_TIMESTAMP
	`, item.ProductID, item.Batch, qty, mfg)
	if err != nil {
		return fmt.Errorf("stock in for product %d batch %q failed: %w", item.ProductID, item.Batch, err)
	}
	return recordMovementTx(tx, ctx, voucherID, item.ProductID, item.Batch, qty)
}

// deductExplicitTx removes qty from exactly the named batch.
func deductExplicitTx(tx pgx.Tx, ctx context.Context, voucherID int64, item models.VoucherItem, qty float64) error {
	var available float64
	err := tx.QueryRow(ctx, `
		SELECT quantity FROM batches
		WHERE product_id = $1 AND batch_no = $2
		FOR UPDATE
	`, item.ProductID, item.Batch).Scan(&available)
	if err == pgx.ErrNoRows {
		return &BatchNotFoundError{ProductID: item.ProductID, Batch: item.Batch}
	}
	if err != nil {
		return fmt.Errorf("lock batch failed: %w", err)
	}
	if available < qty {
		return &InsufficientStockError{
			ProductID: item.ProductID,
			Product:   item.Product,
			Batch:     item.Batch,
			Required:  qty,
			Fulfilled: available,
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE batches SET
			quantity   = quantity - $1,
			stock_out  = stock_out + $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE product_id = $2 AND batch_no = $3
	`, qty, item.ProductID, item.Batch)
	if err != nil {
		return fmt.Errorf("deduct batch failed: %w", err)
	}
	return recordMovementTx(tx, ctx, voucherID, item.ProductID, item.Batch, -qty)
}

// deductFIFOTx removes qty from the product's batches oldest-first,
// splitting across batches as needed. Order-sourced vouchers consume by
// ascending manufacture date; regular sales by batch creation time.
func deductFIFOTx(tx pgx.Tx, ctx context.Context, voucherID int64, item models.VoucherItem, qty float64, byMfgDate bool) error {
	orderBy := "created_at ASC, id ASC"
	if byMfgDate {
		orderBy = "mfg_date ASC NULLS LAST, id ASC"
	}

	rows, err := tx.Query(ctx, fmt.Sprintf(`
		SELECT id, batch_no, quantity FROM batches
		WHERE product_id = $1 AND quantity > 0
		ORDER BY %s
		FOR UPDATE
	`, orderBy), item.ProductID)
	if err != nil {
		return fmt.Errorf("lock batches failed: %w", err)
	}

	var candidates []models.Batch
	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(&b.ID, &b.BatchNo, &b.Quantity); err != nil {
			rows.Close()
			return fmt.Errorf("scan batch failed: %w", err)
		}
		candidates = append(candidates, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("batch iteration failed: %w", err)
	}

	allocs, fulfilled := allocateFIFO(candidates, qty)
	if fulfilled < qty {
		return &InsufficientStockError{
			ProductID: item.ProductID,
			Product:   item.Product,
			Batch:     item.Batch,
			Required:  qty,
			Fulfilled: fulfilled,
		}
	}

	for _, a := range allocs {
		_, err := tx.Exec(ctx, `
			UPDATE batches SET
				quantity   = quantity - $1,
				stock_out  = stock_out + $1,
				updated_at = CURRENT_TIMESTAMP
			WHERE product_id = $2 AND batch_no = $3
		`, a.Quantity, item.ProductID, a.BatchNo)
		if err != nil {
			return fmt.Errorf("deduct batch %q failed: %w", a.BatchNo, err)
		}
		if err := recordMovementTx(tx, ctx, voucherID, item.ProductID, a.BatchNo, -a.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func recordMovementTx(tx pgx.Tx, ctx context.Context, voucherID, productID int64, batchNo string, qty float64) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO stock_movements (voucher_id, product_id, batch_no, quantity)
		VALUES ($1, $2, $3, $4)
	`, voucherID, productID, batchNo, qty)
	if err != nil {
		return fmt.Errorf("record stock movement failed: %w", err)
	}
	return nil
}

// ReverseVoucherStockTx applies the inverse of every movement recorded for
// the voucher and clears its movement log. Reversal is best-effort
// reconciliation: a delta that would drive a figure negative is floored at
// zero and logged, never raised as an error, and a batch that has vanished
// since the original posting is recreated empty so the arithmetic has a row
// to act on.
func ReverseVoucherStockTx(tx pgx.Tx, ctx context.Context, voucherID int64) error {
	rows, err := tx.Query(ctx, `
		SELECT product_id, batch_no, quantity FROM stock_movements
		WHERE voucher_id = $1
		ORDER BY id
	`, voucherID)
	if err != nil {
		return fmt.Errorf("load stock movements failed: %w", err)
	}

	var moves []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ProductID, &m.BatchNo, &m.Quantity); err != nil {
			rows.Close()
			return fmt.Errorf("scan stock movement failed: %w", err)
		}
		moves = append(moves, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("movement iteration failed: %w", err)
	}

	for _, m := range moves {
		if err := reverseMovementTx(tx, ctx, m); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `DELETE FROM stock_movements WHERE voucher_id = $1`, voucherID)
	if err != nil {
		return fmt.Errorf("clear stock movements failed: %w", err)
	}
	return nil
}

func reverseMovementTx(tx pgx.Tx, ctx context.Context, m models.StockMovement) error {
	// make sure the batch row still exists before reversing into it
	_, err := tx.Exec(ctx, `
		INSERT INTO batches (product_id, batch_no, quantity, stock_in, stock_out)
		VALUES ($1, $2, 0, 0, 0)
		ON CONFLICT (product_id, batch_no) DO NOTHING
	`, m.ProductID, m.BatchNo)
	if err != nil {
		return fmt.Errorf("recreate batch failed: %w", err)
	}

	var quantity, stockIn, stockOut float64
	err = tx.QueryRow(ctx, `
		SELECT quantity, stock_in, stock_out FROM batches
		WHERE product_id = $1 AND batch_no = $2
		FOR UPDATE
	`, m.ProductID, m.BatchNo).Scan(&quantity, &stockIn, &stockOut)
	if err != nil {
		return fmt.Errorf("lock batch for reversal failed: %w", err)
	}

	quantity, stockIn, stockOut = reverseBatchFigures(quantity, stockIn, stockOut, m)

	_, err = tx.Exec(ctx, `
		UPDATE batches SET
			quantity   = $1,
			stock_in   = $2,
			stock_out  = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE product_id = $4 AND batch_no = $5
	`, quantity, stockIn, stockOut, m.ProductID, m.BatchNo)
	if err != nil {
		return fmt.Errorf("reverse batch update failed: %w", err)
	}
	return nil
}

// reverseBatchFigures applies the inverse of one signed movement to a batch's
// (quantity, stock_in, stock_out) triple. A delta that would drive a figure
// negative floors at zero.
func reverseBatchFigures(quantity, stockIn, stockOut float64, m models.StockMovement) (float64, float64, float64) {
	if m.Quantity > 0 {
		// original was stock in: take it back out
		quantity = clampZero(quantity-m.Quantity, m, "quantity")
		stockIn = clampZero(stockIn-m.Quantity, m, "stock_in")
	} else {
		// original was stock out: put it back
		quantity += -m.Quantity
		stockOut = clampZero(stockOut-(-m.Quantity), m, "stock_out")
	}
	return quantity, stockIn, stockOut
}

func clampZero(v float64, m models.StockMovement, field string) float64 {
	if v < 0 {
		log.Printf("stock reversal underflow on %s for product %d batch %q (%.2f), floored at 0",
			field, m.ProductID, m.BatchNo, v)
		return 0
	}
	return v
}

// ListBatchMovements returns the movement log for a voucher, newest last.
func ListBatchMovements(db *pgxpool.Pool, ctx context.Context, voucherID int64) ([]models.StockMovement, error) {
	rows, err := db.Query(ctx, `
		SELECT id, voucher_id, product_id, batch_no, quantity, created_at
		FROM stock_movements
		WHERE voucher_id = $1
		ORDER BY id
	`, voucherID)
	if err != nil {
		return nil, fmt.Errorf("query stock movements failed: %w", err)
	}
	defer rows.Close()

	var moves []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.VoucherID, &m.ProductID, &m.BatchNo, &m.Quantity, &createdAt); err != nil {
			return nil, fmt.Errorf("scan stock movement failed: %w", err)
		}
		m.CreatedAt = createdAt
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
