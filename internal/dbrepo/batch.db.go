package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
)

type BatchRepo struct {
	db *pgxpool.Pool
}

func NewBatchRepo(db *pgxpool.Pool) *BatchRepo {
	return &BatchRepo{db: db}
}

// ListBatches returns the batch stock rows for a product (or all products
// when productID is zero), oldest manufacture first.
func (r *BatchRepo) ListBatches(ctx context.Context, productID int64) ([]models.Batch, error) {
	query := `
		SELECT id, product_id, batch_no, quantity, stock_in, stock_out, mfg_date, created_at, updated_at
		FROM batches
	`
	var args []interface{}
	if productID > 0 {
		query += ` WHERE product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY product_id, mfg_date ASC NULLS LAST, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query batches failed: %w", err)
	}
	defer rows.Close()

	batches := make([]models.Batch, 0)
	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.BatchNo, &b.Quantity, &b.StockIn, &b.StockOut,
			&b.MfgDate, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan batch failed: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// GetBatch fetches one (product, batch) stock row.
func (r *BatchRepo) GetBatch(ctx context.Context, productID int64, batchNo string) (*models.Batch, error) {
	var b models.Batch
	err := r.db.QueryRow(ctx, `
		SELECT id, product_id, batch_no, quantity, stock_in, stock_out, mfg_date, created_at, updated_at
		FROM batches
		WHERE product_id = $1 AND batch_no = $2
	`, productID, batchNo).Scan(
		&b.ID, &b.ProductID, &b.BatchNo, &b.Quantity, &b.StockIn, &b.StockOut,
		&b.MfgDate, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, &BatchNotFoundError{ProductID: productID, Batch: batchNo}
	}
	if err != nil {
		return nil, fmt.Errorf("fetch batch failed: %w", err)
	}
	return &b, nil
}
