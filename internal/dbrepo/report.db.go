package dbrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
)

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepo(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{db: db}
}

// GetLedger returns a party's voucher statement with a running balance.
// Debit vouchers increase the balance, credit vouchers decrease it.
func (r *ReportRepo) GetLedger(ctx context.Context, partyID int64, startDate, endDate string) ([]models.LedgerEntry, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	conditions = append(conditions, fmt.Sprintf("party_id = $%d", argPos))
	args = append(args, partyID)
	argPos++

	if startDate != "" && endDate != "" {
		conditions = append(conditions, fmt.Sprintf("transaction_date::date BETWEEN $%d AND $%d", argPos, argPos+1))
		args = append(args, startDate, endDate)
		argPos += 2
	}

	query := fmt.Sprintf(`
		SELECT voucher_id, transaction_date, transaction_type, invoice_number, dc, total_amount
		FROM vouchers
		WHERE %s
		ORDER BY transaction_date ASC, voucher_id ASC
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger failed: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	running := 0.0
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(
			&e.VoucherID, &e.TransactionDate, &e.TransactionType, &e.InvoiceNumber, &e.DC, &e.Amount,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry failed: %w", err)
		}
		if e.DC == models.DC_DEBIT {
			running += e.Amount
		} else {
			running -= e.Amount
		}
		e.RunningBalance = running
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetDayBook aggregates voucher totals per day and transaction kind.
func (r *ReportRepo) GetDayBook(ctx context.Context, startDate, endDate time.Time) ([]models.DayBookRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT transaction_date::date AS day, transaction_type,
			COUNT(*) AS voucher_count,
			COALESCE(SUM(basic_amount), 0),
			COALESCE(SUM(tax_amount), 0),
			COALESCE(SUM(total_amount), 0)
		FROM vouchers
		WHERE transaction_date::date BETWEEN $1 AND $2
		GROUP BY day, transaction_type
		ORDER BY day, transaction_type
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("query day book failed: %w", err)
	}
	defer rows.Close()

	report := make([]models.DayBookRow, 0)
	for rows.Next() {
		var row models.DayBookRow
		if err := rows.Scan(
			&row.Date, &row.TransactionType, &row.VoucherCount,
			&row.BasicAmount, &row.TaxAmount, &row.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("scan day book row failed: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// GetStockReport returns the batch stock snapshot, optionally filtered by a
// search over batch number.
func (r *ReportRepo) GetStockReport(ctx context.Context, search string, page, limit int) ([]models.Batch, int64, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	search = strings.TrimSpace(search)
	if search != "" {
		conditions = append(conditions, fmt.Sprintf("batch_no ILIKE $%d", argPos))
		args = append(args, "%"+search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM batches %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count batches failed: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	dataQuery := fmt.Sprintf(`
		SELECT id, product_id, batch_no, quantity, stock_in, stock_out, mfg_date, created_at, updated_at
		FROM batches
		%s
		ORDER BY product_id, batch_no
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query stock report failed: %w", err)
	}
	defer rows.Close()

	batches := make([]models.Batch, 0)
	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.BatchNo, &b.Quantity, &b.StockIn, &b.StockOut,
			&b.MfgDate, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan stock row failed: %w", err)
		}
		batches = append(batches, b)
	}

	return batches, totalCount, rows.Err()
}
