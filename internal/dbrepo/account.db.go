package dbrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
)

type AccountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepo(db *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{db: db}
}

// CreateAccount inserts a counterparty account and stores an in-app
// notification about it in the same transaction.
func (r *AccountRepo) CreateAccount(ctx context.Context, a *models.Account) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if a.Status == "" {
		a.Status = "active"
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO accounts(
			name, business_name, type, mobile, email, gstin, address,
			unpaid_amount, credit_limit, balance_amount, status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,
			CASE WHEN $9::numeric IS NULL THEN NULL ELSE $9::numeric - $8::numeric END,
			$10)
		RETURNING id, created_at, updated_at
	`,
		a.Name, a.BusinessName, a.Type, a.Mobile, a.Email, a.GSTIN, a.Address,
		a.UnpaidAmount, a.CreditLimit, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert account failed: %w", err)
	}

	if err := InsertNotificationTx(tx, ctx, &models.Notification{
		Title:    "Account created",
		Message:  fmt.Sprintf("Account %q (%s) was created", a.Name, a.Type),
		Category: "account",
	}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetAccountByID fetches a single account.
func (r *AccountRepo) GetAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	var a models.Account
	err := r.db.QueryRow(ctx, `
		SELECT id, name, business_name, type, mobile, email, gstin, address,
			unpaid_amount, credit_limit, balance_amount, status, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Name, &a.BusinessName, &a.Type, &a.Mobile, &a.Email, &a.GSTIN, &a.Address,
		&a.UnpaidAmount, &a.CreditLimit, &a.BalanceAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch account failed: %w", err)
	}
	return &a, nil
}

// ListAccounts returns accounts with optional type/search filters, paginated.
func (r *AccountRepo) ListAccounts(ctx context.Context, accountType, search string, page, limit int) ([]models.Account, int64, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if accountType != "" && accountType != "all" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, accountType)
		argPos++
	}
	search = strings.TrimSpace(search)
	if search != "" {
		searchTerm := "%" + search + "%"
		conditions = append(conditions, fmt.Sprintf(`
			(name ILIKE $%d OR business_name ILIKE $%d OR mobile ILIKE $%d)
		`, argPos, argPos, argPos))
		args = append(args, searchTerm)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM accounts %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count accounts failed: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	dataQuery := fmt.Sprintf(`
		SELECT id, name, business_name, type, mobile, email, gstin, address,
			unpaid_amount, credit_limit, balance_amount, status, created_at, updated_at
		FROM accounts
		%s
		ORDER BY name
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query accounts failed: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(
			&a.ID, &a.Name, &a.BusinessName, &a.Type, &a.Mobile, &a.Email, &a.GSTIN, &a.Address,
			&a.UnpaidAmount, &a.CreditLimit, &a.BalanceAmount, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan account failed: %w", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, totalCount, rows.Err()
}
