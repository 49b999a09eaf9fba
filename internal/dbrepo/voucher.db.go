package dbrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/utils"
)

var ErrVoucherNotFound = errors.New("voucher not found")

type VoucherRepo struct {
	db *pgxpool.Pool
}

func NewVoucherRepo(db *pgxpool.Pool) *VoucherRepo {
	return &VoucherRepo{db: db}
}

// balanceApplies reports whether the voucher moves the counterparty's
// running unpaid balance.
func balanceApplies(v *models.Voucher) bool {
	switch v.TransactionType {
	case models.TRX_SALES, models.TRX_STOCK_TRANSFER, models.TRX_STOCK_INWARD:
		return v.PartyID != 0 && v.OrderNumber != ""
	}
	return false
}

// orderStampApplies reports whether the voucher stamps invoice fields onto
// its linked sales order.
func orderStampApplies(v *models.Voucher) bool {
	switch v.TransactionType {
	case models.TRX_SALES, models.TRX_STOCK_TRANSFER:
		return v.OrderNumber != ""
	}
	return false
}

// inheritStoredNumbers fills document numbers the caller omitted from the
// stored header. Must run before the note ceiling check, which looks up the
// source voucher by invoice number.
func inheritStoredNumbers(v, old *models.Voucher) {
	if v.InvoiceNumber == "" {
		v.InvoiceNumber = old.InvoiceNumber
	}
	if v.VchNo == "" {
		v.VchNo = old.VchNo
	}
}

// CreateVoucher posts a voucher: header + line items, stock deltas, and the
// balance/order side effects, all inside one transaction.
func (r *VoucherRepo) CreateVoucher(ctx context.Context, v *models.Voucher) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// --------------------
	// Step 1: Note ceilings (credit/debit notes only)
	// --------------------
	switch v.TransactionType {
	case models.TRX_CREDIT_NOTE:
		if err := validateNoteCeilingTx(tx, ctx, v, models.TRX_SALES, models.TRX_CREDIT_NOTE, 0); err != nil {
			return err
		}
	case models.TRX_DEBIT_NOTE:
		if err := validateNoteCeilingTx(tx, ctx, v, models.TRX_PURCHASE, models.TRX_DEBIT_NOTE, 0); err != nil {
			return err
		}
	}

	// --------------------
	// Step 2: Insert header
	// --------------------
	if v.InvoiceNumber == "" {
		v.InvoiceNumber = utils.DefaultInvoiceNo(v.TransactionType)
	}
	if err := insertVoucherHeaderTx(tx, ctx, v); err != nil {
		return err
	}
	if v.VchNo == "" {
		v.VchNo = utils.DefaultVchNo(v.TransactionType, v.VoucherID)
		_, err = tx.Exec(ctx, `UPDATE vouchers SET vch_no=$1 WHERE voucher_id=$2`, v.VchNo, v.VoucherID)
		if err != nil {
			return fmt.Errorf("set default vch_no failed: %w", err)
		}
	}

	// --------------------
	// Step 3: Insert line items
	// --------------------
	if err := insertVoucherItemsTx(tx, ctx, v); err != nil {
		return err
	}

	// --------------------
	// Step 4: Apply stock deltas
	// --------------------
	if err := ApplyVoucherStockTx(tx, ctx, v); err != nil {
		return err
	}

	// --------------------
	// Step 5: Balance and order side effects
	// --------------------
	if balanceApplies(v) {
		if err := ApplyPartyBalanceTx(tx, ctx, v.PartyID, v.TotalAmount); err != nil {
			return err
		}
	}
	if orderStampApplies(v) {
		if err := MarkOrderInvoicedTx(tx, ctx, v.OrderNumber, v.InvoiceNumber, v.OrderMode, v.OrderItemIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateVoucher replaces a voucher's money and line-item fields in place,
// reversing the old stock/balance effects and applying the new ones.
// expectedType, when non-empty, restricts which voucher kind the caller may
// touch (the credit/debit-note update endpoints).
//
// The linked order's invoice stamp is refreshed, never reverted: if the update
// moves the voucher to a different order number the previous order keeps its
// stamp — only DeleteVoucher reverts stamps.
func (r *VoucherRepo) UpdateVoucher(ctx context.Context, id int64, v *models.Voucher, expectedType string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// --------------------
	// Step 1: Load and lock the existing header
	// --------------------
	old, err := loadVoucherHeaderTx(tx, ctx, id)
	if err != nil {
		return err
	}
	if expectedType != "" && old.TransactionType != expectedType {
		return fmt.Errorf("voucher %d is a %s, not a %s", id, old.TransactionType, expectedType)
	}
	if v.TransactionType == "" {
		v.TransactionType = old.TransactionType
	}
	if v.TransactionType != old.TransactionType {
		return fmt.Errorf("transaction type cannot be changed on update")
	}
	v.VoucherID = id
	// document numbers omitted by the caller inherit the stored ones before
	// anything (the note ceiling check) keys off them
	inheritStoredNumbers(v, old)

	// --------------------
	// Step 2: Reverse old stock deltas
	// --------------------
	if err := ReverseVoucherStockTx(tx, ctx, id); err != nil {
		return err
	}

	// --------------------
	// Step 3: Replace line items
	// --------------------
	_, err = tx.Exec(ctx, `DELETE FROM voucher_items WHERE voucher_id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete old items failed: %w", err)
	}

	// --------------------
	// Step 4: Note ceilings against the source voucher (excluding self)
	// --------------------
	switch v.TransactionType {
	case models.TRX_CREDIT_NOTE:
		if err := validateNoteCeilingTx(tx, ctx, v, models.TRX_SALES, models.TRX_CREDIT_NOTE, id); err != nil {
			return err
		}
	case models.TRX_DEBIT_NOTE:
		if err := validateNoteCeilingTx(tx, ctx, v, models.TRX_PURCHASE, models.TRX_DEBIT_NOTE, id); err != nil {
			return err
		}
	}

	// --------------------
	// Step 5: Rewrite header, insert new items, apply new stock
	// --------------------
	if err := updateVoucherHeaderTx(tx, ctx, v); err != nil {
		return err
	}
	if err := insertVoucherItemsTx(tx, ctx, v); err != nil {
		return err
	}
	if err := ApplyVoucherStockTx(tx, ctx, v); err != nil {
		return err
	}

	// --------------------
	// Step 6: Rebalance the counterparty (revert old, apply new)
	// --------------------
	if balanceApplies(old) {
		if err := ApplyPartyBalanceTx(tx, ctx, old.PartyID, -old.TotalAmount); err != nil {
			return err
		}
	}
	if balanceApplies(v) {
		if err := ApplyPartyBalanceTx(tx, ctx, v.PartyID, v.TotalAmount); err != nil {
			return err
		}
	}
	if orderStampApplies(v) {
		if err := MarkOrderInvoicedTx(tx, ctx, v.OrderNumber, v.InvoiceNumber, v.OrderMode, v.OrderItemIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteVoucher undoes the voucher's stock, balance, and order side effects
// keyed off the stored rows, then removes the voucher and its line items.
func (r *VoucherRepo) DeleteVoucher(ctx context.Context, id int64) (*models.Voucher, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// --------------------
	// Step 1: Load and lock
	// --------------------
	v, err := loadVoucherHeaderTx(tx, ctx, id)
	if err != nil {
		return nil, err
	}

	// --------------------
	// Step 2: Reverse stock deltas
	// --------------------
	if err := ReverseVoucherStockTx(tx, ctx, id); err != nil {
		return nil, err
	}

	// --------------------
	// Step 3: Reverse balance and order side effects
	// --------------------
	if balanceApplies(v) {
		if err := ApplyPartyBalanceTx(tx, ctx, v.PartyID, -v.TotalAmount); err != nil {
			return nil, err
		}
	}
	if orderStampApplies(v) {
		if err := RevertOrderInvoiceTx(tx, ctx, v.OrderNumber); err != nil {
			return nil, err
		}
	}

	// --------------------
	// Step 4: Remove line items and header
	// --------------------
	_, err = tx.Exec(ctx, `DELETE FROM voucher_items WHERE voucher_id=$1`, id)
	if err != nil {
		return nil, fmt.Errorf("delete voucher items failed: %w", err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id=$1`, id)
	if err != nil {
		return nil, fmt.Errorf("delete voucher failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// -------------------------------
// IN-TRANSACTION HELPERS
// -------------------------------

func insertVoucherHeaderTx(tx pgx.Tx, ctx context.Context, v *models.Voucher) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO vouchers(
			transaction_type, invoice_number, vch_no, order_number, transaction_date,
			basic_amount, tax_amount, total_amount,
			sgst_percent, sgst_amount, cgst_percent, cgst_amount, igst_percent, igst_amount,
			total_discount, total_credit_charge, paid_amount, balance_amount,
			party_id, party_name, account_id, account_name, business_name,
			dc, data_type, order_mode, tax_system, flash_offer,
			staff_id, staff_name, attachment_name
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31)
		RETURNING voucher_id, created_at, updated_at
	`,
		v.TransactionType, v.InvoiceNumber, v.VchNo, v.OrderNumber, v.TransactionDate,
		v.BasicAmount, v.TaxAmount, v.TotalAmount,
		v.SGSTPercent, v.SGSTAmount, v.CGSTPercent, v.CGSTAmount, v.IGSTPercent, v.IGSTAmount,
		v.TotalDiscount, v.TotalCreditCharge, v.PaidAmount, v.BalanceAmount,
		v.PartyID, v.PartyName, v.AccountID, v.AccountName, v.BusinessName,
		v.DC, v.DataType, v.OrderMode, v.TaxSystem, v.FlashOffer,
		v.StaffID, v.StaffName, v.AttachmentName,
	).Scan(&v.VoucherID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert voucher failed: %w", err)
	}
	return nil
}

func updateVoucherHeaderTx(tx pgx.Tx, ctx context.Context, v *models.Voucher) error {
	_, err := tx.Exec(ctx, `
		UPDATE vouchers SET
			invoice_number = $1, vch_no = $2, order_number = $3, transaction_date = $4,
			basic_amount = $5, tax_amount = $6, total_amount = $7,
			sgst_percent = $8, sgst_amount = $9, cgst_percent = $10, cgst_amount = $11,
			igst_percent = $12, igst_amount = $13,
			total_discount = $14, total_credit_charge = $15, paid_amount = $16, balance_amount = $17,
			party_id = $18, party_name = $19, account_id = $20, account_name = $21, business_name = $22,
			dc = $23, data_type = $24, order_mode = $25, tax_system = $26, flash_offer = $27,
			staff_id = $28, staff_name = $29,
			updated_at = CURRENT_TIMESTAMP
		WHERE voucher_id = $30
	`,
		v.InvoiceNumber, v.VchNo, v.OrderNumber, v.TransactionDate,
		v.BasicAmount, v.TaxAmount, v.TotalAmount,
		v.SGSTPercent, v.SGSTAmount, v.CGSTPercent, v.CGSTAmount,
		v.IGSTPercent, v.IGSTAmount,
		v.TotalDiscount, v.TotalCreditCharge, v.PaidAmount, v.BalanceAmount,
		v.PartyID, v.PartyName, v.AccountID, v.AccountName, v.BusinessName,
		v.DC, v.DataType, v.OrderMode, v.TaxSystem, v.FlashOffer,
		v.StaffID, v.StaffName,
		v.VoucherID,
	)
	if err != nil {
		return fmt.Errorf("update voucher header failed: %w", err)
	}
	return nil
}

func insertVoucherItemsTx(tx pgx.Tx, ctx context.Context, v *models.Voucher) error {
	for i := range v.Items {
		item := &v.Items[i]
		item.VoucherID = v.VoucherID
		err := tx.QueryRow(ctx, `
			INSERT INTO voucher_items(
				voucher_id, product_id, product, batch,
				quantity, stock_deduction_quantity, price, discount,
				gst_amount, cgst_amount, sgst_amount, igst_amount, cess_amount,
				total, mfg_date
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
			RETURNING id
		`,
			v.VoucherID, item.ProductID, item.Product, item.Batch,
			item.Quantity, item.StockDeductionQty, item.Price, item.Discount,
			item.GSTAmount, item.CGSTAmount, item.SGSTAmount, item.IGSTAmount, item.CessAmount,
			item.Total, item.MfgDate,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert voucher item failed: %w", err)
		}
	}
	return nil
}

// loadVoucherHeaderTx fetches and row-locks a voucher header.
func loadVoucherHeaderTx(tx pgx.Tx, ctx context.Context, id int64) (*models.Voucher, error) {
	var v models.Voucher
	err := tx.QueryRow(ctx, `
		SELECT voucher_id, transaction_type, invoice_number, vch_no, order_number, transaction_date,
			basic_amount, tax_amount, total_amount,
			sgst_percent, sgst_amount, cgst_percent, cgst_amount, igst_percent, igst_amount,
			total_discount, total_credit_charge, paid_amount, balance_amount,
			party_id, party_name, account_id, account_name, business_name,
			dc, data_type, order_mode, tax_system, flash_offer,
			staff_id, staff_name, created_at, updated_at
		FROM vouchers
		WHERE voucher_id = $1
		FOR UPDATE
	`, id).Scan(
		&v.VoucherID, &v.TransactionType, &v.InvoiceNumber, &v.VchNo, &v.OrderNumber, &v.TransactionDate,
		&v.BasicAmount, &v.TaxAmount, &v.TotalAmount,
		&v.SGSTPercent, &v.SGSTAmount, &v.CGSTPercent, &v.CGSTAmount, &v.IGSTPercent, &v.IGSTAmount,
		&v.TotalDiscount, &v.TotalCreditCharge, &v.PaidAmount, &v.BalanceAmount,
		&v.PartyID, &v.PartyName, &v.AccountID, &v.AccountName, &v.BusinessName,
		&v.DC, &v.DataType, &v.OrderMode, &v.TaxSystem, &v.FlashOffer,
		&v.StaffID, &v.StaffName, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load voucher failed: %w", err)
	}
	return &v, nil
}

// validateNoteCeilingTx checks that each note line stays within the net
// quantity available on the originating voucher: quantity sold/purchased on
// the source invoice, minus prior notes of the same kind against it.
func validateNoteCeilingTx(tx pgx.Tx, ctx context.Context, v *models.Voucher, sourceType, noteType string, excludeVoucherID int64) error {
	var sourceCount int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM vouchers
		WHERE invoice_number = $1 AND transaction_type = $2
	`, v.InvoiceNumber, sourceType).Scan(&sourceCount)
	if err != nil {
		return fmt.Errorf("lookup source voucher failed: %w", err)
	}
	if sourceCount == 0 {
		return &SourceVoucherNotFoundError{InvoiceNumber: v.InvoiceNumber, TransactionType: sourceType}
	}

	for _, item := range v.Items {
		var sourceQty float64
		err := tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(vi.quantity), 0)
			FROM voucher_items vi
			JOIN vouchers vo ON vo.voucher_id = vi.voucher_id
			WHERE vo.invoice_number = $1 AND vo.transaction_type = $2
			  AND vi.product_id = $3 AND vi.batch = $4
		`, v.InvoiceNumber, sourceType, item.ProductID, item.Batch).Scan(&sourceQty)
		if err != nil {
			return fmt.Errorf("sum source quantity failed: %w", err)
		}

		var priorNoteQty float64
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(vi.quantity), 0)
			FROM voucher_items vi
			JOIN vouchers vo ON vo.voucher_id = vi.voucher_id
			WHERE vo.invoice_number = $1 AND vo.transaction_type = $2
			  AND vi.product_id = $3 AND vi.batch = $4
			  AND vo.voucher_id <> $5
		`, v.InvoiceNumber, noteType, item.ProductID, item.Batch, excludeVoucherID).Scan(&priorNoteQty)
		if err != nil {
			return fmt.Errorf("sum prior note quantity failed: %w", err)
		}

		available := sourceQty - priorNoteQty
		if item.Quantity > available {
			return &QuantityExceedsSourceError{
				ProductID: item.ProductID,
				Batch:     item.Batch,
				Available: available,
				Requested: item.Quantity,
			}
		}
	}
	return nil
}

// -------------------------------
// READS
// -------------------------------

// GetVoucherByID fetches a voucher with its line items.
func (r *VoucherRepo) GetVoucherByID(ctx context.Context, id int64) (*models.Voucher, error) {
	var v models.Voucher
	err := r.db.QueryRow(ctx, `
		SELECT voucher_id, transaction_type, invoice_number, vch_no, order_number, transaction_date,
			basic_amount, tax_amount, total_amount,
			sgst_percent, sgst_amount, cgst_percent, cgst_amount, igst_percent, igst_amount,
			total_discount, total_credit_charge, paid_amount, balance_amount,
			party_id, party_name, account_id, account_name, business_name,
			dc, data_type, order_mode, tax_system, flash_offer,
			staff_id, staff_name, created_at, updated_at
		FROM vouchers
		WHERE voucher_id = $1
	`, id).Scan(
		&v.VoucherID, &v.TransactionType, &v.InvoiceNumber, &v.VchNo, &v.OrderNumber, &v.TransactionDate,
		&v.BasicAmount, &v.TaxAmount, &v.TotalAmount,
		&v.SGSTPercent, &v.SGSTAmount, &v.CGSTPercent, &v.CGSTAmount, &v.IGSTPercent, &v.IGSTAmount,
		&v.TotalDiscount, &v.TotalCreditCharge, &v.PaidAmount, &v.BalanceAmount,
		&v.PartyID, &v.PartyName, &v.AccountID, &v.AccountName, &v.BusinessName,
		&v.DC, &v.DataType, &v.OrderMode, &v.TaxSystem, &v.FlashOffer,
		&v.StaffID, &v.StaffName, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch voucher failed: %w", err)
	}

	items, err := r.GetVoucherItems(ctx, id, 0)
	if err != nil {
		return nil, err
	}
	v.Items = items
	return &v, nil
}

// GetVoucherItems fetches line items by voucher and/or product.
func (r *VoucherRepo) GetVoucherItems(ctx context.Context, voucherID, productID int64) ([]models.VoucherItem, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if voucherID > 0 {
		conditions = append(conditions, fmt.Sprintf("voucher_id = $%d", argPos))
		args = append(args, voucherID)
		argPos++
	}
	if productID > 0 {
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", argPos))
		args = append(args, productID)
		argPos++
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT id, voucher_id, product_id, product, batch,
			quantity, stock_deduction_quantity, price, discount,
			gst_amount, cgst_amount, sgst_amount, igst_amount, cess_amount,
			total, mfg_date
		FROM voucher_items
		%s
		ORDER BY voucher_id, id
	`, whereClause), args...)
	if err != nil {
		return nil, fmt.Errorf("query voucher items failed: %w", err)
	}
	defer rows.Close()

	items := make([]models.VoucherItem, 0)
	for rows.Next() {
		var it models.VoucherItem
		if err := rows.Scan(
			&it.ID, &it.VoucherID, &it.ProductID, &it.Product, &it.Batch,
			&it.Quantity, &it.StockDeductionQty, &it.Price, &it.Discount,
			&it.GSTAmount, &it.CGSTAmount, &it.SGSTAmount, &it.IGSTAmount, &it.CessAmount,
			&it.Total, &it.MfgDate,
		); err != nil {
			return nil, fmt.Errorf("scan voucher item failed: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListVouchers returns vouchers filtered by kind/party/date, paginated.
func (r *VoucherRepo) ListVouchers(
	ctx context.Context,
	transactionType string,
	partyID int64,
	startDate, endDate string,
	search string,
	page, limit int,
) ([]models.Voucher, int64, error) {

	var conditions []string
	var args []interface{}
	argPos := 1

	if transactionType != "" {
		conditions = append(conditions, fmt.Sprintf("transaction_type = $%d", argPos))
		args = append(args, transactionType)
		argPos++
	}
	if partyID > 0 {
		conditions = append(conditions, fmt.Sprintf("party_id = $%d", argPos))
		args = append(args, partyID)
		argPos++
	}
	if startDate != "" && endDate != "" {
		conditions = append(conditions, fmt.Sprintf("transaction_date::date BETWEEN $%d AND $%d", argPos, argPos+1))
		args = append(args, startDate, endDate)
		argPos += 2
	}
	search = strings.TrimSpace(search)
	if search != "" {
		searchTerm := "%" + search + "%"
		conditions = append(conditions, fmt.Sprintf(`
			(invoice_number ILIKE $%d OR vch_no ILIKE $%d OR party_name ILIKE $%d)
		`, argPos, argPos, argPos))
		args = append(args, searchTerm)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM vouchers %s", whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count vouchers failed: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	dataQuery := fmt.Sprintf(`
		SELECT voucher_id, transaction_type, invoice_number, vch_no, order_number, transaction_date,
			basic_amount, tax_amount, total_amount, total_discount, total_credit_charge,
			paid_amount, balance_amount,
			party_id, party_name, account_id, account_name,
			dc, order_mode, tax_system, created_at, updated_at
		FROM vouchers
		%s
		ORDER BY transaction_date DESC, voucher_id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query vouchers failed: %w", err)
	}
	defer rows.Close()

	vouchers := make([]models.Voucher, 0)
	for rows.Next() {
		var v models.Voucher
		if err := rows.Scan(
			&v.VoucherID, &v.TransactionType, &v.InvoiceNumber, &v.VchNo, &v.OrderNumber, &v.TransactionDate,
			&v.BasicAmount, &v.TaxAmount, &v.TotalAmount, &v.TotalDiscount, &v.TotalCreditCharge,
			&v.PaidAmount, &v.BalanceAmount,
			&v.PartyID, &v.PartyName, &v.AccountID, &v.AccountName,
			&v.DC, &v.OrderMode, &v.TaxSystem, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan voucher failed: %w", err)
		}
		vouchers = append(vouchers, v)
	}

	return vouchers, totalCount, rows.Err()
}
