package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// -------------------------------
// PARTY BALANCE
// -------------------------------

// ApplyPartyBalanceTx moves the counterparty's running unpaid balance by
// delta (positive on post, negative on delete). The figure floors at zero,
// and balance_amount is maintained only for accounts that carry a credit
// limit; accounts without one just track unpaid_amount.
func ApplyPartyBalanceTx(tx pgx.Tx, ctx context.Context, partyID int64, delta float64) error {
	if partyID == 0 || delta == 0 {
		return nil
	}

	// lock account row
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM accounts WHERE id=$1 FOR UPDATE`, partyID).Scan(&id)
	if err == pgx.ErrNoRows {
		// party account no longer exists; nothing to maintain
		return nil
	}
	if err != nil {
		return fmt.Errorf("lock account failed: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE accounts SET
			unpaid_amount  = GREATEST(unpaid_amount + $1, 0),
			balance_amount = CASE
				WHEN credit_limit IS NULL THEN balance_amount
				ELSE credit_limit - GREATEST(unpaid_amount + $1, 0)
			END,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, delta, partyID)
	if err != nil {
		return fmt.Errorf("update party balance failed: %w", err)
	}
	return nil
}

// -------------------------------
// ORDER INVOICE STATUS
// -------------------------------

// MarkOrderInvoicedTx stamps the invoice number/date onto the linked order
// and flips its line items to invoiced. When itemIDs is non-empty only that
// subset of lines is stamped; otherwise all of them are.
func MarkOrderInvoicedTx(tx pgx.Tx, ctx context.Context, orderNumber, invoiceNumber string, orderMode string, itemIDs []int64) error {
	var orderID int64
	err := tx.QueryRow(ctx, `SELECT id FROM orders WHERE order_number=$1 FOR UPDATE`, orderNumber).Scan(&orderID)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("order %q not found", orderNumber)
	}
	if err != nil {
		return fmt.Errorf("lock order failed: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE orders SET
			invoice_number = $1,
			invoice_date   = CURRENT_DATE,
			order_status   = 'Invoice',
			order_mode     = COALESCE(NULLIF($2, ''), order_mode),
			updated_at     = CURRENT_TIMESTAMP
		WHERE id = $3
	`, invoiceNumber, orderMode, orderID)
	if err != nil {
		return fmt.Errorf("stamp order invoice failed: %w", err)
	}

	if len(itemIDs) > 0 {
		_, err = tx.Exec(ctx, `
			UPDATE order_items SET
				invoice_status = 1,
				invoice_number = $1,
				invoice_date   = CURRENT_DATE
			WHERE order_id = $2 AND id = ANY($3)
		`, invoiceNumber, orderID, itemIDs)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE order_items SET
				invoice_status = 1,
				invoice_number = $1,
				invoice_date   = CURRENT_DATE
			WHERE order_id = $2
		`, invoiceNumber, orderID)
	}
	if err != nil {
		return fmt.Errorf("stamp order items failed: %w", err)
	}
	return nil
}

// RevertOrderInvoiceTx puts the linked order and all of its line items back
// to pending / un-invoiced, used when the voucher is deleted.
func RevertOrderInvoiceTx(tx pgx.Tx, ctx context.Context, orderNumber string) error {
	var orderID int64
	err := tx.QueryRow(ctx, `SELECT id FROM orders WHERE order_number=$1 FOR UPDATE`, orderNumber).Scan(&orderID)
	if err == pgx.ErrNoRows {
		// order was removed independently; nothing to revert
		return nil
	}
	if err != nil {
		return fmt.Errorf("lock order failed: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE orders SET
			invoice_number = NULL,
			invoice_date   = NULL,
			order_status   = 'Pending',
			updated_at     = CURRENT_TIMESTAMP
		WHERE id = $1
	`, orderID)
	if err != nil {
		return fmt.Errorf("revert order invoice failed: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE order_items SET
			invoice_status = 0,
			invoice_number = NULL,
			invoice_date   = NULL
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return fmt.Errorf("revert order items failed: %w", err)
	}
	return nil
}
