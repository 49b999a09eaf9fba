package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/models"
)

type OrderRepo struct {
	db *pgxpool.Pool
}

func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// GetOrderByNumber fetches an order with its line items and invoice status.
func (r *OrderRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx, `
		SELECT id, order_number, order_date, party_id, party_name, total_amount,
			order_status, order_mode, invoice_number, invoice_date, created_at, updated_at
		FROM orders
		WHERE order_number = $1
	`, orderNumber).Scan(
		&o.ID, &o.OrderNumber, &o.OrderDate, &o.PartyID, &o.PartyName, &o.TotalAmount,
		&o.OrderStatus, &o.OrderMode, &o.InvoiceNumber, &o.InvoiceDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("fetch order failed: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, price, subtotal,
			invoice_status, invoice_number, invoice_date
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch order items failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price, &it.Subtotal,
			&it.InvoiceStatus, &it.InvoiceNumber, &it.InvoiceDate,
		); err != nil {
			return nil, fmt.Errorf("scan order item failed: %w", err)
		}
		o.Items = append(o.Items, it)
	}

	return &o, rows.Err()
}
