package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/port"
)

// MySQLOrderAdapter persists orders across two tables: orders (one row
// per order, auto-increment id preserving insertion order) and
// order_items (line items, position-ordered). Totals are not stored;
// readers recompute them from items.
type MySQLOrderAdapter struct {
	db *sql.DB
}

func NewMySQLOrderAdapter(db *sql.DB) *MySQLOrderAdapter {
	return &MySQLOrderAdapter{db: db}
}

func (m *MySQLOrderAdapter) Append(ctx context.Context, order domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_number, customer_name, size, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		order.OrderNumber, order.CustomerName, order.Size, order.Status, order.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("order id: %w", err)
	}

	for i, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, item_id, name, unit_price, quantity)
			VALUES (?, ?, ?, ?, ?, ?)`,
			orderID, i, item.ID, item.Name, item.UnitPrice, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (m *MySQLOrderAdapter) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, order_number, customer_name, size, status, created_at
		FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	ids := make(map[int64]int)
	for rows.Next() {
		var id int64
		var o domain.Order
		if err := rows.Scan(&id, &o.OrderNumber, &o.CustomerName, &o.Size, &o.Status, &o.Timestamp); err != nil {
			// Malformed row: skip it instead of failing the whole read.
			continue
		}
		o.Items = []domain.LineItem{}
		ids[id] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	itemRows, err := m.db.QueryContext(ctx, `
		SELECT order_id, item_id, name, unit_price, quantity
		FROM order_items ORDER BY order_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var item domain.LineItem
		if err := itemRows.Scan(&orderID, &item.ID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			continue
		}
		idx, ok := ids[orderID]
		if !ok {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("scan order items: %w", err)
	}

	return orders, nil
}

func (m *MySQLOrderAdapter) UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	var id int64
	err := m.db.QueryRowContext(ctx,
		`SELECT id FROM orders WHERE order_number = ?`, orderNumber,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return port.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}

	// A plain rows-affected check cannot distinguish "missing" from
	// "already had this status", hence the lookup above.
	_, err = m.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (m *MySQLOrderAdapter) Delete(ctx context.Context, orderNumber string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM orders WHERE order_number = ?`, orderNumber,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return port.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	return tx.Commit()
}
