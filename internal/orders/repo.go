package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LineInput is one cart line at checkout: item, quantity and the price
// snapshot the total was computed from.
type LineInput struct {
	InventoryItemID int64
	Quantity        int
	Price           float64
}

type Repo struct{ DB *pgxpool.Pool }

// CreateOrderTx inserts the order, its line items and the (simulated,
// always-SUCCESS) payment record in a single transaction, so a failure
// mid-sequence leaves no partial records behind.
func (r *Repo) CreateOrderTx(ctx context.Context, accountID int64, total float64, lines []LineInput, method PaymentMethod) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	var orderID int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO orders(user_id, status, total_amount, order_date)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		accountID, StatusCreated, total, now).Scan(&orderID); err != nil {
		return 0, err
	}

	for _, ln := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			orderID, ln.InventoryItemID, ln.Quantity, ln.Price); err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO payments(order_id, payment_method, status, amount, payment_date)
		VALUES ($1, $2, $3, $4, $5)`,
		orderID, method, PaymentSuccess, total, now); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

// ApproveTx: lock order -> cek CREATED -> lock stok per product (FOR UPDATE)
// -> kurangi -> set ACCEPTED. Kekurangan pada salah satu item membatalkan
// seluruhnya (rollback), jadi stok tidak pernah terpotong sebagian dan dua
// approval bersamaan tidak bisa oversell.
func (r *Repo) ApproveTx(ctx context.Context, orderID int64) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	status, err := lockStatus(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if !CanTransition(status, StatusAccepted) {
		return fmt.Errorf("%w: order %d is %s", ErrInvalidTransition, orderID, status)
	}

	rows, err := tx.Query(ctx, `
		SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return err
	}
	type line struct {
		productID int64
		qty       int
	}
	var lines []line
	for rows.Next() {
		var ln line
		if err := rows.Scan(&ln.productID, &ln.qty); err != nil {
			rows.Close()
			return err
		}
		lines = append(lines, ln)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	var shortages []StockShortage
	for _, ln := range lines {
		var stock int
		err := tx.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1 FOR UPDATE`, ln.productID).Scan(&stock)
		if errors.Is(err, pgx.ErrNoRows) {
			// product dihapus setelah order dibuat
			shortages = append(shortages, StockShortage{InventoryItemID: ln.productID, Required: ln.qty, Available: 0})
			continue
		}
		if err != nil {
			return err
		}
		if stock < ln.qty {
			shortages = append(shortages, StockShortage{InventoryItemID: ln.productID, Required: ln.qty, Available: stock})
			continue
		}
		if _, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`,
			ln.productID, ln.qty); err != nil {
			return err
		}
	}
	if len(shortages) > 0 {
		return &InsufficientStockError{Details: shortages} // rollback via defer
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, orderID, StatusAccepted); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// DeclineTx sets the order REJECTED and the payment REFUNDED in the same
// transaction: the refund happens exactly when the decline does.
func (r *Repo) DeclineTx(ctx context.Context, orderID int64) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	status, err := lockStatus(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if !CanTransition(status, StatusRejected) {
		return fmt.Errorf("%w: order %d is %s", ErrInvalidTransition, orderID, status)
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, orderID, StatusRejected); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE payments SET status = $2 WHERE order_id = $1`, orderID, PaymentRefunded); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repo) DeliverTx(ctx context.Context, orderID int64) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	status, err := lockStatus(ctx, tx, orderID)
	if err != nil {
		return err
	}
	if !CanTransition(status, StatusDelivered) {
		return fmt.Errorf("%w: order %d is %s", ErrInvalidTransition, orderID, status)
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, orderID, StatusDelivered); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func lockStatus(ctx context.Context, tx pgx.Tx, orderID int64) (Status, error) {
	var s Status
	err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	return s, nil
}

func (r *Repo) GetByID(ctx context.Context, orderID int64) (Transaction, error) {
	var t Transaction
	err := r.DB.QueryRow(ctx, `
		SELECT id, user_id, status, total_amount, order_date
		FROM orders WHERE id = $1`, orderID).
		Scan(&t.ID, &t.AccountID, &t.Status, &t.Total, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, ErrOrderNotFound
	}
	if err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Transaction, error) {
	return r.list(ctx, `
		SELECT id, user_id, status, total_amount, order_date
		FROM orders ORDER BY order_date DESC`)
}

func (r *Repo) ListByAccount(ctx context.Context, accountID int64) ([]Transaction, error) {
	return r.list(ctx, `
		SELECT id, user_id, status, total_amount, order_date
		FROM orders WHERE user_id = $1 ORDER BY order_date DESC`, accountID)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]Transaction, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Status, &t.Total, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) LineItems(ctx context.Context, orderID int64) ([]LineItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LineItem
	for rows.Next() {
		var li LineItem
		if err := rows.Scan(&li.ID, &li.TransactionID, &li.InventoryItemID, &li.Quantity, &li.PriceAtPurchase); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

func (r *Repo) PaymentByOrder(ctx context.Context, orderID int64) (PaymentRecord, error) {
	var p PaymentRecord
	err := r.DB.QueryRow(ctx, `
		SELECT id, order_id, payment_method, status, amount, payment_date
		FROM payments WHERE order_id = $1`, orderID).
		Scan(&p.ID, &p.TransactionID, &p.Method, &p.Status, &p.Amount, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return PaymentRecord{}, ErrOrderNotFound
	}
	if err != nil {
		return PaymentRecord{}, err
	}
	return p, nil
}
