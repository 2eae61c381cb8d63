package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Create(ctx context.Context, it InventoryItem) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO products(name, description, price, stock)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		it.Name, it.Description, it.Price, it.Stock).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, it InventoryItem) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5, updated_at = now()
		WHERE id = $1`,
		it.ID, it.Name, it.Description, it.Price, it.Stock)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (InventoryItem, error) {
	var it InventoryItem
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products WHERE id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Stock, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return InventoryItem{}, ErrItemNotFound
	}
	if err != nil {
		return InventoryItem{}, err
	}
	return it, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]InventoryItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InventoryItem
	for rows.Next() {
		var it InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.Stock, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// AdjustStock decrements stock by qty in a single statement. It does not
// floor at zero; the approval transaction in the orders repo owns the
// sufficient-stock guarantee.
func (r *Repo) AdjustStock(ctx context.Context, id int64, qty int) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1`, id, qty)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
