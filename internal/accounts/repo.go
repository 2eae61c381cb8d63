package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Insert(ctx context.Context, a Account) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO users(username, password, role)
		VALUES ($1, $2, $3) RETURNING id`,
		a.Username, a.PasswordHash, a.Role).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation pada users.username
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return id, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (Account, error) {
	var a Account
	err := r.DB.QueryRow(ctx, `
		SELECT id, username, password, role, created_at
		FROM users WHERE username = $1`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return a, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (Account, error) {
	var a Account
	err := r.DB.QueryRow(ctx, `
		SELECT id, username, password, role, created_at
		FROM users WHERE id = $1`, id).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		return Account{}, err
	}
	return a, nil
}
