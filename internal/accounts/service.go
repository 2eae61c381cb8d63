package accounts

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	Insert(ctx context.Context, a Account) (int64, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
}

type Service struct {
	Store Store
}

// Register creates an account with the given role. The username check is
// case-sensitive; the unique index on users.username backs it up under
// concurrent registrations.
func (s *Service) Register(ctx context.Context, username, password string, role Role) (Account, error) {
	if _, err := s.Store.GetByUsername(ctx, username); err == nil {
		return Account{}, ErrDuplicateUsername
	} else if !errors.Is(err, ErrAccountNotFound) {
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}
	a := Account{Username: username, PasswordHash: string(hash), Role: role}
	id, err := s.Store.Insert(ctx, a)
	if err != nil {
		return Account{}, err
	}
	a.ID = id
	return a, nil
}

// Authenticate returns the account on an exact username + password match.
// Unknown user and wrong password report the same ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Account, error) {
	a, err := s.Store.GetByUsername(ctx, username)
	if errors.Is(err, ErrAccountNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Account, error) {
	return s.Store.GetByID(ctx, id)
}
