package accounts

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the account may use the admin menu. An account
// without a role is neither admin nor customer.
func IsAdmin(a Account) bool { return a.Role == RoleAdmin }

func IsCustomer(a Account) bool { return a.Role == RoleCustomer }
