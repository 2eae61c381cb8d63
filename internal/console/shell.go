package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ariefcatur/go-retail-console.git/internal/accounts"
	"github.com/ariefcatur/go-retail-console.git/internal/catalog"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
)

// Shell is the console menu loop. All business outcomes come back from the
// services as values/errors; printing happens only here.
type Shell struct {
	In       *bufio.Scanner
	Out      io.Writer
	Accounts *accounts.Service
	Catalog  *catalog.Repo
	Orders   *orders.Service

	eof bool // stdin closed
}

// Run loops until the user exits from the main menu or stdin closes.
func (s *Shell) Run(ctx context.Context) {
	var sess *Session
	for !s.eof {
		switch {
		case sess == nil:
			if s.mainMenu(ctx, &sess) {
				return
			}
		case accounts.IsAdmin(sess.Account):
			s.adminMenu(ctx, &sess)
		default:
			s.customerMenu(ctx, &sess)
		}
	}
}

func (s *Shell) mainMenu(ctx context.Context, sess **Session) (quit bool) {
	s.printf("\n===== WELCOME =====\n")
	s.printf("1. Register\n2. Login\n3. Exit\n")
	switch s.readInt("Choose an option: ") {
	case 1:
		s.register(ctx)
	case 2:
		s.login(ctx, sess)
	case 3:
		s.printf("Goodbye!\n")
		return true
	default:
		s.printf("Invalid option!\n")
	}
	return false
}

func (s *Shell) register(ctx context.Context) {
	username := s.readLine("Username: ")
	password := s.readLine("Password: ")
	_, err := s.Accounts.Register(ctx, username, password, accounts.RoleCustomer)
	switch {
	case errors.Is(err, accounts.ErrDuplicateUsername):
		s.printf("Username already exists!\n")
	case err != nil:
		s.printf("Registration failed: %v\n", err)
	default:
		s.printf("Customer registered successfully!\n")
	}
}

func (s *Shell) login(ctx context.Context, sess **Session) {
	username := s.readLine("Username: ")
	password := s.readLine("Password: ")
	a, err := s.Accounts.Authenticate(ctx, username, password)
	switch {
	case errors.Is(err, accounts.ErrInvalidCredentials):
		s.printf("Invalid username or password!\n")
	case err != nil:
		s.printf("Login failed: %v\n", err)
	default:
		*sess = newSession(a)
		s.printf("Login successful! Welcome, %s (%s)\n", a.Username, a.Role)
	}
}

// ---- input helpers ----

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func (s *Shell) readLine(prompt string) string {
	fmt.Fprint(s.Out, prompt)
	if !s.In.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.In.Text())
}

// readInt returns -1 when the input is not a number.
func (s *Shell) readInt(prompt string) int {
	n, err := strconv.Atoi(s.readLine(prompt))
	if err != nil {
		return -1
	}
	return n
}

func (s *Shell) readInt64(prompt string) (int64, bool) {
	n, err := strconv.ParseInt(s.readLine(prompt), 10, 64)
	if err != nil {
		if !s.eof {
			s.printf("Please enter a number.\n")
		}
		return 0, false
	}
	return n, true
}

func (s *Shell) readFloat(prompt string) (float64, bool) {
	f, err := strconv.ParseFloat(s.readLine(prompt), 64)
	if err != nil {
		if !s.eof {
			s.printf("Please enter a number.\n")
		}
		return 0, false
	}
	return f, true
}
