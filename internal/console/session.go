package console

import (
	"github.com/ariefcatur/go-retail-console.git/internal/accounts"
	"github.com/ariefcatur/go-retail-console.git/internal/cart"
)

// Session is the state of one logged-in user: the account and its cart.
// It is owned by the shell loop and passed around explicitly; there is no
// ambient global state.
type Session struct {
	Account accounts.Account
	Cart    *cart.Cart
}

func newSession(a accounts.Account) *Session {
	return &Session{Account: a, Cart: cart.New()}
}
