package console

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-retail-console.git/internal/catalog"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
)

func (s *Shell) customerMenu(ctx context.Context, sess **Session) {
	s.printf("\n===== CUSTOMER MENU (%s) =====\n", (*sess).Account.Username)
	s.printf("1. Browse Products\n2. Add to Cart\n3. View Cart\n4. Remove from Cart\n")
	s.printf("5. Checkout\n6. My Orders\n7. Order Details\n8. Logout\n")
	switch s.readInt("Choose an option: ") {
	case 1:
		s.viewAllProducts(ctx)
	case 2:
		s.addToCart(ctx, *sess)
	case 3:
		s.viewCart(*sess)
	case 4:
		s.removeFromCart(*sess)
	case 5:
		s.checkout(ctx, *sess)
	case 6:
		s.viewMyOrders(ctx, *sess)
	case 7:
		s.viewOrderDetails(ctx, *sess)
	case 8:
		(*sess).Cart.Clear()
		*sess = nil
		s.printf("Logged out.\n")
	default:
		s.printf("Invalid option!\n")
	}
}

// addToCart pre-validates quantity against current stock; the cart itself
// does no checking.
func (s *Shell) addToCart(ctx context.Context, sess *Session) {
	id, ok := s.readInt64("Product ID: ")
	if !ok {
		return
	}
	item, err := s.Catalog.GetByID(ctx, id)
	if errors.Is(err, catalog.ErrItemNotFound) {
		s.printf("Product not found!\n")
		return
	}
	if err != nil {
		s.printf("Failed to load product: %v\n", err)
		return
	}
	qty := s.readInt("Quantity: ")
	if qty <= 0 {
		s.printf("Quantity must be positive!\n")
		return
	}
	if qty > item.Stock {
		s.printf("Only %d in stock!\n", item.Stock)
		return
	}
	sess.Cart.Add(item, qty)
	s.printf("Added %d x %s to cart.\n", qty, item.Name)
}

func (s *Shell) viewCart(sess *Session) {
	if sess.Cart.Len() == 0 {
		s.printf("Your cart is empty.\n")
		return
	}
	s.renderCart(sess.Cart)
}

func (s *Shell) removeFromCart(sess *Session) {
	id, ok := s.readInt64("Product ID to remove: ")
	if !ok {
		return
	}
	sess.Cart.Remove(id)
	s.printf("Removed from cart.\n")
}

func (s *Shell) checkout(ctx context.Context, sess *Session) {
	if sess.Cart.Len() == 0 {
		s.printf("Your cart is empty!\n")
		return
	}
	s.printf("Payment method:\n1. Online\n2. Card\n3. Cash on Delivery\n")
	var method orders.PaymentMethod
	switch s.readInt("Choose an option: ") {
	case 1:
		method = orders.PaymentOnline
	case 2:
		method = orders.PaymentCard
	case 3:
		method = orders.PaymentCOD
	default:
		s.printf("Invalid option!\n")
		return
	}

	orderID, err := s.Orders.Create(ctx, sess.Account.ID, sess.Cart.Entries(), method)
	if err != nil {
		s.printf("Checkout failed: %v\n", err)
		return
	}
	s.printf("Order placed successfully! Order ID: %d\n", orderID)
	s.printf("Payment method: %s\n", method)
	s.printf("Total amount: $%.2f\n", sess.Cart.Total())
	sess.Cart.Clear()
}

func (s *Shell) viewMyOrders(ctx context.Context, sess *Session) {
	list, err := s.Orders.ListForAccount(ctx, sess.Account.ID)
	if err != nil {
		s.printf("Failed to list orders: %v\n", err)
		return
	}
	s.renderOrders(list)
}

func (s *Shell) viewOrderDetails(ctx context.Context, sess *Session) {
	id, ok := s.readInt64("Order ID: ")
	if !ok {
		return
	}
	t, err := s.Orders.GetByID(ctx, id)
	if errors.Is(err, orders.ErrOrderNotFound) || (err == nil && t.AccountID != sess.Account.ID) {
		s.printf("Order not found!\n")
		return
	}
	if err != nil {
		s.printf("Failed to load order: %v\n", err)
		return
	}
	lines, err := s.Orders.LineItems(ctx, id)
	if err != nil {
		s.printf("Failed to load order items: %v\n", err)
		return
	}
	pay, err := s.Orders.Payment(ctx, id)
	if err != nil {
		s.printf("Failed to load payment: %v\n", err)
		return
	}
	s.renderOrderDetails(t, lines, pay)
}
