package console

import (
	"context"
	"errors"

	"github.com/ariefcatur/go-retail-console.git/internal/accounts"
	"github.com/ariefcatur/go-retail-console.git/internal/catalog"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
)

func (s *Shell) adminMenu(ctx context.Context, sess **Session) {
	s.printf("\n===== ADMIN MENU (%s) =====\n", (*sess).Account.Username)
	s.printf("1. Add Product\n2. Update Product\n3. Delete Product\n4. Adjust Stock\n")
	s.printf("5. View All Products\n6. View All Orders\n7. Accept Order\n8. Reject Order\n")
	s.printf("9. Mark Order Delivered\n10. Register Admin\n11. Logout\n")
	switch s.readInt("Choose an option: ") {
	case 1:
		s.addProduct(ctx)
	case 2:
		s.updateProduct(ctx)
	case 3:
		s.deleteProduct(ctx)
	case 4:
		s.adjustStock(ctx)
	case 5:
		s.viewAllProducts(ctx)
	case 6:
		s.viewAllOrders(ctx)
	case 7:
		s.acceptOrder(ctx)
	case 8:
		s.rejectOrder(ctx)
	case 9:
		s.markOrderDelivered(ctx)
	case 10:
		s.registerAdmin(ctx)
	case 11:
		*sess = nil
		s.printf("Logged out.\n")
	default:
		s.printf("Invalid option!\n")
	}
}

func (s *Shell) addProduct(ctx context.Context) {
	name := s.readLine("Product name: ")
	desc := s.readLine("Description: ")
	price, ok := s.readFloat("Price: ")
	if !ok {
		return
	}
	stock := s.readInt("Stock: ")
	id, err := s.Catalog.Create(ctx, catalog.InventoryItem{Name: name, Description: desc, Price: price, Stock: stock})
	if err != nil {
		s.printf("Failed to add product: %v\n", err)
		return
	}
	s.printf("Product added successfully with ID: %d\n", id)
}

func (s *Shell) updateProduct(ctx context.Context) {
	id, ok := s.readInt64("Product ID: ")
	if !ok {
		return
	}
	name := s.readLine("New name: ")
	desc := s.readLine("New description: ")
	price, ok := s.readFloat("New price: ")
	if !ok {
		return
	}
	stock := s.readInt("New stock: ")
	err := s.Catalog.Update(ctx, catalog.InventoryItem{ID: id, Name: name, Description: desc, Price: price, Stock: stock})
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		s.printf("Product not found!\n")
	case err != nil:
		s.printf("Failed to update product: %v\n", err)
	default:
		s.printf("Product updated successfully!\n")
	}
}

func (s *Shell) deleteProduct(ctx context.Context) {
	id, ok := s.readInt64("Product ID: ")
	if !ok {
		return
	}
	err := s.Catalog.Delete(ctx, id)
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		s.printf("Product not found!\n")
	case err != nil:
		s.printf("Failed to delete product: %v\n", err)
	default:
		s.printf("Product deleted successfully!\n")
	}
}

// adjustStock takes away damaged or miscounted units; negative input adds
// stock back.
func (s *Shell) adjustStock(ctx context.Context) {
	id, ok := s.readInt64("Product ID: ")
	if !ok {
		return
	}
	qty := s.readInt("Quantity to deduct (negative adds): ")
	err := s.Catalog.AdjustStock(ctx, id, qty)
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		s.printf("Product not found!\n")
	case err != nil:
		s.printf("Failed to adjust stock: %v\n", err)
	default:
		s.printf("Stock adjusted.\n")
	}
}

func (s *Shell) viewAllProducts(ctx context.Context) {
	items, err := s.Catalog.ListAll(ctx)
	if err != nil {
		s.printf("Failed to list products: %v\n", err)
		return
	}
	s.renderProducts(items)
}

func (s *Shell) viewAllOrders(ctx context.Context) {
	list, err := s.Orders.ListAll(ctx)
	if err != nil {
		s.printf("Failed to list orders: %v\n", err)
		return
	}
	s.renderOrders(list)
}

func (s *Shell) acceptOrder(ctx context.Context) {
	id, ok := s.readInt64("Order ID to accept: ")
	if !ok {
		return
	}
	err := s.Orders.Approve(ctx, id)
	var short *orders.InsufficientStockError
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		s.printf("Order not found!\n")
	case errors.Is(err, orders.ErrInvalidTransition):
		s.printf("Order cannot be accepted: %v\n", err)
	case errors.As(err, &short):
		s.printf("Insufficient stock, order left as CREATED:\n")
		for _, d := range short.Details {
			s.printf("  product %d: requested %d, available %d\n", d.InventoryItemID, d.Required, d.Available)
		}
	case err != nil:
		s.printf("Failed to accept order: %v\n", err)
	default:
		s.printf("Order #%d has been ACCEPTED! Inventory deducted.\n", id)
	}
}

func (s *Shell) rejectOrder(ctx context.Context) {
	id, ok := s.readInt64("Order ID to reject: ")
	if !ok {
		return
	}
	err := s.Orders.Decline(ctx, id)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		s.printf("Order not found!\n")
	case errors.Is(err, orders.ErrInvalidTransition):
		s.printf("Order cannot be rejected: %v\n", err)
	case err != nil:
		s.printf("Failed to reject order: %v\n", err)
	default:
		s.printf("Order #%d has been REJECTED! Payment refunded (simulated).\n", id)
	}
}

func (s *Shell) markOrderDelivered(ctx context.Context) {
	id, ok := s.readInt64("Order ID to mark delivered: ")
	if !ok {
		return
	}
	err := s.Orders.MarkDelivered(ctx, id)
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		s.printf("Order not found!\n")
	case errors.Is(err, orders.ErrInvalidTransition):
		s.printf("Only ACCEPTED orders can be marked as DELIVERED: %v\n", err)
	case err != nil:
		s.printf("Failed to mark order delivered: %v\n", err)
	default:
		s.printf("Order #%d has been marked as DELIVERED!\n", id)
	}
}

func (s *Shell) registerAdmin(ctx context.Context) {
	username := s.readLine("Admin username: ")
	password := s.readLine("Admin password: ")
	_, err := s.Accounts.Register(ctx, username, password, accounts.RoleAdmin)
	switch {
	case errors.Is(err, accounts.ErrDuplicateUsername):
		s.printf("Username already exists!\n")
	case err != nil:
		s.printf("Registration failed: %v\n", err)
	default:
		s.printf("Admin registered successfully!\n")
	}
}
