package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/ariefcatur/go-retail-console.git/internal/cart"
	"github.com/ariefcatur/go-retail-console.git/internal/catalog"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
)

func (s *Shell) renderProducts(items []catalog.InventoryItem) {
	if len(items) == 0 {
		s.printf("No products found.\n")
		return
	}
	w := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tPRICE\tSTOCK")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t$%.2f\t%d\n", it.ID, it.Name, it.Description, it.Price, it.Stock)
	}
	_ = w.Flush()
}

func (s *Shell) renderOrders(list []orders.Transaction) {
	if len(list) == 0 {
		s.printf("No orders found.\n")
		return
	}
	w := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACCOUNT\tSTATUS\tTOTAL\tDATE")
	for _, t := range list {
		fmt.Fprintf(w, "%d\t%d\t%s\t$%.2f\t%s\n",
			t.ID, t.AccountID, t.Status, t.Total, t.CreatedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func (s *Shell) renderOrderDetails(t orders.Transaction, lines []orders.LineItem, pay orders.PaymentRecord) {
	s.printf("Order #%d  %s  $%.2f  %s\n", t.ID, t.Status, t.Total, t.CreatedAt.Format("2006-01-02 15:04"))
	w := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tQTY\tPRICE")
	for _, li := range lines {
		fmt.Fprintf(w, "%d\t%d\t$%.2f\n", li.InventoryItemID, li.Quantity, li.PriceAtPurchase)
	}
	_ = w.Flush()
	s.printf("Payment: %s %s $%.2f\n", pay.Method, pay.Status, pay.Amount)
}

func (s *Shell) renderCart(c *cart.Cart) {
	w := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, e := range c.Entries() {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\t$%.2f\n",
			e.Item.ID, e.Item.Name, e.Item.Price, e.Quantity, e.Subtotal())
	}
	_ = w.Flush()
	s.printf("Total: $%.2f\n", c.Total())
}
