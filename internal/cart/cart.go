package cart

import "github.com/ariefcatur/go-retail-console.git/internal/catalog"

// Entry pairs an item snapshot with a requested quantity. Quantities are
// not validated here; the caller pre-checks stock before Add.
type Entry struct {
	Item     catalog.InventoryItem
	Quantity int
}

func (e Entry) Subtotal() float64 {
	return e.Item.Price * float64(e.Quantity)
}

// Cart holds a single session's intended purchases. It is owned by the
// active session, never persisted and never shared.
type Cart struct {
	entries []Entry
}

func New() *Cart { return &Cart{} }

// Add merges the quantity into an existing entry for the same item id,
// otherwise appends a new entry.
func (c *Cart) Add(item catalog.InventoryItem, qty int) {
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity += qty
			return
		}
	}
	c.entries = append(c.entries, Entry{Item: item, Quantity: qty})
}

// Remove drops the entry for the item id entirely, regardless of quantity.
func (c *Cart) Remove(itemID int64) {
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

func (c *Cart) Entries() []Entry { return c.entries }

func (c *Cart) Len() int { return len(c.entries) }

func (c *Cart) Total() float64 {
	var total float64
	for _, e := range c.entries {
		total += e.Subtotal()
	}
	return total
}

func (c *Cart) Clear() { c.entries = nil }
