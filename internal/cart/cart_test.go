package cart

import (
	"testing"

	"github.com/ariefcatur/go-retail-console.git/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func item(id int64, price float64) catalog.InventoryItem {
	return catalog.InventoryItem{ID: id, Name: "item", Price: price, Stock: 100}
}

func TestAddMergesQuantitiesForSameItem(t *testing.T) {
	c := New()
	c.Add(item(1, 10), 2)
	c.Add(item(1, 10), 3)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Entries()[0].Quantity)
}

func TestAddAppendsNewItems(t *testing.T) {
	c := New()
	c.Add(item(1, 10), 2)
	c.Add(item(2, 20), 1)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), c.Entries()[0].Item.ID)
	assert.Equal(t, int64(2), c.Entries()[1].Item.ID)
}

func TestRemoveDropsEntryEntirely(t *testing.T) {
	c := New()
	c.Add(item(1, 10), 5)
	c.Add(item(2, 20), 1)

	c.Remove(1)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(2), c.Entries()[0].Item.ID)

	// removing an absent id is a no-op
	c.Remove(99)
	assert.Equal(t, 1, c.Len())
}

func TestTotalSumsSubtotals(t *testing.T) {
	c := New()
	c.Add(item(1, 10.00), 2)
	c.Add(item(2, 20.00), 3)

	assert.InDelta(t, 20.00, c.Entries()[0].Subtotal(), 1e-9)
	assert.InDelta(t, 80.00, c.Total(), 1e-9)
}

func TestNegativeAndZeroQuantitiesComputeAsIs(t *testing.T) {
	// the cart is deliberately permissive; callers validate
	c := New()
	c.Add(item(1, 10.00), -2)
	c.Add(item(2, 5.00), 0)

	assert.InDelta(t, -20.00, c.Entries()[0].Subtotal(), 1e-9)
	assert.InDelta(t, 0.0, c.Entries()[1].Subtotal(), 1e-9)
	assert.InDelta(t, -20.00, c.Total(), 1e-9)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(item(1, 10), 1)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.InDelta(t, 0.0, c.Total(), 1e-9)
}
