package catalog

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inventory item not found")

// InventoryItem is a catalog product. Price and stock are stored as-is:
// the catalog does not reject negative values, callers validate where the
// original flow did (the console pre-checks stock before adding to a cart).
type InventoryItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
