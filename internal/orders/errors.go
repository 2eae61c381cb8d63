package orders

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type StockShortage struct {
	InventoryItemID int64
	Required        int
	Available       int
}

// InsufficientStockError carries the per-item shortfall so callers can
// report which products blocked the approval. errors.Is matches it
// against ErrInsufficientStock.
type InsufficientStockError struct {
	Details []StockShortage
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Details))
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
