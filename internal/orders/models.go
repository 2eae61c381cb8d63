package orders

import "time"

type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "ONLINE"
	PaymentCard   PaymentMethod = "CARD"
	PaymentCOD    PaymentMethod = "COD"
)

type PaymentStatus string

const (
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Transaction struct {
	ID        int64
	AccountID int64
	Status    Status // lihat status.go
	Total     float64
	CreatedAt time.Time
}

// LineItem is an immutable snapshot taken at order creation: the price
// never follows later catalog edits.
type LineItem struct {
	ID              int64
	TransactionID   int64
	InventoryItemID int64
	Quantity        int
	PriceAtPurchase float64
}

type PaymentRecord struct {
	ID            int64
	TransactionID int64
	Method        PaymentMethod
	Status        PaymentStatus
	Amount        float64
	CreatedAt     time.Time
}
