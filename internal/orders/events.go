package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated   = "OrderCreated"
	EventOrderAccepted  = "OrderAccepted"
	EventOrderRejected  = "OrderRejected"
	EventOrderDelivered = "OrderDelivered"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "shop-console"
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`                  // payload spesifik
}

// ---- Payload tipe per event ----

type ItemPrice struct {
	ProductID int64   `json:"product_id"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type OrderCreatedPayload struct {
	OrderID   int64       `json:"order_id"`
	AccountID int64       `json:"account_id"`
	Items     []ItemPrice `json:"items"`
	Total     float64     `json:"total"`
}

type OrderAcceptedPayload struct {
	OrderID int64 `json:"order_id"`
}

type OrderRejectedPayload struct {
	OrderID       int64         `json:"order_id"`
	PaymentStatus PaymentStatus `json:"payment_status"` // REFUNDED
}

type OrderDeliveredPayload struct {
	OrderID int64 `json:"order_id"`
}
