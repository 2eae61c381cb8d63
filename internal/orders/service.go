package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ariefcatur/go-retail-console.git/internal/cart"
	kafkax "github.com/ariefcatur/go-retail-console.git/internal/kafka"
	"github.com/ariefcatur/go-retail-console.git/internal/redisx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Store is the persistence gateway the lifecycle engine drives. *Repo
// implements it; tests substitute a mock.
type Store interface {
	CreateOrderTx(ctx context.Context, accountID int64, total float64, lines []LineInput, method PaymentMethod) (int64, error)
	ApproveTx(ctx context.Context, orderID int64) error
	DeclineTx(ctx context.Context, orderID int64) error
	DeliverTx(ctx context.Context, orderID int64) error
	GetByID(ctx context.Context, orderID int64) (Transaction, error)
	ListAll(ctx context.Context) ([]Transaction, error)
	ListByAccount(ctx context.Context, accountID int64) ([]Transaction, error)
	LineItems(ctx context.Context, orderID int64) ([]LineItem, error)
	PaymentByOrder(ctx context.Context, orderID int64) (PaymentRecord, error)
}

type EventPublisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service drives the order lifecycle: CREATED -> ACCEPTED/REJECTED ->
// DELIVERED, with stock deduction on approval and the simulated refund on
// decline. Redis and Events are optional side channels; nil skips them.
type Service struct {
	Store  Store
	Redis  *redis.Client
	Events EventPublisher
	Name   string
}

// Create snapshots the cart: total = sum of subtotals, each line keeps the
// price the customer saw. Nothing is re-read from the catalog afterwards.
func (s *Service) Create(ctx context.Context, accountID int64, entries []cart.Entry, method PaymentMethod) (int64, error) {
	var total float64
	lines := make([]LineInput, 0, len(entries))
	for _, e := range entries {
		total += e.Subtotal()
		lines = append(lines, LineInput{
			InventoryItemID: e.Item.ID,
			Quantity:        e.Quantity,
			Price:           e.Item.Price,
		})
	}

	orderID, err := s.Store.CreateOrderTx(ctx, accountID, total, lines, method)
	if err != nil {
		return 0, err
	}

	s.cacheStatus(ctx, orderID, StatusCreated)
	s.publish(orderID, EventOrderCreated, OrderCreatedPayload{
		OrderID:   orderID,
		AccountID: accountID,
		Items:     toItemPrices(lines),
		Total:     total,
	})
	return orderID, nil
}

func (s *Service) Approve(ctx context.Context, orderID int64) error {
	if err := s.Store.ApproveTx(ctx, orderID); err != nil {
		return err
	}
	s.cacheStatus(ctx, orderID, StatusAccepted)
	s.publish(orderID, EventOrderAccepted, OrderAcceptedPayload{OrderID: orderID})
	return nil
}

func (s *Service) Decline(ctx context.Context, orderID int64) error {
	if err := s.Store.DeclineTx(ctx, orderID); err != nil {
		return err
	}
	s.cacheStatus(ctx, orderID, StatusRejected)
	s.publish(orderID, EventOrderRejected, OrderRejectedPayload{OrderID: orderID, PaymentStatus: PaymentRefunded})
	return nil
}

func (s *Service) MarkDelivered(ctx context.Context, orderID int64) error {
	if err := s.Store.DeliverTx(ctx, orderID); err != nil {
		return err
	}
	s.cacheStatus(ctx, orderID, StatusDelivered)
	s.publish(orderID, EventOrderDelivered, OrderDeliveredPayload{OrderID: orderID})
	return nil
}

func (s *Service) GetByID(ctx context.Context, orderID int64) (Transaction, error) {
	return s.Store.GetByID(ctx, orderID)
}

func (s *Service) ListAll(ctx context.Context) ([]Transaction, error) {
	return s.Store.ListAll(ctx)
}

func (s *Service) ListForAccount(ctx context.Context, accountID int64) ([]Transaction, error) {
	return s.Store.ListByAccount(ctx, accountID)
}

func (s *Service) LineItems(ctx context.Context, orderID int64) ([]LineItem, error) {
	return s.Store.LineItems(ctx, orderID)
}

func (s *Service) Payment(ctx context.Context, orderID int64) (PaymentRecord, error) {
	return s.Store.PaymentByOrder(ctx, orderID)
}

// cacheStatus keeps the storefront GET path fast; loss of the cache write
// is harmless, the DB stays the source of truth.
func (s *Service) cacheStatus(ctx context.Context, orderID int64, st Status) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	body, _ := json.Marshal(map[string]any{"status": st})
	if err := s.Redis.Set(ctx, key, body, redisx.TTLStatusCache).Err(); err != nil {
		log.Printf("status cache: %v", err)
	}
}

func (s *Service) publish(orderID int64, eventType string, payload any) {
	if s.Events == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Name,
		CorrelationID: strconv.FormatInt(orderID, 10),
		Payload:       kafkax.MustMarshal(payload),
	}
	s.Events.Publish(PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func toItemPrices(lines []LineInput) []ItemPrice {
	out := make([]ItemPrice, 0, len(lines))
	for _, ln := range lines {
		out = append(out, ItemPrice{ProductID: ln.InventoryItemID, Qty: ln.Quantity, Price: ln.Price})
	}
	return out
}
