package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	kafkax "github.com/ariefcatur/go-retail-console.git/internal/kafka"
	"github.com/ariefcatur/go-retail-console.git/internal/orders"
	"github.com/ariefcatur/go-retail-console.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Service turns order lifecycle events into (simulated) customer
// notifications. Redis dedup is optional; Notify defaults to log output.
type Service struct {
	Redis  *redis.Client
	Name   string
	Notify func(msg string)
}

// HandleOrderEvent: dipasang sebagai handler consumer.
func (s *Service) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	msg, ok, err := render(env)
	if err != nil {
		return err
	}
	if !ok {
		return nil // bukan event lifecycle, ignore
	}

	// dedup via Redis (pakai event_id)
	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, s.Name, env.EventID)
		exists, _ := redisx.Exists(ctx, s.Redis, dkey)
		if exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	s.emit(msg)
	return nil
}

func render(env orders.Envelope) (string, bool, error) {
	switch env.EventType {
	case orders.EventOrderCreated:
		p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("order #%d received, total $%.2f, awaiting approval", p.OrderID, p.Total), true, nil
	case orders.EventOrderAccepted:
		p, err := kafkax.UnwrapPayload[orders.OrderAcceptedPayload](env.Payload)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("order #%d has been accepted, inventory allocated", p.OrderID), true, nil
	case orders.EventOrderRejected:
		p, err := kafkax.UnwrapPayload[orders.OrderRejectedPayload](env.Payload)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("order #%d was rejected, payment %s", p.OrderID, p.PaymentStatus), true, nil
	case orders.EventOrderDelivered:
		p, err := kafkax.UnwrapPayload[orders.OrderDeliveredPayload](env.Payload)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("order #%d has been delivered", p.OrderID), true, nil
	default:
		return "", false, nil
	}
}

func (s *Service) emit(msg string) {
	if s.Notify != nil {
		s.Notify(msg)
		return
	}
	log.Printf("notify customer: %s", msg)
}
