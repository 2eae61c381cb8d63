package orders

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// MockStore implements Store for testing
type MockStore struct {
	CreatedAccountID int64
	CreatedTotal     float64
	CreatedLines     []LineInput
	CreatedMethod    PaymentMethod
	CreateID         int64
	CreateErr        error

	ApproveErr error
	DeclineErr error
	DeliverErr error

	Transaction Transaction
	GetErr      error
	List        []Transaction
	Lines       []LineItem
	Pay         PaymentRecord
}

func (m *MockStore) CreateOrderTx(_ context.Context, accountID int64, total float64, lines []LineInput, method PaymentMethod) (int64, error) {
	m.CreatedAccountID = accountID
	m.CreatedTotal = total
	m.CreatedLines = lines
	m.CreatedMethod = method
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	return m.CreateID, nil
}

func (m *MockStore) ApproveTx(context.Context, int64) error { return m.ApproveErr }
func (m *MockStore) DeclineTx(context.Context, int64) error { return m.DeclineErr }
func (m *MockStore) DeliverTx(context.Context, int64) error { return m.DeliverErr }

func (m *MockStore) GetByID(context.Context, int64) (Transaction, error) {
	return m.Transaction, m.GetErr
}

func (m *MockStore) ListAll(context.Context) ([]Transaction, error) { return m.List, nil }

func (m *MockStore) ListByAccount(context.Context, int64) ([]Transaction, error) {
	return m.List, nil
}

func (m *MockStore) LineItems(context.Context, int64) ([]LineItem, error) { return m.Lines, nil }

func (m *MockStore) PaymentByOrder(context.Context, int64) (PaymentRecord, error) {
	return m.Pay, nil
}

// MockPublisher captures published messages
type MockPublisher struct {
	Keys    [][]byte
	Values  [][]byte
	Headers [][]kafkago.Header
}

func (p *MockPublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	p.Keys = append(p.Keys, key)
	p.Values = append(p.Values, value)
	p.Headers = append(p.Headers, headers)
}
