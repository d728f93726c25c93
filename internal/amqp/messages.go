package amqp

import (
	"encoding/json"
	"time"

	"kakeibo/internal/core"
)

// Event kinds carried on the transaction queue.
const (
	EventTransactionCreated = "created"
	EventTransactionUpdated = "updated"
	EventTransactionDeleted = "deleted"
)

// TransactionEvent is a lightweight notification that a transaction changed.
// It carries only what the alert worker needs to re-evaluate budgets; the
// worker fetches the full transaction from storage when it still exists.
type TransactionEvent struct {
	Event         string             `json:"event"`
	TransactionID core.TransactionID `json:"transaction_id"`
	UserID        core.UserID        `json:"user_id"`
	Category      core.Category      `json:"category"`
	Timestamp     time.Time          `json:"timestamp"`
}

// NewTransactionEvent creates an event for the given transaction.
func NewTransactionEvent(event string, tx *core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Event:         event,
		TransactionID: tx.TransactionID,
		UserID:        tx.UserID,
		Category:      tx.Category,
		Timestamp:     time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON creates an event from JSON bytes.
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var event TransactionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
