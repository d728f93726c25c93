package amqp

import (
	"testing"

	"kakeibo/internal/core"
)

func TestTransactionEventRoundTrip(t *testing.T) {
	tx := core.NewTransaction("user123", core.Real, core.JPY(1200), "lunch", core.Food)
	event := NewTransactionEvent(EventTransactionCreated, tx)

	body, err := event.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := TransactionEventFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Event != EventTransactionCreated {
		t.Fatalf("event = %q", decoded.Event)
	}
	if decoded.TransactionID != tx.TransactionID || decoded.UserID != "user123" || decoded.Category != core.Food {
		t.Fatalf("decoded event lost fields: %+v", decoded)
	}
}

func TestTransactionEventFromJSONInvalid(t *testing.T) {
	if _, err := TransactionEventFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
