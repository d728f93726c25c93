package core

import (
	"testing"
	"time"
)

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction("user123", Real, JPY(1000), "groceries", Food)

	if tx.TransactionID == "" {
		t.Fatal("expected generated transaction id")
	}
	if tx.UserID != "user123" {
		t.Fatalf("unexpected user id %q", tx.UserID)
	}
	if !tx.AffectsBudget() {
		t.Fatal("real transaction should affect budget")
	}
	if tx.CreatedAt != tx.UpdatedAt {
		t.Fatal("timestamps should match at construction")
	}
	if tx.Settlement != nil {
		t.Fatal("new transaction should have no settlement")
	}
	if err := tx.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestFlowDoesNotAffectBudget(t *testing.T) {
	tx := NewTransaction("user123", Flow, JPY(1000), "paid for a friend", Other)
	if tx.AffectsBudget() {
		t.Fatal("flow transaction must not affect budget")
	}
}

func TestTransactionUpdate(t *testing.T) {
	tx := NewTransaction("user123", Real, JPY(1000), "old", Food)
	before := tx.UpdatedAt

	time.Sleep(time.Millisecond)
	desc := "new"
	tx.Update(&desc, nil)

	if tx.Description != "new" {
		t.Fatalf("description not updated: %q", tx.Description)
	}
	if tx.Category != Food {
		t.Fatalf("nil category must leave prior value, got %q", tx.Category)
	}
	if !tx.UpdatedAt.After(before) {
		t.Fatal("updated_at should move forward")
	}

	cat := Shopping
	tx.Update(nil, &cat)
	if tx.Category != Shopping || tx.Description != "new" {
		t.Fatalf("partial update broken: %+v", tx)
	}
}

func TestTransactionTags(t *testing.T) {
	tx := NewTransaction("user123", Real, JPY(1000), "groceries", Food)

	tx.AddTag("weekly")
	if !tx.HasTag("weekly") || len(tx.Tags) != 1 {
		t.Fatalf("unexpected tags %v", tx.Tags)
	}

	// Duplicate add is a complete no-op, timestamp included.
	stamp := tx.UpdatedAt
	time.Sleep(time.Millisecond)
	tx.AddTag("weekly")
	if len(tx.Tags) != 1 {
		t.Fatalf("duplicate tag added: %v", tx.Tags)
	}
	if !tx.UpdatedAt.Equal(stamp) {
		t.Fatal("duplicate add must not touch updated_at")
	}

	// Removal always bumps the timestamp, present or not.
	time.Sleep(time.Millisecond)
	tx.RemoveTag("missing")
	if !tx.UpdatedAt.After(stamp) {
		t.Fatal("remove should bump updated_at even for an absent tag")
	}

	tx.RemoveTag("weekly")
	if tx.HasTag("weekly") || len(tx.Tags) != 0 {
		t.Fatalf("tag not removed: %v", tx.Tags)
	}
}

func TestTransactionValidate(t *testing.T) {
	cases := []struct {
		name string
		tx   *Transaction
		ok   bool
	}{
		{"valid", NewTransaction("u1", Real, JPY(100), "ok", Food), true},
		{"empty user", NewTransaction("", Real, JPY(100), "ok", Food), false},
		{"bad type", &Transaction{UserID: "u1", Type: "bogus", Category: Food}, false},
		{"bad category", &Transaction{UserID: "u1", Type: Real, Category: "snacks"}, false},
	}
	for _, tc := range cases {
		err := tc.tx.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: expected ok, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestSettlementInfo(t *testing.T) {
	info := NewSettlementInfo("alice", "bob")
	if info.SettlementID == "" {
		t.Fatal("expected generated settlement id")
	}
	if info.Status != SettlementPending {
		t.Fatalf("new settlement should be pending, got %q", info.Status)
	}

	tx := NewTransaction("bob", Flow, JPY(2000), "dinner split", Food)
	tx.Settlement = info
	// Status transitions are an external concern: direct mutation.
	tx.Settlement.Status = SettlementCompleted
	if tx.Settlement.Status != SettlementCompleted {
		t.Fatal("status mutation should stick")
	}
	if !SettlementCompleted.IsValid() || SettlementStatus("done").IsValid() {
		t.Fatal("status validity check broken")
	}
}
