package core

import (
	"testing"
	"time"
)

func txAt(userID UserID, typ TransactionType, amount Amount, cat Category, date time.Time) *Transaction {
	tx := NewTransaction(userID, typ, amount, "test", cat)
	tx.Date = date
	return tx
}

func TestSummarize(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	txs := []*Transaction{
		txAt("u1", Real, JPY(1000), Food, jan),
		txAt("u1", Real, JPY(500), Food, jan),
		txAt("u1", Real, JPY(300), Transportation, jan),
		txAt("u1", Flow, JPY(9999), Food, jan),           // pass-through, excluded
		txAt("u1", Real, NewAmount(100, "USD"), Food, jan), // other currency, skipped
		txAt("u1", Real, JPY(700), Food, feb),            // other month
	}

	summary := Summarize(txs, 2025, 1, "JPY")
	if summary.Total.Value != 1800 {
		t.Fatalf("total = %d, want 1800", summary.Total.Value)
	}
	if len(summary.ByCategory) != 2 {
		t.Fatalf("unexpected category rows: %+v", summary.ByCategory)
	}
	if summary.ByCategory[0].Category != Food || summary.ByCategory[0].Total.Value != 1500 {
		t.Fatalf("food row wrong: %+v", summary.ByCategory[0])
	}
	if summary.ByCategory[1].Category != Transportation || summary.ByCategory[1].Total.Value != 300 {
		t.Fatalf("transportation row wrong: %+v", summary.ByCategory[1])
	}
}

func TestSpentInPeriod(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	txs := []*Transaction{
		txAt("u1", Real, JPY(1000), Food, jan),
		txAt("u1", Real, JPY(2000), Food, mar),
		txAt("u1", Real, JPY(4000), Food, lastYear),
		txAt("u1", Flow, JPY(800), Food, jan),
		txAt("u1", Real, JPY(600), Shopping, jan),
	}

	monthly := SpentInPeriod(txs, Food, Monthly, jan, "JPY")
	if monthly.Value != 1000 {
		t.Fatalf("monthly spent = %d, want 1000", monthly.Value)
	}

	yearly := SpentInPeriod(txs, Food, Yearly, jan, "JPY")
	if yearly.Value != 3000 {
		t.Fatalf("yearly spent = %d, want 3000", yearly.Value)
	}
}
