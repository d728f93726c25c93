package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"kakeibo/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "kakeibo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Users()

	profile := core.NewUserProfile("user123")
	name := "Alice"
	profile.DisplayName = &name
	if err := repo.Save(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := repo.FindByID(ctx, "user123")
	if err != nil || stored == nil {
		t.Fatalf("find: %v %v", stored, err)
	}
	if stored.DisplayName == nil || *stored.DisplayName != "Alice" || stored.Currency != "JPY" {
		t.Fatalf("profile mismatch: %+v", stored)
	}
	if !stored.CreatedAt.Equal(profile.CreatedAt) {
		t.Fatalf("created_at drifted: %v != %v", stored.CreatedAt, profile.CreatedAt)
	}

	if err := repo.Delete(ctx, "user123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.FindByID(ctx, "user123")
	if err != nil || gone != nil {
		t.Fatalf("expected absence as (nil, nil), got %v %v", gone, err)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Transactions()

	tx := core.NewTransaction("user123", core.Real, core.JPY(1200), "lunch", core.Food)
	tx.AddTag("weekday")
	tx.Settlement = core.NewSettlementInfo("user123", "friend456")
	if err := repo.Save(ctx, tx); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := repo.FindByID(ctx, tx.TransactionID)
	if err != nil || stored == nil {
		t.Fatalf("find: %v %v", stored, err)
	}
	if stored.Amount.Value != 1200 || stored.Amount.Currency != "JPY" {
		t.Fatalf("amount mismatch: %+v", stored.Amount)
	}
	if !stored.HasTag("weekday") {
		t.Fatalf("tags lost: %v", stored.Tags)
	}
	if stored.Settlement == nil || stored.Settlement.Status != core.SettlementPending {
		t.Fatalf("settlement lost: %+v", stored.Settlement)
	}

	stored.Settlement.Status = core.SettlementCompleted
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := repo.FindByID(ctx, tx.TransactionID)
	if err != nil || again == nil || again.Settlement.Status != core.SettlementCompleted {
		t.Fatalf("settlement update lost: %+v %v", again, err)
	}

	list, err := repo.FindByUserID(ctx, "user123")
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %v", list, err)
	}
}

func TestBudgetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Budgets()

	budget := core.NewBudget("user123", core.Food, core.JPY(50000), core.Monthly, 0.8)
	if err := repo.Save(ctx, budget); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err := repo.FindByID(ctx, budget.BudgetID)
	if err != nil || stored == nil {
		t.Fatalf("find: %v %v", stored, err)
	}
	if stored.Amount.Value != 50000 || stored.Period != core.Monthly || stored.AlertThreshold != 0.8 {
		t.Fatalf("budget mismatch: %+v", stored)
	}
}

func TestGroupMembershipFilter(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Groups()

	household := core.NewGroup("Household", "shared costs", "owner123")
	household.AddMember("member456")
	trip := core.NewGroup("Trip", "", "other789")
	for _, g := range []*core.Group{household, trip} {
		if err := repo.Save(ctx, g); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	groups, err := repo.FindByUserID(ctx, "member456")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(groups) != 1 || groups[0].GroupID != household.GroupID {
		t.Fatalf("membership filter wrong: %+v", groups)
	}
}

func TestAlertDedup(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Alerts()

	budget := core.NewBudget("user123", core.Food, core.JPY(10000), core.Monthly, 0.8)
	ref := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	first := core.NewBudgetAlert(budget, core.JPY(9000), 0.9, ref)
	second := core.NewBudgetAlert(budget, core.JPY(9500), 0.95, ref)

	if err := repo.Record(ctx, first); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Record(ctx, second); err != nil {
		t.Fatalf("duplicate record must be silent: %v", err)
	}

	alerts, err := repo.FindByUserID(ctx, "user123")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 || alerts[0].AlertID != first.AlertID {
		t.Fatalf("expected one alert per budget and period, got %+v", alerts)
	}
}
