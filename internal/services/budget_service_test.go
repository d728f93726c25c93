package services

import (
	"context"
	"testing"
	"time"

	"kakeibo/internal/core"
	"kakeibo/internal/memory"
)

func TestBudgetServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewBudgetService(memory.NewBudgetRepo(), memory.NewTransactionRepo())

	budget := core.NewBudget("user123", core.Food, core.JPY(10000), core.Monthly, 0.8)
	if err := svc.CreateBudget(ctx, budget); err != nil {
		t.Fatalf("create: %v", err)
	}

	budgets, err := svc.GetBudgets(ctx, "user123")
	if err != nil || len(budgets) != 1 {
		t.Fatalf("list: %v %v", budgets, err)
	}

	budget.AlertThreshold = 0.9
	if err := svc.UpdateBudget(ctx, budget); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, err := svc.GetBudget(ctx, budget.BudgetID)
	if err != nil || stored == nil || stored.AlertThreshold != 0.9 {
		t.Fatalf("update not persisted: %+v %v", stored, err)
	}

	if err := svc.DeleteBudget(ctx, budget.BudgetID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	stored, err = svc.GetBudget(ctx, budget.BudgetID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if stored != nil {
		t.Fatal("budget should be gone")
	}
}

func TestBudgetServiceStatus(t *testing.T) {
	ctx := context.Background()
	txRepo := memory.NewTransactionRepo()
	svc := NewBudgetService(memory.NewBudgetRepo(), txRepo)

	budget := core.NewBudget("user123", core.Food, core.JPY(10000), core.Monthly, 0.8)
	if err := svc.CreateBudget(ctx, budget); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	spent := core.NewTransaction("user123", core.Real, core.JPY(8000), "feast", core.Food)
	passThrough := core.NewTransaction("user123", core.Flow, core.JPY(5000), "friend's share", core.Food)
	for _, tx := range []*core.Transaction{spent, passThrough} {
		if err := txRepo.Save(ctx, tx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	status, err := svc.GetBudgetStatus(ctx, budget.BudgetID, now)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Spent.Value != 8000 {
		t.Fatalf("spent = %d, flow transactions must not count", status.Spent.Value)
	}
	if status.UsageRatio != 0.8 || !status.Alert {
		t.Fatalf("status = %+v, want 0.8 usage with alert", status)
	}
}

func TestBudgetServiceStatusUnknown(t *testing.T) {
	ctx := context.Background()
	svc := NewBudgetService(memory.NewBudgetRepo(), memory.NewTransactionRepo())

	status, err := svc.GetBudgetStatus(ctx, "missing", time.Now())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != nil {
		t.Fatal("unknown budget should yield nil status")
	}
}
