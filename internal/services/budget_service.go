package services

import (
	"context"
	"fmt"
	"time"

	"kakeibo/internal/core"
)

// BudgetService exposes budget CRUD plus the current-period status used by
// the boundary layer.
type BudgetService struct {
	repo BudgetRepository
	txs  TransactionRepository
}

func NewBudgetService(repo BudgetRepository, txs TransactionRepository) *BudgetService {
	return &BudgetService{repo: repo, txs: txs}
}

// GetBudget returns the budget, or nil when unknown.
func (s *BudgetService) GetBudget(ctx context.Context, budgetID string) (*core.Budget, error) {
	return s.repo.FindByID(ctx, budgetID)
}

// GetBudgets lists all budgets of a user.
func (s *BudgetService) GetBudgets(ctx context.Context, userID core.UserID) ([]*core.Budget, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *BudgetService) CreateBudget(ctx context.Context, budget *core.Budget) error {
	if err := s.repo.Save(ctx, budget); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	return nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, budget *core.Budget) error {
	if err := s.repo.Update(ctx, budget); err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if err := s.repo.Delete(ctx, budgetID); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// BudgetStatus is the usage of a budget in the period containing Ref.
type BudgetStatus struct {
	Budget     *core.Budget `json:"budget"`
	Spent      core.Amount  `json:"spent"`
	UsageRatio float64      `json:"usage_ratio"`
	Alert      bool         `json:"alert"`
}

// GetBudgetStatus sums the user's budget-relevant spending for the budget's
// current period and answers usage and alert state.
func (s *BudgetService) GetBudgetStatus(ctx context.Context, budgetID string, now time.Time) (*BudgetStatus, error) {
	budget, err := s.repo.FindByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, nil
	}

	txs, err := s.txs.FindByUserID(ctx, budget.UserID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	spent := core.SpentInPeriod(txs, budget.Category, budget.Period, now, budget.Amount.Currency)
	ratio, err := budget.UsageRatio(spent)
	if err != nil {
		return nil, err
	}
	alert, err := budget.ShouldAlert(spent)
	if err != nil {
		return nil, err
	}

	return &BudgetStatus{Budget: budget, Spent: spent, UsageRatio: ratio, Alert: alert}, nil
}
