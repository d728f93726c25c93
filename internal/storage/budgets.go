package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kakeibo/internal/core"
)

type BudgetRepo struct {
	db *sql.DB
}

const budgetColumns = `budget_id, user_id, category, amount_minor, currency,
	period, alert_threshold, created_at, updated_at`

func (r *BudgetRepo) FindByID(ctx context.Context, budgetID string) (*core.Budget, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE budget_id = ?`, budgetID)

	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find budget %s: %w", budgetID, err)
	}
	return budget, nil
}

func (r *BudgetRepo) FindByUserID(ctx context.Context, userID core.UserID) ([]*core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = ? ORDER BY created_at`, string(userID))
	if err != nil {
		return nil, fmt.Errorf("list budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	var budgets []*core.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepo) Save(ctx context.Context, budget *core.Budget) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (`+budgetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		budget.BudgetID, string(budget.UserID), string(budget.Category),
		budget.Amount.Value, budget.Amount.Currency,
		string(budget.Period), budget.AlertThreshold,
		formatTime(budget.CreatedAt), formatTime(budget.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save budget %s: %w", budget.BudgetID, err)
	}
	return nil
}

func (r *BudgetRepo) Update(ctx context.Context, budget *core.Budget) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE budgets SET category = ?, amount_minor = ?, currency = ?, period = ?,
			alert_threshold = ?, updated_at = ?
		WHERE budget_id = ?`,
		string(budget.Category), budget.Amount.Value, budget.Amount.Currency,
		string(budget.Period), budget.AlertThreshold,
		formatTime(budget.UpdatedAt), budget.BudgetID)
	if err != nil {
		return fmt.Errorf("update budget %s: %w", budget.BudgetID, err)
	}
	return nil
}

func (r *BudgetRepo) Delete(ctx context.Context, budgetID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE budget_id = ?`, budgetID)
	if err != nil {
		return fmt.Errorf("delete budget %s: %w", budgetID, err)
	}
	return nil
}

func scanBudget(row rowScanner) (*core.Budget, error) {
	var (
		budget    core.Budget
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&budget.BudgetID, &budget.UserID, &budget.Category,
		&budget.Amount.Value, &budget.Amount.Currency,
		&budget.Period, &budget.AlertThreshold, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if budget.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if budget.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &budget, nil
}
