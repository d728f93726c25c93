package storage

import (
	"context"
	"database/sql"
	"fmt"

	"kakeibo/internal/core"
)

type AlertRepo struct {
	db *sql.DB
}

// Record inserts the alert unless one already exists for the same budget and
// period. The UNIQUE(budget_id, period_key) constraint does the dedup.
func (r *AlertRepo) Record(ctx context.Context, alert *core.BudgetAlert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budget_alerts (alert_id, budget_id, user_id, category, period_key,
			usage_ratio, threshold, spent_minor, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (budget_id, period_key) DO NOTHING`,
		alert.AlertID, alert.BudgetID, string(alert.UserID), string(alert.Category),
		alert.PeriodKey, alert.UsageRatio, alert.Threshold,
		alert.Spent.Value, alert.Spent.Currency, formatTime(alert.CreatedAt))
	if err != nil {
		return fmt.Errorf("record alert for budget %s: %w", alert.BudgetID, err)
	}
	return nil
}

func (r *AlertRepo) FindByUserID(ctx context.Context, userID core.UserID) ([]*core.BudgetAlert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT alert_id, budget_id, user_id, category, period_key,
			usage_ratio, threshold, spent_minor, currency, created_at
		FROM budget_alerts WHERE user_id = ? ORDER BY created_at DESC`, string(userID))
	if err != nil {
		return nil, fmt.Errorf("list alerts for user %s: %w", userID, err)
	}
	defer rows.Close()

	var alerts []*core.BudgetAlert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return alerts, nil
}

func scanAlert(rows *sql.Rows) (*core.BudgetAlert, error) {
	var (
		alert     core.BudgetAlert
		createdAt string
	)
	if err := rows.Scan(&alert.AlertID, &alert.BudgetID, &alert.UserID, &alert.Category,
		&alert.PeriodKey, &alert.UsageRatio, &alert.Threshold,
		&alert.Spent.Value, &alert.Spent.Currency, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if alert.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &alert, nil
}
