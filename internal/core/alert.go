package core

import (
	"time"

	"github.com/google/uuid"
)

// BudgetAlert records that a budget crossed its alert threshold within one
// period. One alert per budget and period: PeriodKey deduplicates.
type BudgetAlert struct {
	AlertID    string    `json:"alert_id"`
	BudgetID   string    `json:"budget_id"`
	UserID     UserID    `json:"user_id"`
	Category   Category  `json:"category"`
	PeriodKey  string    `json:"period_key"`
	UsageRatio float64   `json:"usage_ratio"`
	Threshold  float64   `json:"threshold"`
	Spent      Amount    `json:"spent"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewBudgetAlert creates an alert for the period containing ref.
func NewBudgetAlert(b *Budget, spent Amount, ratio float64, ref time.Time) *BudgetAlert {
	return &BudgetAlert{
		AlertID:    uuid.NewString(),
		BudgetID:   b.BudgetID,
		UserID:     b.UserID,
		Category:   b.Category,
		PeriodKey:  b.PeriodKey(ref),
		UsageRatio: ratio,
		Threshold:  b.AlertThreshold,
		Spent:      spent,
		CreatedAt:  time.Now().UTC(),
	}
}
