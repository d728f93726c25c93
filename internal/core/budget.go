package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BudgetPeriod is the window a budget cap applies to.
type BudgetPeriod string

const (
	Monthly BudgetPeriod = "monthly"
	Yearly  BudgetPeriod = "yearly"
)

func (p BudgetPeriod) IsValid() bool {
	return p == Monthly || p == Yearly
}

var (
	ErrInvalidPeriod    = errors.New("invalid budget period")
	ErrInvalidThreshold = errors.New("alert threshold must be between 0.0 and 1.0")
)

// Budget caps spending for one category over a period. The spent amount is
// accumulated externally by summing matching transactions; the budget only
// answers usage and alert questions about it.
type Budget struct {
	BudgetID       string       `json:"budget_id"`
	UserID         UserID       `json:"user_id"`
	Category       Category     `json:"category"`
	Amount         Amount       `json:"amount"`
	Period         BudgetPeriod `json:"period"`
	AlertThreshold float64      `json:"alert_threshold"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// NewBudget creates a budget with a fresh identifier.
func NewBudget(userID UserID, category Category, amount Amount, period BudgetPeriod, alertThreshold float64) *Budget {
	now := time.Now().UTC()
	return &Budget{
		BudgetID:       uuid.NewString(),
		UserID:         userID,
		Category:       category,
		Amount:         amount,
		Period:         period,
		AlertThreshold: alertThreshold,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UsageRatio returns spent/cap as a float. A zero cap reports 0.0 rather
// than dividing by zero, so zero-cap budgets never alert through this path.
func (b *Budget) UsageRatio(spent Amount) (float64, error) {
	if b.Amount.Currency != spent.Currency {
		return 0, &CurrencyMismatchError{Left: b.Amount.Currency, Right: spent.Currency}
	}
	if b.Amount.Value == 0 {
		return 0.0, nil
	}
	return float64(spent.Value) / float64(b.Amount.Value), nil
}

// ShouldAlert reports whether usage has reached the alert threshold. The
// comparison is inclusive.
func (b *Budget) ShouldAlert(spent Amount) (bool, error) {
	usage, err := b.UsageRatio(spent)
	if err != nil {
		return false, err
	}
	return usage >= b.AlertThreshold, nil
}

// PeriodKey identifies the budget period containing ref: "2006-01" for
// monthly budgets, "2006" for yearly ones.
func (b *Budget) PeriodKey(ref time.Time) string {
	if b.Period == Yearly {
		return ref.UTC().Format("2006")
	}
	return ref.UTC().Format("2006-01")
}

func (b *Budget) Validate() error {
	if b.UserID == "" {
		return ErrEmptyUserID
	}
	if !b.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !b.Period.IsValid() {
		return ErrInvalidPeriod
	}
	if b.AlertThreshold < 0.0 || b.AlertThreshold > 1.0 {
		return ErrInvalidThreshold
	}
	return nil
}
