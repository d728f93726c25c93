package core

import "time"

// CategoryTotal is an amount aggregated under one category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    Amount   `json:"total"`
}

// SpendingSummary is a compact per-month view of budget-relevant spending.
type SpendingSummary struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"` // 1-12
	Total      Amount          `json:"total"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// Summarize aggregates the transactions that fall in the given year+month.
// Flow transactions are pass-throughs and do not count; amounts in a
// different currency than requested are skipped rather than coerced.
func Summarize(txs []*Transaction, year, month int, currency string) SpendingSummary {
	summary := SpendingSummary{
		Year:  year,
		Month: month,
		Total: Amount{Currency: currency},
	}
	perCategory := make(map[Category]Amount)
	for _, tx := range txs {
		if !tx.AffectsBudget() || tx.Amount.Currency != currency {
			continue
		}
		y, m, _ := tx.Date.UTC().Date()
		if y != year || int(m) != month {
			continue
		}
		summary.Total, _ = summary.Total.Add(tx.Amount)
		current, ok := perCategory[tx.Category]
		if !ok {
			current = Amount{Currency: currency}
		}
		perCategory[tx.Category], _ = current.Add(tx.Amount)
	}
	for _, cat := range Categories() {
		if total, ok := perCategory[cat]; ok {
			summary.ByCategory = append(summary.ByCategory, CategoryTotal{Category: cat, Total: total})
		}
	}
	return summary
}

// SpentInPeriod sums budget-relevant spending for one category inside the
// budget period containing ref: the calendar month for Monthly budgets, the
// calendar year for Yearly ones. This is the accumulated amount fed to
// Budget.UsageRatio and Budget.ShouldAlert.
func SpentInPeriod(txs []*Transaction, category Category, period BudgetPeriod, ref time.Time, currency string) Amount {
	spent := Amount{Currency: currency}
	refY, refM, _ := ref.UTC().Date()
	for _, tx := range txs {
		if !tx.AffectsBudget() || tx.Category != category || tx.Amount.Currency != currency {
			continue
		}
		y, m, _ := tx.Date.UTC().Date()
		if y != refY {
			continue
		}
		if period == Monthly && m != refM {
			continue
		}
		spent, _ = spent.Add(tx.Amount)
	}
	return spent
}
