// Package worker evaluates budgets against spending when transactions change
// and records alerts for crossed thresholds.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kakeibo/internal/amqp"
	"kakeibo/internal/core"
	"kakeibo/internal/export"
	"kakeibo/internal/log"
	"kakeibo/internal/services"
)

// AlertWorker consumes transaction events, re-evaluates the affected user's
// budgets and records one alert per budget and period. A configured
// ReportWriter additionally exports each new alert; export failures are
// logged, never retried through the queue.
type AlertWorker struct {
	budgets services.BudgetRepository
	txs     services.TransactionRepository
	alerts  services.AlertRepository
	reports export.ReportWriter
	logger  *log.Logger

	// users touched by events since startup, re-checked periodically in
	// case an event was lost
	mu   sync.Mutex
	seen map[core.UserID]struct{}
}

func NewAlertWorker(budgets services.BudgetRepository, txs services.TransactionRepository, alerts services.AlertRepository, reports export.ReportWriter, logger *log.Logger) *AlertWorker {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &AlertWorker{
		budgets: budgets,
		txs:     txs,
		alerts:  alerts,
		reports: reports,
		logger:  logger.WithComponent(log.ComponentWorker),
		seen:    make(map[core.UserID]struct{}),
	}
}

// HandleTransactionEvent re-evaluates the budgets matching the event's user
// and category. Deletions count too: spending went down, the evaluation is
// just a no-op then.
func (w *AlertWorker) HandleTransactionEvent(ctx context.Context, event *amqp.TransactionEvent) error {
	w.logger.InfoContext(ctx, "Processing transaction event",
		log.FieldEvent, event.Event,
		log.FieldTransactionID, event.TransactionID,
		log.FieldUserID, event.UserID,
		log.FieldCategory, event.Category)

	userID := event.UserID
	w.markSeen(userID)

	budgets, err := w.budgets.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("list budgets: %w", err)
	}

	now := time.Now().UTC()
	for _, budget := range budgets {
		if budget.Category != event.Category {
			continue
		}
		if err := w.evaluateBudget(ctx, budget, now); err != nil {
			return err
		}
	}
	return nil
}

// RunPeriodic re-checks every user seen so far at the given interval until
// the context is cancelled. This is a backup in case events were lost.
func (w *AlertWorker) RunPeriodic(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.CheckSeenUsers(ctx); err != nil {
				w.logger.ErrorContext(ctx, "Periodic budget check failed", log.FieldError, err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}

// CheckSeenUsers evaluates all budgets of every user seen so far.
func (w *AlertWorker) CheckSeenUsers(ctx context.Context) error {
	now := time.Now().UTC()
	var errs []error
	for _, userID := range w.seenUsers() {
		budgets, err := w.budgets.FindByUserID(ctx, userID)
		if err != nil {
			errs = append(errs, fmt.Errorf("list budgets for %s: %w", userID, err))
			continue
		}
		for _, budget := range budgets {
			if err := w.evaluateBudget(ctx, budget, now); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (w *AlertWorker) evaluateBudget(ctx context.Context, budget *core.Budget, now time.Time) error {
	txs, err := w.txs.FindByUserID(ctx, budget.UserID)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	spent := core.SpentInPeriod(txs, budget.Category, budget.Period, now, budget.Amount.Currency)
	alert, err := budget.ShouldAlert(spent)
	if err != nil {
		// A currency mismatch is a data problem, not a transient failure.
		// Requeueing would loop forever, so log and move on.
		var mismatch *core.CurrencyMismatchError
		if errors.As(err, &mismatch) {
			w.logger.WarnContext(ctx, "Skipping budget with currency mismatch",
				log.FieldBudgetID, budget.BudgetID,
				log.FieldError, err.Error())
			return nil
		}
		return fmt.Errorf("evaluate budget %s: %w", budget.BudgetID, err)
	}
	if !alert {
		return nil
	}

	ratio, err := budget.UsageRatio(spent)
	if err != nil {
		return fmt.Errorf("usage ratio for budget %s: %w", budget.BudgetID, err)
	}

	record := core.NewBudgetAlert(budget, spent, ratio, now)

	// Skip budgets already alerted this period so the export is not repeated.
	existing, err := w.alerts.FindByUserID(ctx, budget.UserID)
	if err != nil {
		return fmt.Errorf("list alerts: %w", err)
	}
	for _, a := range existing {
		if a.BudgetID == budget.BudgetID && a.PeriodKey == record.PeriodKey {
			return nil
		}
	}

	if err := w.alerts.Record(ctx, record); err != nil {
		return fmt.Errorf("record alert for budget %s: %w", budget.BudgetID, err)
	}

	w.logger.InfoContext(ctx, "Budget alert raised",
		log.FieldBudgetID, budget.BudgetID,
		log.FieldUserID, string(budget.UserID),
		log.FieldCategory, string(budget.Category),
		log.FieldPeriodKey, record.PeriodKey,
		log.FieldUsageRatio, ratio)

	if w.reports != nil {
		if ref, err := w.reports.AppendAlert(ctx, record); err != nil {
			w.logger.ErrorContext(ctx, "Failed to export alert",
				log.FieldBudgetID, budget.BudgetID,
				log.FieldError, err.Error())
		} else {
			w.logger.InfoContext(ctx, "Alert exported", log.FieldSheetsRef, ref)
		}
	}
	return nil
}

func (w *AlertWorker) markSeen(userID core.UserID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seen[userID] = struct{}{}
}

func (w *AlertWorker) seenUsers() []core.UserID {
	w.mu.Lock()
	defer w.mu.Unlock()
	users := make([]core.UserID, 0, len(w.seen))
	for userID := range w.seen {
		users = append(users, userID)
	}
	return users
}
