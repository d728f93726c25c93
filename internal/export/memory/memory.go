// Package memory is an in-process ReportWriter used in tests and local runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"kakeibo/internal/core"
	"kakeibo/internal/export"
)

type Writer struct {
	mu     sync.Mutex
	alerts []*core.BudgetAlert
}

var _ export.ReportWriter = (*Writer)(nil)

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) AppendAlert(_ context.Context, alert *core.BudgetAlert) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alerts = append(w.alerts, alert)
	return fmt.Sprintf("memory:%d", len(w.alerts)), nil
}

// Alerts returns a snapshot of everything appended so far.
func (w *Writer) Alerts() []*core.BudgetAlert {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*core.BudgetAlert, len(w.alerts))
	copy(out, w.alerts)
	return out
}
