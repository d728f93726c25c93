// Package export defines where budget alert reports go once the worker has
// raised them. Implementations live in subpackages.
package export

import (
	"context"

	"kakeibo/internal/core"
)

// ReportWriter appends one alert row to an external report and returns an
// implementation-specific reference to it.
type ReportWriter interface {
	AppendAlert(ctx context.Context, alert *core.BudgetAlert) (string, error)
}
