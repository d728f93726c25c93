package backend

import (
	"context"

	"kakeibo/internal/services"
)

// Backend bundles the repository set a deployment runs on. Every field is
// non-nil after creation except Publisher, which stays nil when AMQP is not
// configured.
type Backend struct {
	Users        services.UserRepository
	Transactions services.TransactionRepository
	Budgets      services.BudgetRepository
	Groups       services.GroupRepository
	Alerts       services.AlertRepository
	Publisher    services.EventPublisher
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the backend instance and optional cleanup function
type BackendResult struct {
	Backend *Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
