// Package services orchestrates repositories into domain operations. There
// is no business logic here beyond delegation: entities validate and mutate
// themselves, repositories persist, services wire the two together and
// propagate failures unchanged.
package services

import (
	"context"

	"kakeibo/internal/amqp"
	"kakeibo/internal/core"
)

// Repository ports. A lookup that finds nothing returns (nil, nil): absence
// is an expected outcome, not an error. Storage failures come back as-is;
// services never retry or cache.
type (
	UserRepository interface {
		FindByID(ctx context.Context, userID core.UserID) (*core.UserProfile, error)
		Save(ctx context.Context, profile *core.UserProfile) error
		Update(ctx context.Context, profile *core.UserProfile) error
		Delete(ctx context.Context, userID core.UserID) error
	}

	TransactionRepository interface {
		FindByID(ctx context.Context, transactionID core.TransactionID) (*core.Transaction, error)
		FindByUserID(ctx context.Context, userID core.UserID) ([]*core.Transaction, error)
		Save(ctx context.Context, tx *core.Transaction) error
		Update(ctx context.Context, tx *core.Transaction) error
		Delete(ctx context.Context, transactionID core.TransactionID) error
	}

	BudgetRepository interface {
		FindByID(ctx context.Context, budgetID string) (*core.Budget, error)
		FindByUserID(ctx context.Context, userID core.UserID) ([]*core.Budget, error)
		Save(ctx context.Context, budget *core.Budget) error
		Update(ctx context.Context, budget *core.Budget) error
		Delete(ctx context.Context, budgetID string) error
	}

	GroupRepository interface {
		FindByID(ctx context.Context, groupID core.GroupID) (*core.Group, error)
		FindByUserID(ctx context.Context, userID core.UserID) ([]*core.Group, error)
		Save(ctx context.Context, group *core.Group) error
		Update(ctx context.Context, group *core.Group) error
		Delete(ctx context.Context, groupID core.GroupID) error
	}

	AlertRepository interface {
		// Record stores the alert unless one already exists for the same
		// budget and period key.
		Record(ctx context.Context, alert *core.BudgetAlert) error
		FindByUserID(ctx context.Context, userID core.UserID) ([]*core.BudgetAlert, error)
	}

	// EventPublisher pushes transaction events to the alert worker.
	EventPublisher interface {
		PublishTransactionEvent(ctx context.Context, event *amqp.TransactionEvent) error
	}
)
