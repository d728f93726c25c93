package services

import (
	"context"
	"fmt"
	"log/slog"

	"kakeibo/internal/amqp"
	"kakeibo/internal/core"
)

// TransactionService persists transactions and notifies the alert worker.
// Event publishing is best-effort: the transaction is already stored, so a
// publish failure is logged and swallowed.
type TransactionService struct {
	repo      TransactionRepository
	publisher EventPublisher
}

// NewTransactionService creates the service. A nil publisher disables
// event notifications.
func NewTransactionService(repo TransactionRepository, publisher EventPublisher) *TransactionService {
	return &TransactionService{repo: repo, publisher: publisher}
}

// GetTransaction returns the transaction, or nil when unknown.
func (s *TransactionService) GetTransaction(ctx context.Context, id core.TransactionID) (*core.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

// GetTransactions lists all transactions of a user.
func (s *TransactionService) GetTransactions(ctx context.Context, userID core.UserID) ([]*core.Transaction, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, tx *core.Transaction) error {
	if err := s.repo.Save(ctx, tx); err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	s.publish(ctx, amqp.EventTransactionCreated, tx)
	return nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, tx *core.Transaction) error {
	if err := s.repo.Update(ctx, tx); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	s.publish(ctx, amqp.EventTransactionUpdated, tx)
	return nil
}

// DeleteTransaction removes the transaction. The deletion event is built
// from the stored transaction so the worker still knows user and category.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id core.TransactionID) error {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load transaction: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tx != nil {
		s.publish(ctx, amqp.EventTransactionDeleted, tx)
	}
	return nil
}

func (s *TransactionService) publish(ctx context.Context, event string, tx *core.Transaction) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionEvent(ctx, amqp.NewTransactionEvent(event, tx)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"event", event,
			"transaction_id", tx.TransactionID,
			"error", err)
	}
}
