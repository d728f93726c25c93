package services

import (
	"context"
	"errors"
	"testing"

	"kakeibo/internal/amqp"
	"kakeibo/internal/core"
	"kakeibo/internal/memory"
)

type capturedPublisher struct {
	events []*amqp.TransactionEvent
	err    error
}

func (p *capturedPublisher) PublishTransactionEvent(_ context.Context, event *amqp.TransactionEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func TestTransactionServiceCreatePublishes(t *testing.T) {
	ctx := context.Background()
	pub := &capturedPublisher{}
	svc := NewTransactionService(memory.NewTransactionRepo(), pub)

	tx := core.NewTransaction("user123", core.Real, core.JPY(1000), "groceries", core.Food)
	if err := svc.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("create: %v", err)
	}

	stored, err := svc.GetTransaction(ctx, tx.TransactionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored == nil || stored.Description != "groceries" {
		t.Fatalf("transaction not stored: %+v", stored)
	}

	if len(pub.events) != 1 || pub.events[0].Event != amqp.EventTransactionCreated {
		t.Fatalf("expected one created event, got %+v", pub.events)
	}
	if pub.events[0].Category != core.Food {
		t.Fatalf("event category = %q", pub.events[0].Category)
	}
}

func TestTransactionServicePublishFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	pub := &capturedPublisher{err: errors.New("broker down")}
	svc := NewTransactionService(memory.NewTransactionRepo(), pub)

	tx := core.NewTransaction("user123", core.Real, core.JPY(1000), "groceries", core.Food)
	if err := svc.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("publish failure must not fail the create: %v", err)
	}

	stored, err := svc.GetTransaction(ctx, tx.TransactionID)
	if err != nil || stored == nil {
		t.Fatalf("transaction should be stored regardless: %v %v", stored, err)
	}
}

func TestTransactionServiceNilPublisher(t *testing.T) {
	ctx := context.Background()
	svc := NewTransactionService(memory.NewTransactionRepo(), nil)

	tx := core.NewTransaction("user123", core.Real, core.JPY(500), "coffee", core.Food)
	if err := svc.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("create without publisher: %v", err)
	}
}

func TestTransactionServiceDeleteEmitsEventWithCategory(t *testing.T) {
	ctx := context.Background()
	pub := &capturedPublisher{}
	svc := NewTransactionService(memory.NewTransactionRepo(), pub)

	tx := core.NewTransaction("user123", core.Real, core.JPY(1000), "groceries", core.Food)
	if err := svc.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteTransaction(ctx, tx.TransactionID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	stored, err := svc.GetTransaction(ctx, tx.TransactionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored != nil {
		t.Fatal("transaction should be gone")
	}

	if len(pub.events) != 2 {
		t.Fatalf("expected created+deleted events, got %d", len(pub.events))
	}
	deleted := pub.events[1]
	if deleted.Event != amqp.EventTransactionDeleted || deleted.UserID != "user123" || deleted.Category != core.Food {
		t.Fatalf("deletion event must keep user and category: %+v", deleted)
	}
}

func TestTransactionServiceDeleteUnknownIsQuiet(t *testing.T) {
	ctx := context.Background()
	pub := &capturedPublisher{}
	svc := NewTransactionService(memory.NewTransactionRepo(), pub)

	if err := svc.DeleteTransaction(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatalf("no event expected for unknown transaction, got %+v", pub.events)
	}
}
