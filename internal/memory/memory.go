// Package memory provides mutex-guarded in-memory implementations of the
// repository ports. They back the "memory" data backend and double as fakes
// in tests. Entities are copied on the way in and out so callers never share
// mutable state with the store.
package memory

import (
	"context"
	"sync"

	"kakeibo/internal/core"
)

type UserRepo struct {
	mu    sync.Mutex
	users map[core.UserID]*core.UserProfile
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[core.UserID]*core.UserProfile)}
}

func (r *UserRepo) FindByID(_ context.Context, userID core.UserID) (*core.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return cloneProfile(profile), nil
}

func (r *UserRepo) Save(_ context.Context, profile *core.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[profile.UserID] = cloneProfile(profile)
	return nil
}

func (r *UserRepo) Update(ctx context.Context, profile *core.UserProfile) error {
	return r.Save(ctx, profile)
}

func (r *UserRepo) Delete(_ context.Context, userID core.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

type TransactionRepo struct {
	mu  sync.Mutex
	txs map[core.TransactionID]*core.Transaction
}

func NewTransactionRepo() *TransactionRepo {
	return &TransactionRepo{txs: make(map[core.TransactionID]*core.Transaction)}
}

func (r *TransactionRepo) FindByID(_ context.Context, id core.TransactionID) (*core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	return cloneTransaction(tx), nil
}

func (r *TransactionRepo) FindByUserID(_ context.Context, userID core.UserID) ([]*core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*core.Transaction
	for _, tx := range r.txs {
		if tx.UserID == userID {
			out = append(out, cloneTransaction(tx))
		}
	}
	return out, nil
}

func (r *TransactionRepo) Save(_ context.Context, tx *core.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[tx.TransactionID] = cloneTransaction(tx)
	return nil
}

func (r *TransactionRepo) Update(ctx context.Context, tx *core.Transaction) error {
	return r.Save(ctx, tx)
}

func (r *TransactionRepo) Delete(_ context.Context, id core.TransactionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.txs, id)
	return nil
}

type BudgetRepo struct {
	mu      sync.Mutex
	budgets map[string]*core.Budget
}

func NewBudgetRepo() *BudgetRepo {
	return &BudgetRepo{budgets: make(map[string]*core.Budget)}
}

func (r *BudgetRepo) FindByID(_ context.Context, budgetID string) (*core.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	budget, ok := r.budgets[budgetID]
	if !ok {
		return nil, nil
	}
	clone := *budget
	return &clone, nil
}

func (r *BudgetRepo) FindByUserID(_ context.Context, userID core.UserID) ([]*core.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*core.Budget
	for _, budget := range r.budgets {
		if budget.UserID == userID {
			clone := *budget
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *BudgetRepo) Save(_ context.Context, budget *core.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *budget
	r.budgets[budget.BudgetID] = &clone
	return nil
}

func (r *BudgetRepo) Update(ctx context.Context, budget *core.Budget) error {
	return r.Save(ctx, budget)
}

func (r *BudgetRepo) Delete(_ context.Context, budgetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.budgets, budgetID)
	return nil
}

type GroupRepo struct {
	mu     sync.Mutex
	groups map[core.GroupID]*core.Group
}

func NewGroupRepo() *GroupRepo {
	return &GroupRepo{groups: make(map[core.GroupID]*core.Group)}
}

func (r *GroupRepo) FindByID(_ context.Context, groupID core.GroupID) (*core.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	group, ok := r.groups[groupID]
	if !ok {
		return nil, nil
	}
	return cloneGroup(group), nil
}

func (r *GroupRepo) FindByUserID(_ context.Context, userID core.UserID) ([]*core.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*core.Group
	for _, group := range r.groups {
		if group.IsMember(userID) {
			out = append(out, cloneGroup(group))
		}
	}
	return out, nil
}

func (r *GroupRepo) Save(_ context.Context, group *core.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[group.GroupID] = cloneGroup(group)
	return nil
}

func (r *GroupRepo) Update(ctx context.Context, group *core.Group) error {
	return r.Save(ctx, group)
}

func (r *GroupRepo) Delete(_ context.Context, groupID core.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groups, groupID)
	return nil
}

type AlertRepo struct {
	mu     sync.Mutex
	alerts []*core.BudgetAlert
}

func NewAlertRepo() *AlertRepo {
	return &AlertRepo{}
}

func (r *AlertRepo) Record(_ context.Context, alert *core.BudgetAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.alerts {
		if existing.BudgetID == alert.BudgetID && existing.PeriodKey == alert.PeriodKey {
			return nil
		}
	}
	clone := *alert
	r.alerts = append(r.alerts, &clone)
	return nil
}

func (r *AlertRepo) FindByUserID(_ context.Context, userID core.UserID) ([]*core.BudgetAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*core.BudgetAlert
	for _, alert := range r.alerts {
		if alert.UserID == userID {
			clone := *alert
			out = append(out, &clone)
		}
	}
	return out, nil
}

func cloneProfile(p *core.UserProfile) *core.UserProfile {
	clone := *p
	if p.DisplayName != nil {
		name := *p.DisplayName
		clone.DisplayName = &name
	}
	return &clone
}

func cloneTransaction(t *core.Transaction) *core.Transaction {
	clone := *t
	clone.Tags = append([]string(nil), t.Tags...)
	if t.Settlement != nil {
		settlement := *t.Settlement
		clone.Settlement = &settlement
	}
	return &clone
}

func cloneGroup(g *core.Group) *core.Group {
	clone := *g
	clone.Members = append([]core.UserID(nil), g.Members...)
	return &clone
}
