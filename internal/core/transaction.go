package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes real household spending from pass-through
// money movements.
type TransactionType string

const (
	// Real spending counts towards the household budget.
	Real TransactionType = "real"
	// Flow is a pass-through transfer (e.g. paying on someone's behalf)
	// excluded from budget totals.
	Flow TransactionType = "flow"
)

// Category is the closed set of spending categories.
type Category string

const (
	Food           Category = "food"
	Transportation Category = "transportation"
	Utilities      Category = "utilities"
	Entertainment  Category = "entertainment"
	Healthcare     Category = "healthcare"
	Shopping       Category = "shopping"
	Education      Category = "education"
	Other          Category = "other"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{Food, Transportation, Utilities, Entertainment, Healthcare, Shopping, Education, Other}
}

func (c Category) IsValid() bool {
	switch c {
	case Food, Transportation, Utilities, Entertainment, Healthcare, Shopping, Education, Other:
		return true
	default:
		return false
	}
}

func (t TransactionType) IsValid() bool {
	return t == Real || t == Flow
}

// SettlementStatus is the state of a reimbursement agreement. There is no
// transition rule in the domain: status changes come from the boundary layer.
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementCompleted SettlementStatus = "completed"
)

func (s SettlementStatus) IsValid() bool {
	return s == SettlementPending || s == SettlementCompleted
}

// SettlementInfo records a reimbursement agreement between two users,
// attached to the transaction being settled.
type SettlementInfo struct {
	SettlementID   string           `json:"settlement_id"`
	CreditorUserID UserID           `json:"creditor_user_id"`
	DebtorUserID   UserID           `json:"debtor_user_id"`
	Status         SettlementStatus `json:"status"`
}

// NewSettlementInfo opens a pending settlement between a creditor and a debtor.
func NewSettlementInfo(creditor, debtor UserID) *SettlementInfo {
	return &SettlementInfo{
		SettlementID:   uuid.NewString(),
		CreditorUserID: creditor,
		DebtorUserID:   debtor,
		Status:         SettlementPending,
	}
}

var (
	ErrEmptyUserID        = errors.New("empty user id")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
)

// Transaction is one financial event of a user. TransactionID, UserID and
// CreatedAt are fixed at construction; everything else changes only through
// the methods below, which keep UpdatedAt current.
type Transaction struct {
	TransactionID TransactionID   `json:"transaction_id"`
	UserID        UserID          `json:"user_id"`
	Type          TransactionType `json:"transaction_type"`
	Amount        Amount          `json:"amount"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Tags          []string        `json:"tags"`
	Date          time.Time       `json:"transaction_date"`
	Settlement    *SettlementInfo `json:"settlement_info,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewTransaction creates a transaction with a fresh identifier. The
// transaction date and both timestamps are stamped to the same instant.
func NewTransaction(userID UserID, typ TransactionType, amount Amount, description string, category Category) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		TransactionID: NewTransactionID(),
		UserID:        userID,
		Type:          typ,
		Amount:        amount,
		Description:   description,
		Category:      category,
		Date:          now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AffectsBudget reports whether the transaction counts towards budget totals.
func (t *Transaction) AffectsBudget() bool {
	return t.Type == Real
}

// Update applies the non-nil fields and refreshes UpdatedAt. Nil means
// "leave unchanged".
func (t *Transaction) Update(description *string, category *Category) {
	if description != nil {
		t.Description = *description
	}
	if category != nil {
		t.Category = *category
	}
	t.UpdatedAt = time.Now().UTC()
}

// AddTag appends the tag unless already present. Adding a duplicate is a
// complete no-op: the timestamp does not move either.
func (t *Transaction) AddTag(tag string) {
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
	t.UpdatedAt = time.Now().UTC()
}

// RemoveTag drops the tag if present. UpdatedAt is refreshed even when the
// tag was absent.
func (t *Transaction) RemoveTag(tag string) {
	kept := t.Tags[:0]
	for _, existing := range t.Tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	t.Tags = kept
	t.UpdatedAt = time.Now().UTC()
}

// HasTag reports tag membership.
func (t *Transaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(string(t.UserID)) == "" {
		return ErrEmptyUserID
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	if len(t.Description) > 200 {
		return ErrDescriptionTooLong
	}
	return nil
}
