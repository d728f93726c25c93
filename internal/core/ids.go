package core

import "github.com/google/uuid"

type (
	// UserID identifies a user. Values come from the boundary layer
	// (authentication is out of scope here), so there is no generator.
	UserID string

	// TransactionID identifies a transaction.
	TransactionID string

	// GroupID identifies an expense-sharing group.
	GroupID string
)

func (id UserID) String() string        { return string(id) }
func (id TransactionID) String() string { return string(id) }
func (id GroupID) String() string       { return string(id) }

// NewTransactionID generates a fresh random transaction identifier.
// Uniqueness across the system is the storage layer's concern.
func NewTransactionID() TransactionID {
	return TransactionID(uuid.NewString())
}

// NewGroupID generates a fresh random group identifier.
func NewGroupID() GroupID {
	return GroupID(uuid.NewString())
}
