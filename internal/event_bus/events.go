package event_bus

import "time"

const (
	TransactionAddedEvent   EventType = "transaction.added"
	TransactionRemovedEvent EventType = "transaction.removed"
)

// TransactionAdded is published when a confirmed transaction enters the ledger.
// AmountCents is always positive; Kind is one of expense, income, transfer.
type TransactionAdded struct {
	ID                string
	Kind              string
	AmountCents       int64
	CategoryKey       string
	CategoryName      string
	Date              time.Time
	ExcludeFromBudget bool
}

// TransactionRemoved is published when a transaction leaves the ledger,
// including the removal half of an edit-by-replace.
type TransactionRemoved struct {
	ID                string
	Kind              string
	AmountCents       int64
	CategoryKey       string
	CategoryName      string
	Date              time.Time
	ExcludeFromBudget bool
}
