// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (expense or income).
// It is stored independently of the linked category's kind; the two are not
// cross-validated.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// DefaultCurrency is the currency label applied when the caller supplies none.
const DefaultCurrency = "VND"

// Transaction represents a financial transaction in the Money Keeper system.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Kind       TransactionKind
	OccurredAt time.Time
	Note       string
	Tags       []string
	Currency   string
	CreatedAt  time.Time // set once at creation, never mutated
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	kind TransactionKind,
	occurredAt time.Time,
	note string,
	tags []string,
	currency string,
) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Kind:       kind,
		OccurredAt: occurredAt,
		Note:       note,
		Tags:       tags,
		Currency:   currency,
		CreatedAt:  time.Now().UTC(),
	}
}

// TransactionWithCategory represents a transaction together with its
// category reference resolved to the full record. Category is nil when the
// referenced category no longer exists.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
