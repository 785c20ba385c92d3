// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns domainerror.ErrTransactionNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category
	// reference resolved. The resolved category is nil when the referenced
	// category no longer exists.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByUserWithCategory retrieves all transactions owned by the user,
	// newest first by occurrence time, with categories resolved.
	FindByUserWithCategory(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithCategory, error)

	// Update replaces the stored transaction with the given state.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
