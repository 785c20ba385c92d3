// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// InsertDefaults persists the given default categories in one batch.
	// Rows whose ID already exists are skipped, so the operation is safe
	// under concurrent first-time seeding.
	InsertDefaults(ctx context.Context, categories []*entity.Category) error

	// CountDefaults returns the number of system-seeded categories.
	CountDefaults(ctx context.Context) (int64, error)

	// FindByID retrieves a category by its ID.
	// Returns domainerror.ErrCategoryNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisible retrieves every default category plus, when userID is
	// non-nil, the categories owned by that user.
	FindVisible(ctx context.Context, userID *uuid.UUID) ([]*entity.Category, error)

	// Delete removes a category by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
