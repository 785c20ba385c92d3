// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/moneykeeper/backend/internal/application/adapter"
)

// SeedDefaultsUseCase lazily inserts the system default categories.
type SeedDefaultsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultsUseCase creates a new SeedDefaultsUseCase instance.
func NewSeedDefaultsUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultsUseCase {
	return &SeedDefaultsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute inserts the default categories when none exist yet. Safe to call
// on every list request: the count check short-circuits the steady state,
// and the insert itself skips rows that already exist, so a racing first
// seed cannot duplicate defaults.
func (uc *SeedDefaultsUseCase) Execute(ctx context.Context) error {
	count, err := uc.categoryRepo.CountDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to count default categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := uc.categoryRepo.InsertDefaults(ctx, DefaultCategories()); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
