// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID *uuid.UUID // nil lists only the default categories
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing the categories visible to a user.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	seedDefaults *SeedDefaultsUseCase
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, seedDefaults *SeedDefaultsUseCase) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		seedDefaults: seedDefaults,
	}
}

// Execute returns every default category plus the caller's owned categories.
// Defaults are seeded first so the list is never empty on first use.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if err := uc.seedDefaults.Execute(ctx); err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindVisible(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
