// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Kind   entity.CategoryKind
	Icon   string // Optional, defaults to entity.DefaultCategoryIcon
	Color  string // Optional, defaults to entity.DefaultCategoryColor
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. The created category is always
// owned by the caller; seeded defaults are the only global categories.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			domainerror.ErrMissingCategoryFields,
		)
	}

	if !isValidCategoryKind(input.Kind) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"category kind must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	// Apply default values for optional fields (Application layer responsibility)
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	category := entity.NewCategory(input.Name, input.Kind, icon, color, input.UserID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// isValidCategoryKind validates the category kind.
func isValidCategoryKind(kind entity.CategoryKind) bool {
	return kind == entity.CategoryKindExpense || kind == entity.CategoryKindIncome
}
