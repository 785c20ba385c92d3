// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	UserID uuid.UUID
	Note   string
}

// SuggestCategoryOutput represents the output of a category suggestion.
type SuggestCategoryOutput struct {
	Category *entity.Category
}

// SuggestCategoryUseCase picks the visible category best matching a
// free-text note, using the configured AI service.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	suggester    adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	suggester adapter.CategorySuggester,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		suggester:    suggester,
	}
}

// Execute asks the suggestion service to choose among the categories
// visible to the user.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion service unavailable",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	candidates, err := uc.categoryRepo.FindVisible(ctx, &input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categoryID, err := uc.suggester.SuggestCategory(ctx, input.Note, candidates)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoCategorySuggestion) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNoCategorySuggestion,
				"no matching category found",
				domainerror.ErrNoCategorySuggestion,
			)
		}
		return nil, fmt.Errorf("failed to suggest category: %w", err)
	}

	for _, candidate := range candidates {
		if candidate.ID == categoryID {
			return &SuggestCategoryOutput{Category: candidate}, nil
		}
	}

	// The service returned an ID outside the candidate set.
	return nil, domainerror.NewTransactionError(
		domainerror.ErrCodeNoCategorySuggestion,
		"no matching category found",
		domainerror.ErrNoCategorySuggestion,
	)
}
