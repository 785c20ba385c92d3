// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// CategorySuggester defines the interface for AI-assisted category suggestion.
type CategorySuggester interface {
	// IsAvailable reports whether the service is configured and usable.
	IsAvailable() bool

	// SuggestCategory picks the category from candidates that best matches
	// the free-text note. Returns domainerror.ErrNoCategorySuggestion when
	// none fits.
	SuggestCategory(ctx context.Context, note string, candidates []*entity.Category) (uuid.UUID, error)
}
