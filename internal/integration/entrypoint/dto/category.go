// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneykeeper/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Name   string `json:"name" binding:"required,min=1,max=50"`
	Kind   string `json:"kind" binding:"required,oneof=expense income"`
	Icon   string `json:"icon,omitempty"`
	Color  string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
	Owner     *string `json:"owner"`
	IsDefault bool    `json:"isDefault"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	var owner *string
	if cat.OwnerID != nil {
		id := cat.OwnerID.String()
		owner = &id
	}
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Kind:      string(cat.Kind),
		Icon:      cat.Icon,
		Color:     cat.Color,
		Owner:     owner,
		IsDefault: cat.IsDefault,
	}
}

// ToCategoryListResponse converts categories to a bare response slice.
// Listings put the array directly under the envelope's data field.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(cat)
	}
	return responses
}
