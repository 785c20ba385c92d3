// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is a pointer so a zero amount is distinguishable from an absent one.
type CreateTransactionRequest struct {
	UserID     string     `json:"userId" binding:"required,uuid"`
	CategoryID string     `json:"categoryId" binding:"required,uuid"`
	Amount     *float64   `json:"amount" binding:"required"`
	Kind       string     `json:"kind" binding:"required,oneof=expense income"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
	Note       string     `json:"note,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Currency   string     `json:"currency,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields keep their stored values.
type UpdateTransactionRequest struct {
	CategoryID *string    `json:"categoryId,omitempty" binding:"omitempty,uuid"`
	Amount     *float64   `json:"amount,omitempty"`
	Kind       *string    `json:"kind,omitempty" binding:"omitempty,oneof=expense income"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
	Note       *string    `json:"note,omitempty"`
	Tags       *[]string  `json:"tags,omitempty"`
	Currency   *string    `json:"currency,omitempty"`
}

// SuggestCategoryRequest represents the request body for category suggestion.
type SuggestCategoryRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Note   string `json:"note" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
// Category is null when the referenced category no longer exists.
type TransactionResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	CategoryID string            `json:"categoryId"`
	Category   *CategoryResponse `json:"category"`
	Amount     string            `json:"amount"`
	Kind       string            `json:"kind"`
	OccurredAt time.Time         `json:"occurredAt"`
	Note       string            `json:"note,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Currency   string            `json:"currency"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// SuggestCategoryResponse represents the response for category suggestion.
type SuggestCategoryResponse struct {
	Category CategoryResponse `json:"category"`
}

// ToTransactionResponse converts a transaction with its resolved category to a DTO.
func ToTransactionResponse(txn *entity.TransactionWithCategory) TransactionResponse {
	var category *CategoryResponse
	if txn.Category != nil {
		resp := ToCategoryResponse(txn.Category)
		category = &resp
	}
	record := txn.Transaction
	return TransactionResponse{
		ID:         record.ID.String(),
		UserID:     record.UserID.String(),
		CategoryID: record.CategoryID.String(),
		Category:   category,
		Amount:     record.Amount.String(),
		Kind:       string(record.Kind),
		OccurredAt: record.OccurredAt,
		Note:       record.Note,
		Tags:       record.Tags,
		Currency:   record.Currency,
		CreatedAt:  record.CreatedAt,
	}
}

// ToTransactionListResponse converts transactions to a bare response slice.
// Listings put the array directly under the envelope's data field.
func ToTransactionListResponse(txns []*entity.TransactionWithCategory) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}
