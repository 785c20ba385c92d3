// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *decimal.Decimal
	Kind          *entity.TransactionKind
	OccurredAt    *time.Time
	Note          *string
	Tags          *[]string
	Currency      *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute replaces exactly the supplied fields on the existing record.
// CreatedAt is never mutated. A changed category is revalidated against the
// transaction's owner.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.CategoryID != nil {
		if _, err := resolveVisibleCategory(ctx, uc.categoryRepo, *input.CategoryID, transaction.UserID); err != nil {
			return nil, err
		}
		transaction.CategoryID = *input.CategoryID
	}

	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}

	if input.Kind != nil {
		if !isValidTransactionKind(*input.Kind) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionKind,
				"transaction kind must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionKind,
			)
		}
		transaction.Kind = *input.Kind
	}

	if input.OccurredAt != nil {
		transaction.OccurredAt = *input.OccurredAt
	}

	if input.Note != nil {
		transaction.Note = *input.Note
	}

	if input.Tags != nil {
		transaction.Tags = *input.Tags
	}

	if input.Currency != nil {
		transaction.Currency = *input.Currency
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	updated, err := uc.transactionRepo.FindByIDWithCategory(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: updated,
	}, nil
}
