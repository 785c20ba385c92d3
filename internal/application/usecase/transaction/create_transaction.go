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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Kind       entity.TransactionKind
	OccurredAt *time.Time // Optional, defaults to the creation instant
	Note       string
	Tags       []string
	Currency   string // Optional, defaults to entity.DefaultCurrency
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation. The referenced category must
// exist and be visible to the owner (default or owned by them). The
// transaction's kind is not required to match the category's kind: a refund
// booked as income against an expense category stays legal.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionKind(input.Kind) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	category, err := resolveVisibleCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.CategoryID,
		input.Amount,
		input.Kind,
		occurredAt,
		input.Note,
		input.Tags,
		currency,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: transaction,
			Category:    category,
		},
	}, nil
}

// resolveVisibleCategory loads the category and checks it is visible to the user.
func resolveVisibleCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, categoryID, userID uuid.UUID) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.VisibleTo(userID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotVisible,
			"category not visible to user",
			domainerror.ErrCategoryNotVisibleToUser,
		)
	}

	return category, nil
}

// isValidTransactionKind validates the transaction kind.
func isValidTransactionKind(kind entity.TransactionKind) bool {
	return kind == entity.TransactionKindExpense || kind == entity.TransactionKindIncome
}
