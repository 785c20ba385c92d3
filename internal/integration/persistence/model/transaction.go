// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind       string          `gorm:"type:varchar(10);not null;index"`
	OccurredAt time.Time       `gorm:"not null;index"`
	Note       string          `gorm:"type:text"`
	Tags       pq.StringArray  `gorm:"type:text[]"`
	Currency   string          `gorm:"type:varchar(8);not null;default:'VND'"`
	CreatedAt  time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload). Migration runs
	// without foreign key constraints: a category may be deleted while
	// transactions still reference it, and those reads resolve to a nil
	// category.
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Kind:       entity.TransactionKind(m.Kind),
		OccurredAt: m.OccurredAt,
		Note:       m.Note,
		Tags:       []string(m.Tags),
		Currency:   m.Currency,
		CreatedAt:  m.CreatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its preloaded
// Category to a TransactionWithCategory entity. Category stays nil when the
// referenced category no longer exists.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		UserID:     transaction.UserID,
		CategoryID: transaction.CategoryID,
		Amount:     transaction.Amount,
		Kind:       string(transaction.Kind),
		OccurredAt: transaction.OccurredAt,
		Note:       transaction.Note,
		Tags:       pq.StringArray(transaction.Tags),
		Currency:   transaction.Currency,
		CreatedAt:  transaction.CreatedAt,
	}
}
