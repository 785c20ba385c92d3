// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

func seedOwnedCategory(t *testing.T, repo adapter.CategoryRepository, owner uuid.UUID) *entity.Category {
	t.Helper()
	category := entity.NewCategory("Ăn uống", entity.CategoryKindExpense, "restaurant", "0xFFFF7043", owner)
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatal(err)
	}
	return category
}

func newTransaction(userID, categoryID uuid.UUID, occurredAt time.Time) *entity.Transaction {
	return entity.NewTransaction(
		userID,
		categoryID,
		decimal.NewFromInt(45000),
		entity.TransactionKindExpense,
		occurredAt,
		"bún chả",
		[]string{"lunch", "street-food"},
		entity.DefaultCurrency,
	)
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	category := seedOwnedCategory(t, categoryRepo, userID)
	transaction := newTransaction(userID, category.ID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	if err := repo.Create(ctx, transaction); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByIDWithCategory(ctx, transaction.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}

	record := stored.Transaction
	if !record.Amount.Equal(transaction.Amount) {
		t.Errorf("amount changed: %s vs %s", record.Amount, transaction.Amount)
	}
	if record.Note != transaction.Note {
		t.Errorf("note changed: %q", record.Note)
	}
	if len(record.Tags) != 2 || record.Tags[0] != "lunch" || record.Tags[1] != "street-food" {
		t.Errorf("tags did not round-trip: %v", record.Tags)
	}
	if record.Currency != entity.DefaultCurrency {
		t.Errorf("currency changed: %q", record.Currency)
	}
	if stored.Category == nil || stored.Category.ID != category.ID {
		t.Error("category not resolved on read")
	}
}

func TestTransactionRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	category := seedOwnedCategory(t, categoryRepo, userID)

	occurredAts := []time.Time{
		time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC),
	}
	for _, occurredAt := range occurredAts {
		if err := repo.Create(ctx, newTransaction(userID, category.ID, occurredAt)); err != nil {
			t.Fatal(err)
		}
	}

	listed, err := repo.FindByUserWithCategory(ctx, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != len(occurredAts) {
		t.Fatalf("expected %d transactions, got %d", len(occurredAts), len(listed))
	}

	for i := 1; i < len(listed); i++ {
		prev := listed[i-1].Transaction.OccurredAt
		curr := listed[i].Transaction.OccurredAt
		if prev.Before(curr) {
			t.Errorf("not in descending order at %d: %v before %v", i, prev, curr)
		}
	}

	t.Run("scoped to the user", func(t *testing.T) {
		other, err := repo.FindByUserWithCategory(ctx, uuid.New())
		if err != nil {
			t.Fatal(err)
		}
		if len(other) != 0 {
			t.Errorf("expected no transactions for another user, got %d", len(other))
		}
	})
}

func TestTransactionRepository_DanglingCategory(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	category := seedOwnedCategory(t, categoryRepo, userID)
	transaction := newTransaction(userID, category.ID, time.Now().UTC())
	if err := repo.Create(ctx, transaction); err != nil {
		t.Fatal(err)
	}

	// Deleting the category must not touch the transaction.
	if err := categoryRepo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("category delete failed: %v", err)
	}

	stored, err := repo.FindByIDWithCategory(ctx, transaction.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Category != nil {
		t.Error("expected nil category after category deletion")
	}
	if stored.Transaction.CategoryID != category.ID {
		t.Error("stored category reference changed after category deletion")
	}
}

func TestTransactionRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	category := seedOwnedCategory(t, categoryRepo, userID)
	transaction := newTransaction(userID, category.ID, time.Now().UTC())
	if err := repo.Create(ctx, transaction); err != nil {
		t.Fatal(err)
	}

	transaction.Amount = decimal.NewFromInt(99000)
	transaction.Note = "bún chả thêm nem"
	transaction.Tags = []string{"lunch"}
	if err := repo.Update(ctx, transaction); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := repo.FindByID(ctx, transaction.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(99000)) {
		t.Errorf("amount not updated: %s", stored.Amount)
	}
	if stored.Note != "bún chả thêm nem" {
		t.Errorf("note not updated: %q", stored.Note)
	}
	if len(stored.Tags) != 1 || stored.Tags[0] != "lunch" {
		t.Errorf("tags not updated: %v", stored.Tags)
	}
}

func TestTransactionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	category := seedOwnedCategory(t, categoryRepo, userID)
	transaction := newTransaction(userID, category.ID, time.Now().UTC())
	if err := repo.Create(ctx, transaction); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, transaction.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, transaction.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}

	t.Run("deleting an absent ID is a no-op", func(t *testing.T) {
		if err := repo.Delete(ctx, uuid.New()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
