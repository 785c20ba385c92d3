// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser("linh.nguyen@example.com", "linh.nguyen", "+84901234567", "hashed-password")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("FindByEmail returns the stored user", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "linh.nguyen@example.com")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
		if found.Phone != "+84901234567" {
			t.Errorf("phone did not round-trip: %q", found.Phone)
		}
	})

	t.Run("FindByEmail reports missing users", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "linh.nguyen@example.com")
		if err != nil {
			t.Fatal(err)
		}
		if !exists {
			t.Error("expected existing email to be reported")
		}

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatal(err)
		}
		if exists {
			t.Error("expected unknown email to be absent")
		}
	})

	t.Run("UpdatePassword", func(t *testing.T) {
		if err := repo.UpdatePassword(ctx, user.ID, "new-hash"); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		found, err := repo.FindByEmail(ctx, "linh.nguyen@example.com")
		if err != nil {
			t.Fatal(err)
		}
		if found.PasswordHash != "new-hash" {
			t.Errorf("password hash not updated: %q", found.PasswordHash)
		}

		if err := repo.UpdatePassword(ctx, uuid.New(), "x"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound for unknown user, got %v", err)
		}
	})
}
