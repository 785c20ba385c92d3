// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository for tests.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return domainerror.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// fakePasswordService hashes with a reversible marker so tests stay fast.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (s *fakeTokenService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, email), nil
}

func registerUser(t *testing.T, repo *fakeUserRepository, email, password string) *entity.User {
	t.Helper()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, nil)
	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	return output.User
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the name from the email local part", func(t *testing.T) {
		repo := newFakeUserRepository()
		user := registerUser(t, repo, "linh.nguyen@example.com", "s3cretpass")

		if user.Name != "linh.nguyen" {
			t.Errorf("expected name 'linh.nguyen', got %q", user.Name)
		}
		if user.PasswordHash == "s3cretpass" {
			t.Error("password stored in plain text")
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeUserRepository()
		registerUser(t, repo, "linh.nguyen@example.com", "s3cretpass")

		uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, nil)
		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "linh.nguyen@example.com",
			Password: "otherpass",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailAlreadyRegistered {
			t.Fatalf("expected duplicate email error, got %v", err)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("issues an access token on valid credentials", func(t *testing.T) {
		repo := newFakeUserRepository()
		user := registerUser(t, repo, "linh.nguyen@example.com", "s3cretpass")

		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
		output, err := uc.Execute(ctx, LoginUserInput{
			Email:    "linh.nguyen@example.com",
			Password: "s3cretpass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := fmt.Sprintf("token:%s:%s", user.ID, user.Email)
		if output.AccessToken != expected {
			t.Errorf("expected token %q, got %q", expected, output.AccessToken)
		}
	})

	t.Run("wrong password and unknown email yield the same error", func(t *testing.T) {
		repo := newFakeUserRepository()
		registerUser(t, repo, "linh.nguyen@example.com", "s3cretpass")
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		_, wrongPassErr := uc.Execute(ctx, LoginUserInput{
			Email:    "linh.nguyen@example.com",
			Password: "wrong",
		})
		_, unknownEmailErr := uc.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "s3cretpass",
		})

		for _, err := range []error{wrongPassErr, unknownEmailErr} {
			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Fatalf("expected invalid credentials error, got %v", err)
			}
		}
		if wrongPassErr.Error() != unknownEmailErr.Error() {
			t.Error("login errors leak whether the email is registered")
		}
	})
}

func TestChangePasswordUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the password after verifying the old one", func(t *testing.T) {
		repo := newFakeUserRepository()
		registerUser(t, repo, "linh.nguyen@example.com", "s3cretpass")

		uc := NewChangePasswordUseCase(repo, &fakePasswordService{})
		if _, err := uc.Execute(ctx, ChangePasswordInput{
			Email:       "linh.nguyen@example.com",
			OldPassword: "s3cretpass",
			NewPassword: "newpass123",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		login := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
		if _, err := login.Execute(ctx, LoginUserInput{
			Email:    "linh.nguyen@example.com",
			Password: "newpass123",
		}); err != nil {
			t.Errorf("login with new password failed: %v", err)
		}
		if _, err := login.Execute(ctx, LoginUserInput{
			Email:    "linh.nguyen@example.com",
			Password: "s3cretpass",
		}); err == nil {
			t.Error("login with old password still succeeds")
		}
	})

	t.Run("rejects a wrong old password", func(t *testing.T) {
		repo := newFakeUserRepository()
		registerUser(t, repo, "linh.nguyen@example.com", "s3cretpass")

		uc := NewChangePasswordUseCase(repo, &fakePasswordService{})
		_, err := uc.Execute(ctx, ChangePasswordInput{
			Email:       "linh.nguyen@example.com",
			OldPassword: "wrong",
			NewPassword: "newpass123",
		})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Fatalf("expected invalid credentials error, got %v", err)
		}
	})
}

var _ adapter.UserRepository = (*fakeUserRepository)(nil)
var _ adapter.PasswordService = (*fakePasswordService)(nil)
var _ adapter.TokenService = (*fakeTokenService)(nil)
