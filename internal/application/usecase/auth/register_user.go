// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/moneykeeper/backend/internal/application/adapter"
	"github.com/moneykeeper/backend/internal/domain/entity"
	domainerror "github.com/moneykeeper/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Password string
	Phone    string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	emailSender     adapter.EmailSender // optional, nil disables the welcome email
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	emailSender adapter.EmailSender,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		emailSender:     emailSender,
	}
}

// Execute performs the user registration. The display name defaults to the
// local part of the email address.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyRegistered,
			"email already registered",
			domainerror.ErrEmailAlreadyRegistered,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := input.Email
	if at := strings.Index(input.Email, "@"); at > 0 {
		name = input.Email[:at]
	}

	user := entity.NewUser(input.Email, name, input.Phone, passwordHash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.sendWelcomeEmail(user)

	return &RegisterUserOutput{
		User: user,
	}, nil
}

// sendWelcomeEmail delivers the welcome email in the background.
// Registration never fails because of email delivery.
func (uc *RegisterUserUseCase) sendWelcomeEmail(user *entity.User) {
	if uc.emailSender == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      user.Email,
			Subject: "Welcome to Money Keeper",
			HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Your Money Keeper account is ready. Start tracking your spending today.</p>", user.Name),
			Text:    fmt.Sprintf("Hi %s, your Money Keeper account is ready.", user.Name),
		})
		if err != nil {
			slog.Warn("Failed to send welcome email", "email", user.Email, "error", err)
		}
	}()
}
