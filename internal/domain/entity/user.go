// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account in the Money Keeper system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(email, name, phone, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
