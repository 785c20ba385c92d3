// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import "github.com/google/uuid"

// TokenService defines the interface for access token generation.
// Token validation middleware is intentionally absent: ledger endpoints are
// keyed by an explicit userId and identity verification is delegated to the
// caller.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
}
