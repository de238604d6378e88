package usecases

import (
	"context"

	"helioscale/internal/shared/authorization"
)

// PasswordHasher abstracts the hashing backend used for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues and validates the signed access tokens carried by
// API clients.
type TokenIssuer interface {
	Generate(accountID uint, email string, flags authorization.RoleFlags) (string, error)
	ExpiresIn() int64
}

// WelcomeMailer sends the signup greeting. Failures are logged and
// never fail the signup itself.
type WelcomeMailer interface {
	SendWelcomeEmail(to, name string) error
}

// RoleCacheInvalidator drops cached role flags after a role change so
// the next gated request re-reads the account record.
type RoleCacheInvalidator interface {
	Invalidate(ctx context.Context, accountID uint) error
}
