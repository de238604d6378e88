package usecases

import "context"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// AccountMailer covers the lifecycle notifications sent to account
// holders. Sending is best-effort; callers log and continue on error.
type AccountMailer interface {
	SendWelcomeEmail(to, name string) error
	SendAccountVerifiedEmail(to, name string) error
}

type RoleCacheInvalidator interface {
	Invalidate(ctx context.Context, accountID uint) error
}
