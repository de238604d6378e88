package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var errPasswordMismatch = errors.New("password verification failed")

// BcryptPasswordHasher hashes account passwords with bcrypt. The cost
// comes from config so tests can use a cheap one.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify returns the same opaque error for every failure mode so
// callers cannot distinguish a wrong password from a malformed hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return errPasswordMismatch
	}
	return nil
}
