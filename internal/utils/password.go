package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

const (
	// PasswordCost is the bcrypt cost factor used for stored credentials.
	PasswordCost = 10
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or PasswordCost when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = PasswordCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. A mismatch is (false, nil);
// an error means the hash itself could not be checked.
func (h *BcryptHasher) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
