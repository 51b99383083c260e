// Package service implements registration, login and listing of user accounts.
package service

import (
	"context"
	"errors"

	"mindspace/internal/domain"
)

// UserRepository is the store the account service reads and writes.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

// PasswordHasher turns plaintext into stored hashes and verifies them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// AccountService holds no state beyond its injected dependencies and is safe
// for concurrent use.
type AccountService struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewAccountService returns an AccountService over users and hasher.
func NewAccountService(users UserRepository, hasher PasswordHasher) *AccountService {
	return &AccountService{users: users, hasher: hasher}
}

// Register creates a user unless one with the same email exists.
// Errors are *domain.Error of kind DuplicateUser, HashingFailure or StoreUnavailable.
func (s *AccountService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	const op = "account.Register"

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.E(op, domain.KindDuplicateUser, nil)
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, domain.E(op, domain.KindStoreUnavailable, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, domain.E(op, domain.KindHashingFailure, err)
	}

	u := &domain.User{Email: email, Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, domain.E(op, domain.KindDuplicateUser, err)
		}
		return nil, domain.E(op, domain.KindStoreUnavailable, err)
	}
	return u, nil
}

// Login returns the user whose email and password match. Unknown email and
// wrong password both yield KindInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	const op = "account.Login"

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.E(op, domain.KindInvalidCredentials, nil)
		}
		return nil, domain.E(op, domain.KindStoreUnavailable, err)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, password)
	if err != nil {
		return nil, domain.E(op, domain.KindHashingFailure, err)
	}
	if !ok {
		return nil, domain.E(op, domain.KindInvalidCredentials, nil)
	}
	return u, nil
}

// ListUsers returns every registered user.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, domain.E("account.ListUsers", domain.KindStoreUnavailable, err)
	}
	return users, nil
}
