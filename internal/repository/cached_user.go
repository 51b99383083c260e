package repository

import (
	"context"
	"strconv"
	"time"

	"mindspace/internal/domain"
	"mindspace/internal/utils"

	"github.com/sirupsen/logrus"
)

const (
	defaultListTTL = 60 * time.Second
	usersGenKey    = "users:gen"
	usersListKey   = "users:all"
)

// CachedUserRepository serves List from Redis. Listings are keyed by a
// generation counter that Create bumps, so a listing computed before a
// registration is never read after it. Cache failures are logged and fall
// through to the inner repository.
//
// List never returns password hashes, whether served from the cache or the
// store. Credential checks go through FindByEmail.
type CachedUserRepository struct {
	inner Users
	cache *utils.Cache
	ttl   time.Duration
}

var _ Users = (*CachedUserRepository)(nil)

// NewCachedUserRepository wraps inner. A nil or disabled cache makes it a pass-through.
func NewCachedUserRepository(inner Users, cache *utils.Cache, ttl time.Duration) *CachedUserRepository {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	return &CachedUserRepository{inner: inner, cache: cache, ttl: ttl}
}

func (r *CachedUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.inner.FindByEmail(ctx, email)
}

func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.inner.Create(ctx, u); err != nil {
		return err
	}
	if err := r.cache.Bump(ctx, usersGenKey); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   r.cache.Key(usersGenKey),
			"error": err.Error(),
		}).Warn("Failed to invalidate users cache")
	}
	return nil
}

func (r *CachedUserRepository) List(ctx context.Context) ([]domain.User, error) {
	// The generation is read before the store so a registration that lands
	// in between moves later readers to a fresh key.
	gen, err := r.cache.Generation(ctx, usersGenKey)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   r.cache.Key(usersGenKey),
			"error": err.Error(),
		}).Warn("Users cache read failed")
		return r.listFromStore(ctx)
	}
	key := usersListKey + ":" + strconv.FormatInt(gen, 10)

	var cached []domain.User
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   r.cache.Key(key),
			"error": err.Error(),
		}).Warn("Users cache read failed")
	}
	if err == nil && found {
		return cached, nil
	}

	users, err := r.listFromStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, users, r.ttl); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   r.cache.Key(key),
			"error": err.Error(),
		}).Warn("Users cache write failed")
	}
	return users, nil
}

// listFromStore reads the inner repository and strips password hashes.
func (r *CachedUserRepository) listFromStore(ctx context.Context) ([]domain.User, error) {
	users, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, len(users))
	for i, u := range users {
		u.PasswordHash = ""
		out[i] = u
	}
	return out, nil
}
