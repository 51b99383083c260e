// Package repository persists users through GORM.
package repository

import (
	"context"
	"errors"

	"mindspace/internal/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is MySQL error 1062, duplicate entry for a unique key.
const mysqlDuplicateEntry = 1062

// Users is the persistence contract shared by the GORM repository and its
// caching decorator.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

// UserRepository stores users in the users table.
type UserRepository struct {
	db *gorm.DB
}

var _ Users = (*UserRepository)(nil)

// NewUserRepository returns a repository over db. db owns the connection pool.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user with email, or domain.ErrUserNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts u and sets its ID. A unique-key violation on email returns
// domain.ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
