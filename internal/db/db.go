package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Opener opens a GORM handle for a DSN. Tests substitute their own.
type Opener func(dsn string) (*gorm.DB, error)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Open connects to MySQL. Driver errors are translated so duplicate keys
// surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry keeps calling open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempt, err)
		}
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("DB connect failed, retrying")
		time.Sleep(min(retryInterval, remaining))
	}
}

// PoolConfig bounds the connection pool behind a GORM handle.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ConfigurePool applies p to the pool under db and returns it so the caller
// owns its lifecycle (ping, close).
func ConfigurePool(db *gorm.DB, p PoolConfig) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if p.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	}
	if p.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	}
	if p.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	}
	return sqlDB, nil
}
