package db

import (
	"fmt"

	"mindspace/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates the users table and its unique email index when missing.
// Existing tables are left as they are; there is no versioning.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
