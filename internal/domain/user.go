package domain

// User Model
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`                            // Primary key, assigned by the store
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`      // Unique login identifier
	Username     string `gorm:"size:255;not null" json:"username"`               // Display name, not unique
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"` // bcrypt hash, never serialized
}

// TableName pins the table name so the schema matches existing deployments.
func (User) TableName() string {
	return "users"
}
