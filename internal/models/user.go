package models

import (
	"time"
)

// Role is the closed set of user roles
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is a known one
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role carries admin capability
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a registered account. PasswordHash holds the bcrypt hash
// and is never serialized to API responses.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex;column:username"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex;column:email"`
	PasswordHash string    `gorm:"type:varchar(255);not null;column:password"`
	Role         Role      `gorm:"type:varchar(50);not null;default:user;column:role"`
	CreatedAt    time.Time `gorm:"not null;column:created_at"`
	UpdatedAt    time.Time `gorm:"not null;column:updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
