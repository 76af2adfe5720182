// Package models contains data structures for the application's domain models.
package models

import "time"

// Role names stored on a user row. Only RoleUser is assignable today;
// the column exists so future roles do not require a schema change.
const RoleUser = "user"

// User represents a registered account. The password hash is never
// serialized; usernames are immutable once created.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
