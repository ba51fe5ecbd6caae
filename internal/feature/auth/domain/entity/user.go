// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DefaultRole is assigned when a registration does not specify a role.
const DefaultRole = "customer"

// User represents a registered account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user. It is generated by the
	// store on creation and never changes afterwards.
	ID uint `gorm:"primaryKey"`

	// FullName is the user's display name. It carries no identity
	// semantics.
	FullName string `gorm:"size:255"`

	// Email is the user's email address used for authentication.
	// It is stored lower-cased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:255;not null"`

	// Role is a claim carried for downstream authorization
	// (e.g. "customer", "provider"). This service does not evaluate it.
	Role string `gorm:"size:32;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// PublicUser is the externally visible projection of a User.
// It never includes the password hash.
type PublicUser struct {
	ID       uint
	FullName string
	Email    string
	Role     string
}

// Public returns the projection of the user that is safe to expose to
// callers.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
