package models

import (
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Username     string    `json:"username" db:"username"`     // Unique username
	FirstName    string    `json:"first_name" db:"first_name"` // First name
	LastName     string    `json:"last_name" db:"last_name"`   // Last name
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	Role         string    `json:"role" db:"role"`             // user or admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// IsAdmin reports whether the user has the admin role.
func (u *UserDB) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserProfile is the public projection of a user as seen by a viewer.
// swagger:model UserProfile
type UserProfile struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	Username     string `json:"username" db:"username"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	IsSubscribed bool   `json:"is_subscribed" db:"is_subscribed"`
}

// NewUser holds the fields needed to register a user.
type NewUser struct {
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
}
