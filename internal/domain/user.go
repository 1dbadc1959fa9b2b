package domain

import (
	"time"
)

// Role represents a user role
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a user account
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"` // Never serialize password
	Role              Role       `json:"role"`
	IsAdmin           bool       `json:"is_admin"`
	IsActive          bool       `json:"is_active"`
	PasswordChangedAt *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ChangedPasswordAfter reports whether the password was changed after the
// given token issue time. Tokens issued before a password change are stale.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	// Truncate to seconds: JWT iat has second precision, the DB column does not.
	return u.PasswordChangedAt.Truncate(time.Second).After(issuedAt.Truncate(time.Second))
}

// TokenClaims represents the verified contents of a session token
type TokenClaims struct {
	UserID   string
	IssuedAt time.Time
}
