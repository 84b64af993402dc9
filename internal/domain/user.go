package domain

import "time"

// UserRole role claim carried in the access token
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// UserAccount represents an authenticated account
type UserAccount struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin returns true if the account carries the admin role
func (u *UserAccount) IsAdmin() bool {
	return u.Role == RoleAdmin
}
