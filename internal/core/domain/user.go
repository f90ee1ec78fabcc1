package domain

import "time"

// Role is the access level assigned to a user at registration.
// Roles are immutable after creation.
type Role string

const (
	RoleUser    Role = "user"
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleCourier, RoleAdmin:
		return true
	}
	return false
}

// User models a registered actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a request after token
// verification. It is derived from a User at login time and reconstructed
// from the token claims on every request; it is never persisted.
type Principal struct {
	UserID   string
	Username string
	Role     Role
}
