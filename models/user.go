package models

import (
	"fmt"
	"time"
)

// Role is the sole authorization discriminant of a [User].
type Role string

const (
	// RoleClient is assigned to every user on first authentication.
	RoleClient Role = "client"

	// RoleAdmin grants unconditional access to every case.
	RoleAdmin Role = "admin"
)

// ParseRole converts a stored role label into a [Role].
// Unknown labels are rejected so that a corrupted row never widens access.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient:
		return RoleClient, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsAdmin reports whether the role is [RoleAdmin].
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// String returns the stored label of the role.
func (r Role) String() string {
	return string(r)
}

// User is an authenticated identity of the portal.
//
// Users are created on the first successful authentication (upsert by the
// external identity id) and are never deleted.
type User struct {
	// ID is the internal identifier referenced by cases, notes and evidence.
	ID string `json:"id"`

	// ExternalID is the subject assigned by the identity provider.
	// It is the upsert key and is never exposed via JSON.
	ExternalID string `json:"-"`

	// Email is the address reported by the identity provider.
	Email string `json:"email"`

	// Role decides whether the user may act on cases they do not own.
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
// A nil user is an anonymous actor and is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
