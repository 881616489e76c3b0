package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	Customer UserRole = "customer"
	Owner    UserRole = "owner"
	Admin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == Customer || r == Owner || r == Admin
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Identity is what the storefront exposes as the current user.
type Identity struct {
	ID          int64    `json:"id"`
	Role        UserRole `json:"role"`
	DisplayName string   `json:"display_name"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role, DisplayName: u.DisplayName()}
}

// Session is created at login and deleted at logout. Token is the
// dealership API access token used for every call made on the user's behalf.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// IsCustomer reports whether the session may favorite cars and book test drives.
func (s *Session) IsCustomer() bool {
	return s != nil && s.User.Role == Customer
}

// HasRole reports whether the session user holds one of roles.
func (s *Session) HasRole(roles ...UserRole) bool {
	if s == nil {
		return false
	}
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}

// TokenPayload is the verified content of a storefront session token.
type TokenPayload struct {
	ID     uuid.UUID
	UserID int64
	Role   UserRole
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=3"`
	FullName string `json:"full_name" validate:"required,max=100"`
}
