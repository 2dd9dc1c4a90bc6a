// Package domain contains entity without logic, just meta-data
package domain

import "errors"

const MaxUserIDLen = 64

var (
	ErrUserIDEmpty   = errors.New("user id empty")
	ErrUserIDTooLong = errors.New("user id too long")
	ErrRoleInvalid   = errors.New("user role invalid")
)

type UserID string

// Role is the participant side of a conversation.
type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
)

// ParseRole rejects anything outside the two supported roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleLawyer:
		return Role(s), nil
	}
	return "", ErrRoleInvalid
}

// User is the identity a connection declares on authenticate.
type User struct {
	ID   UserID `json:"id"`
	Name string `json:"name,omitempty"`
	Role Role   `json:"role"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(id string, role Role) (*User, error) {
	if len(id) == 0 {
		return nil, ErrUserIDEmpty
	}
	if len(id) > MaxUserIDLen {
		return nil, ErrUserIDTooLong
	}
	return &User{ID: UserID(id), Role: role}, nil
}
