// Package user holds the minimal identity projection the ticket engine
// needs: a stable ID, contact fields for customer snapshots, and a role.
package user

import (
	"fmt"
	"time"

	"saigonbistro/internal/shared/authorization"
)

type User struct {
	id          uint
	email       string
	displayName string
	phone       string
	role        authorization.UserRole
	createdAt   time.Time
}

func ReconstructUser(
	id uint,
	email string,
	displayName string,
	phone string,
	role authorization.UserRole,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		phone:       phone,
		role:        role,
		createdAt:   createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// CanOwnTickets reports whether tickets may be assigned to this user.
func (u *User) CanOwnTickets() bool {
	return u.role.IsStaffOrAdmin()
}
