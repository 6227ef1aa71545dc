package user

import (
	"context"

	"saigonbistro/internal/shared/authorization"
)

type Repository interface {
	GetByID(ctx context.Context, userID uint) (*User, error)

	// ListByRoles returns users holding any of the given roles, used for
	// the admin assignable-users listing.
	ListByRoles(ctx context.Context, roles ...authorization.UserRole) ([]*User, error)
}
