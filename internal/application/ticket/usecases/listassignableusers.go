package usecases

import (
	"context"

	"saigonbistro/internal/application/ticket/dto"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type ListAssignableUsersQuery struct {
	ActorRole authorization.UserRole
}

type ListAssignableUsersResult struct {
	Users []dto.AssignableUserDTO `json:"users"`
	Total int                     `json:"total"`
}

type ListAssignableUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListAssignableUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListAssignableUsersUseCase {
	return &ListAssignableUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListAssignableUsersUseCase) Execute(ctx context.Context, query ListAssignableUsersQuery) (*ListAssignableUsersResult, error) {
	if !query.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("admin role required")
	}

	users, err := uc.userRepo.ListByRoles(ctx, authorization.RoleStaff, authorization.RoleAdmin)
	if err != nil {
		uc.logger.Errorw("failed to list assignable users", "error", err)
		return nil, err
	}

	items := make([]dto.AssignableUserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ToAssignableUserDTO(u))
	}

	return &ListAssignableUsersResult{
		Users: items,
		Total: len(items),
	}, nil
}
