package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/infrastructure/persistence/mappers"
	"saigonbistro/internal/infrastructure/persistence/models"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/db"
	apperrors "saigonbistro/internal/shared/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return mappers.UserToDomain(&model)
}

func (r *UserRepository) ListByRoles(ctx context.Context, roles ...authorization.UserRole) ([]*user.User, error) {
	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = role.String()
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role IN ?", roleStrings).
		Order("display_name ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := mappers.UserToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return users, nil
}
