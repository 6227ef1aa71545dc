package mappers

import (
	"saigonbistro/internal/domain/order"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/infrastructure/persistence/models"
	"saigonbistro/internal/shared/authorization"
)

func UserToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.DisplayName,
		model.Phone,
		authorization.ParseUserRole(model.Role),
		convertMillisToTime(model.CreatedAt),
	)
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	return order.ReconstructOrder(
		model.ID,
		model.CustomerID,
		model.Status,
		model.TotalCents,
		convertMillisToTime(model.CreatedAt),
	)
}
