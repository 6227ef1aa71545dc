package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"saigonbistro/internal/domain/order"
	"saigonbistro/internal/infrastructure/persistence/mappers"
	"saigonbistro/internal/infrastructure/persistence/models"
	"saigonbistro/internal/shared/db"
	apperrors "saigonbistro/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByIDForCustomer(ctx context.Context, orderID, customerID uint) (*order.Order, error) {
	var model models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	var orderModels []models.OrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, len(orderModels))
	for i, model := range orderModels {
		o, err := mappers.OrderToDomain(&model)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}

	return orders, nil
}
