package usecases

import (
	"context"
	"time"

	"saigonbistro/internal/domain/order"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type ListOrdersQuery struct {
	CustomerID uint
}

type OrderDTO struct {
	ID         uint      `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListOrdersResult struct {
	Orders []OrderDTO `json:"orders"`
	Total  int        `json:"total"`
}

// ListOrdersUseCase returns a customer's own orders, used by the ticket form
// to offer order linkage.
type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(
	orderRepo order.Repository,
	logger logger.Interface,
) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	if query.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	orders, err := uc.orderRepo.ListByCustomer(ctx, query.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "customer_id", query.CustomerID, "error", err)
		return nil, err
	}

	items := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		items = append(items, OrderDTO{
			ID:         o.ID(),
			Status:     o.Status(),
			TotalCents: o.TotalCents(),
			CreatedAt:  o.CreatedAt(),
		})
	}

	return &ListOrdersResult{
		Orders: items,
		Total:  len(items),
	}, nil
}
