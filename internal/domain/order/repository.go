package order

import "context"

type Repository interface {
	// GetByIDForCustomer scopes the lookup to the owning customer; orders
	// of other customers are reported as not found.
	GetByIDForCustomer(ctx context.Context, orderID, customerID uint) (*Order, error)

	ListByCustomer(ctx context.Context, customerID uint) ([]*Order, error)
}
