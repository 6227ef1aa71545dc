// Package order is a read-side projection of the ordering subsystem, just
// enough to validate order linkage on tickets and list a customer's orders.
// Menu, cart math and checkout live outside this service.
package order

import (
	"fmt"
	"time"
)

type Order struct {
	id         uint
	customerID uint
	status     string
	totalCents int64
	createdAt  time.Time
}

func ReconstructOrder(
	id uint,
	customerID uint,
	status string,
	totalCents int64,
	createdAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Order{
		id:         id,
		customerID: customerID,
		status:     status,
		totalCents: totalCents,
		createdAt:  createdAt,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) CustomerID() uint {
	return o.customerID
}

func (o *Order) Status() string {
	return o.status
}

func (o *Order) TotalCents() int64 {
	return o.totalCents
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// BelongsTo reports whether the order is owned by the given customer.
func (o *Order) BelongsTo(customerID uint) bool {
	return o.customerID == customerID
}
