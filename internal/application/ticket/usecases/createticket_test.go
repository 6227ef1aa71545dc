package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saigonbistro/internal/domain/order"
	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/errors"
)

func newCreateTicketUseCase(
	ticketRepo *mockTicketRepository,
	orderRepo *mockOrderRepository,
	userRepo *mockUserRepository,
	numberGen *mockNumberGenerator,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		ticketRepo,
		orderRepo,
		userRepo,
		numberGen,
		&mockSanitizer{},
		&mockLogger{},
	)
}

func TestCreateTicketUseCase_Execute(t *testing.T) {
	customer := buildUser(t, 10, "customer")

	t.Run("creates ticket with customer snapshot", func(t *testing.T) {
		var saved *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(1)
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return customer, nil
			},
		}

		uc := newCreateTicketUseCase(ticketRepo, &mockOrderRepository{}, userRepo, &mockNumberGenerator{})
		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			CustomerID:  10,
			Category:    "billing",
			Subject:     "Wrong charge",
			Description: "I was charged twice.",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.TicketID)
		assert.Equal(t, "T-20260101-0001", result.Number)
		assert.Equal(t, "New", result.Status)
		assert.Nil(t, result.OwnerID)

		require.NotNil(t, saved)
		assert.Equal(t, "Test Person", saved.CustomerName())
		assert.Equal(t, "person@example.com", saved.CustomerEmail())
	})

	t.Run("accepts order linkage owned by the customer", func(t *testing.T) {
		orderRepo := &mockOrderRepository{
			GetByIDForCustomerFunc: func(ctx context.Context, orderID, customerID uint) (*order.Order, error) {
				require.Equal(t, uint(55), orderID)
				require.Equal(t, uint(10), customerID)
				return order.ReconstructOrder(55, 10, "delivered", 2500, customer.CreatedAt())
			},
		}
		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(2)
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return customer, nil
			},
		}

		uc := newCreateTicketUseCase(ticketRepo, orderRepo, userRepo, &mockNumberGenerator{})
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			CustomerID:  10,
			Category:    "delivery",
			Subject:     "Late delivery",
			Description: "Order arrived cold.",
			OrderID:     uintPtr(55),
		})

		require.NoError(t, err)
	})

	t.Run("rejects order linkage of another customer", func(t *testing.T) {
		orderRepo := &mockOrderRepository{
			GetByIDForCustomerFunc: func(ctx context.Context, orderID, customerID uint) (*order.Order, error) {
				return nil, errors.NewNotFoundError("order not found")
			},
		}

		uc := newCreateTicketUseCase(&mockTicketRepository{}, orderRepo, &mockUserRepository{}, &mockNumberGenerator{})
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			CustomerID:  10,
			Category:    "delivery",
			Subject:     "Late delivery",
			Description: "Order arrived cold.",
			OrderID:     uintPtr(99),
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "order does not exist or does not belong to you")
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return customer, nil
			},
		}

		uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockOrderRepository{}, userRepo, &mockNumberGenerator{})
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			CustomerID:  10,
			Category:    "billing",
			Subject:     "   ",
			Description: "Charged twice.",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("reports number generator failure as dependency error", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return customer, nil
			},
		}
		numberGen := &mockNumberGenerator{
			GenerateFunc: func(ctx context.Context) (string, error) {
				return "", errors.NewDependencyError("sequence unavailable")
			},
		}

		uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockOrderRepository{}, userRepo, numberGen)
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			CustomerID:  10,
			Category:    "billing",
			Subject:     "Wrong charge",
			Description: "Charged twice.",
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeDependency, appErr.Type)
	})
}
