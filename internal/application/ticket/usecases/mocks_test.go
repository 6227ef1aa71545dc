package usecases

import (
	"context"
	"strings"

	"saigonbistro/internal/domain/order"
	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc            func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByIDForCustomerFunc func(ctx context.Context, ticketID, customerID uint) (*ticket.Ticket, error)
	ListAllFunc            func(ctx context.Context) ([]*ticket.Ticket, error)
	ListByCustomerFunc     func(ctx context.Context, customerID uint) ([]*ticket.Ticket, error)
	ClaimFunc              func(ctx context.Context, ticketID, ownerID uint, status vo.TicketStatus, mode ticket.ClaimMode) (bool, error)
	SetOwnerFunc           func(ctx context.Context, ticketID uint, ownerID *uint, status *vo.TicketStatus) error
	ReopenIfResolvedFunc   func(ctx context.Context, ticketID uint) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) GetByIDForCustomer(ctx context.Context, ticketID, customerID uint) (*ticket.Ticket, error) {
	if m.GetByIDForCustomerFunc != nil {
		return m.GetByIDForCustomerFunc(ctx, ticketID, customerID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*ticket.Ticket, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Claim(ctx context.Context, ticketID, ownerID uint, status vo.TicketStatus, mode ticket.ClaimMode) (bool, error) {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, ticketID, ownerID, status, mode)
	}
	return true, nil
}

func (m *mockTicketRepository) SetOwner(ctx context.Context, ticketID uint, ownerID *uint, status *vo.TicketStatus) error {
	if m.SetOwnerFunc != nil {
		return m.SetOwnerFunc(ctx, ticketID, ownerID, status)
	}
	return nil
}

func (m *mockTicketRepository) ReopenIfResolved(ctx context.Context, ticketID uint) (bool, error) {
	if m.ReopenIfResolvedFunc != nil {
		return m.ReopenIfResolvedFunc(ctx, ticketID)
	}
	return false, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockFeedbackRepository struct {
	SaveFunc          func(ctx context.Context, feedback *ticket.Feedback) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) (*ticket.Feedback, error)
}

func (m *mockFeedbackRepository) Save(ctx context.Context, feedback *ticket.Feedback) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, feedback)
	}
	return nil
}

func (m *mockFeedbackRepository) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Feedback, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("feedback not found")
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "T-20260101-0001", nil
}

type mockUserRepository struct {
	GetByIDFunc     func(ctx context.Context, userID uint) (*user.User, error)
	ListByRolesFunc func(ctx context.Context, roles ...authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ListByRoles(ctx context.Context, roles ...authorization.UserRole) ([]*user.User, error) {
	if m.ListByRolesFunc != nil {
		return m.ListByRolesFunc(ctx, roles...)
	}
	return nil, nil
}

type mockOrderRepository struct {
	GetByIDForCustomerFunc func(ctx context.Context, orderID, customerID uint) (*order.Order, error)
	ListByCustomerFunc     func(ctx context.Context, customerID uint) ([]*order.Order, error)
}

func (m *mockOrderRepository) GetByIDForCustomer(ctx context.Context, orderID, customerID uint) (*order.Order, error) {
	if m.GetByIDForCustomerFunc != nil {
		return m.GetByIDForCustomerFunc(ctx, orderID, customerID)
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

type mockSanitizer struct{}

func (m *mockSanitizer) Clean(input string) string {
	return strings.TrimSpace(input)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
