package usecases

import (
	"context"
	"time"

	"saigonbistro/internal/domain/order"
	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
	"saigonbistro/internal/shared/services/sanitize"
)

type CreateTicketCommand struct {
	CustomerID  uint
	Category    string
	Subject     string
	Description string
	OrderID     *uint
}

type CreateTicketResult struct {
	TicketID  uint      `json:"id"`
	Number    string    `json:"ticket_number"`
	Status    string    `json:"status"`
	OwnerID   *uint     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	orderRepo  order.Repository
	userRepo   user.Repository
	numberGen  ticket.NumberGenerator
	sanitizer  sanitize.Service
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	orderRepo order.Repository,
	userRepo user.Repository,
	numberGen ticket.NumberGenerator,
	sanitizer sanitize.Service,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		numberGen:  numberGen,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "customer_id", cmd.CustomerID, "category", cmd.Category)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	// order linkage is optional, but a supplied reference must resolve to
	// an order of the same customer
	if cmd.OrderID != nil {
		if _, err := uc.orderRepo.GetByIDForCustomer(ctx, *cmd.OrderID, cmd.CustomerID); err != nil {
			if errors.IsNotFoundError(err) {
				uc.logger.Warnw("order linkage rejected", "order_id", *cmd.OrderID, "customer_id", cmd.CustomerID)
				return nil, errors.NewValidationError("order does not exist or does not belong to you")
			}
			uc.logger.Errorw("failed to resolve linked order", "order_id", *cmd.OrderID, "error", err)
			return nil, err
		}
	}

	customer, err := uc.userRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to load customer profile", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.CustomerID,
		customer.DisplayName(),
		customer.Email(),
		customer.Phone(),
		uc.sanitizer.Clean(cmd.Category),
		uc.sanitizer.Clean(cmd.Subject),
		uc.sanitizer.Clean(cmd.Description),
		cmd.OrderID,
	)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewDependencyError("failed to generate ticket number")
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "ticket_number", newTicket.Number())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Number:    newTicket.Number(),
		Status:    newTicket.Status().String(),
		OwnerID:   newTicket.OwnerID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
