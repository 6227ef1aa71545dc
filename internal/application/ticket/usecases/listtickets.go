package usecases

import (
	"context"

	"saigonbistro/internal/application/ticket/dto"
	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type ListTicketsQuery struct {
	ActorID   uint
	ActorRole authorization.UserRole
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO `json:"tickets"`
	Total   int                     `json:"total"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	var (
		tickets []*ticket.Ticket
		err     error
	)
	if query.ActorRole.IsStaffOrAdmin() {
		tickets, err = uc.ticketRepo.ListAll(ctx)
	} else {
		tickets, err = uc.ticketRepo.ListByCustomer(ctx, query.ActorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets",
			"actor_id", query.ActorID,
			"actor_role", query.ActorRole,
			"error", err)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   len(items),
	}, nil
}
