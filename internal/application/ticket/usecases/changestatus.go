package usecases

import (
	"context"
	"fmt"
	"time"

	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
	Status    string
}

type ChangeStatusResult struct {
	TicketID  uint      `json:"id"`
	Number    string    `json:"ticket_number"`
	Status    string    `json:"status"`
	OwnerID   *uint     `json:"owner_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.ActorID,
		"status", cmd.Status)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.ActorRole.IsStaffOrAdmin() {
		return nil, errors.NewForbiddenError(fmt.Sprintf("role %s cannot update ticket status", cmd.ActorRole))
	}

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		uc.logger.Warnw("invalid status value", "status", cmd.Status)
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := ticket.CanActOn(cmd.ActorID, cmd.ActorRole, t); err != nil {
		uc.logger.Warnw("status change denied",
			"ticket_id", cmd.TicketID,
			"actor_id", cmd.ActorID,
			"error", err)
		return nil, errors.NewForbiddenError(err.Error())
	}

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist status change", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Status:    t.Status().String(),
		OwnerID:   t.OwnerID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
