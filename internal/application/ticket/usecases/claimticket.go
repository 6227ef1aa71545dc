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

type ClaimTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole

	// Status optionally overrides the default claim status of In Progress.
	Status *string
}

type ClaimTicketResult struct {
	TicketID  uint      `json:"id"`
	Number    string    `json:"ticket_number"`
	OwnerID   uint      `json:"owner_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClaimTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewClaimTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error) {
	uc.logger.Infow("executing claim ticket use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.ActorID,
		"actor_role", cmd.ActorRole)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid claim ticket command", "error", err)
		return nil, err
	}

	claimStatus := vo.StatusInProgress
	if cmd.Status != nil {
		parsed, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		claimStatus = parsed
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	mode, err := ticket.DecideClaim(cmd.ActorID, cmd.ActorRole, t)
	if err != nil {
		uc.logger.Warnw("claim denied",
			"ticket_id", cmd.TicketID,
			"actor_id", cmd.ActorID,
			"error", err)
		return nil, errors.NewForbiddenError(err.Error())
	}

	claimed, err := uc.ticketRepo.Claim(ctx, cmd.TicketID, cmd.ActorID, claimStatus, mode)
	if err != nil {
		uc.logger.Errorw("failed to apply claim", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if !claimed {
		// another claim won between our read and the conditional write
		uc.logger.Warnw("lost claim race", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
		return nil, errors.NewConflictError("ticket state changed, please retry")
	}

	updated, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to reload ticket after claim", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket claimed",
		"ticket_id", cmd.TicketID,
		"owner_id", cmd.ActorID,
		"status", updated.Status())

	return &ClaimTicketResult{
		TicketID:  updated.ID(),
		Number:    updated.Number(),
		OwnerID:   cmd.ActorID,
		Status:    updated.Status().String(),
		UpdatedAt: updated.UpdatedAt(),
	}, nil
}

func (uc *ClaimTicketUseCase) validateCommand(cmd ClaimTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if !cmd.ActorRole.IsStaffOrAdmin() {
		return errors.NewForbiddenError(fmt.Sprintf("role %s cannot claim tickets", cmd.ActorRole))
	}
	return nil
}
