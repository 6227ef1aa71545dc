package usecases

import (
	"context"
	"time"

	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type ReassignTicketCommand struct {
	TicketID  uint
	ActorRole authorization.UserRole

	// OwnerID nil means unassign: the ticket goes back to the shared queue.
	OwnerID *uint

	// Status optionally changes the status in the same update.
	Status *string
}

type ReassignTicketResult struct {
	TicketID     uint      `json:"id"`
	Number       string    `json:"ticket_number"`
	OwnerID      *uint     `json:"owner_id"`
	AssigneeName string    `json:"assignee_name,omitempty"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReassignTicketUseCase is the admin override: it sets or clears ownership
// directly, outside the first-writer claim discipline.
type ReassignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewReassignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ReassignTicketUseCase {
	return &ReassignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ReassignTicketUseCase) Execute(ctx context.Context, cmd ReassignTicketCommand) (*ReassignTicketResult, error) {
	uc.logger.Infow("executing reassign ticket use case",
		"ticket_id", cmd.TicketID,
		"owner_id", cmd.OwnerID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("admin role required")
	}
	if cmd.OwnerID != nil && *cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID cannot be zero")
	}

	var status *vo.TicketStatus
	if cmd.Status != nil {
		parsed, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		status = &parsed
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	var assigneeName string
	if cmd.OwnerID != nil {
		target, err := uc.userRepo.GetByID(ctx, *cmd.OwnerID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("assignee does not exist")
			}
			uc.logger.Errorw("failed to load assignee", "owner_id", *cmd.OwnerID, "error", err)
			return nil, err
		}
		if err := ticket.ValidateReassignTarget(target.Role()); err != nil {
			uc.logger.Warnw("reassignment target rejected",
				"owner_id", *cmd.OwnerID,
				"role", target.Role())
			return nil, errors.NewValidationError(err.Error())
		}
		assigneeName = target.DisplayName()
	}

	if err := uc.ticketRepo.SetOwner(ctx, cmd.TicketID, cmd.OwnerID, status); err != nil {
		uc.logger.Errorw("failed to reassign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// mirror the persisted change on the aggregate to build the result
	if cmd.OwnerID != nil {
		newStatus := t.Status()
		if status != nil {
			newStatus = *status
		}
		if err := t.AssignTo(*cmd.OwnerID, newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else {
		t.ClearOwner()
		if status != nil {
			if err := t.ChangeStatus(*status); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	uc.logger.Infow("ticket reassigned",
		"ticket_id", cmd.TicketID,
		"owner_id", cmd.OwnerID,
		"status", t.Status())

	return &ReassignTicketResult{
		TicketID:     t.ID(),
		Number:       t.Number(),
		OwnerID:      t.OwnerID(),
		AssigneeName: assigneeName,
		Status:       t.Status().String(),
		UpdatedAt:    t.UpdatedAt(),
	}, nil
}
