package usecases

import (
	"context"

	"saigonbistro/internal/application/ticket/dto"
	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
	"saigonbistro/internal/shared/services/sanitize"
)

type SubmitFeedbackCommand struct {
	TicketID   uint
	CustomerID uint
	Stars      int
	Comment    string
}

type SubmitFeedbackUseCase struct {
	ticketRepo   ticket.TicketRepository
	feedbackRepo ticket.FeedbackRepository
	sanitizer    sanitize.Service
	logger       logger.Interface
}

func NewSubmitFeedbackUseCase(
	ticketRepo ticket.TicketRepository,
	feedbackRepo ticket.FeedbackRepository,
	sanitizer sanitize.Service,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		ticketRepo:   ticketRepo,
		feedbackRepo: feedbackRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*dto.FeedbackDTO, error) {
	uc.logger.Infow("executing submit feedback use case",
		"ticket_id", cmd.TicketID,
		"customer_id", cmd.CustomerID,
		"stars", cmd.Stars)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	t, err := uc.ticketRepo.GetByIDForCustomer(ctx, cmd.TicketID, cmd.CustomerID)
	if err != nil {
		uc.logger.Warnw("failed to load customer ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// feedback is only accepted on tickets that are resolved right now; a
	// reopened ticket is no longer eligible until it is resolved again
	if !t.Status().IsResolved() {
		uc.logger.Warnw("feedback rejected, ticket not resolved",
			"ticket_id", cmd.TicketID,
			"status", t.Status())
		return nil, errors.NewValidationError("feedback can only be submitted for resolved tickets")
	}

	feedback, err := ticket.NewFeedback(cmd.TicketID, cmd.Stars, uc.sanitizer.Clean(cmd.Comment))
	if err != nil {
		uc.logger.Warnw("invalid feedback", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feedbackRepo.Save(ctx, feedback); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			uc.logger.Warnw("duplicate feedback rejected", "ticket_id", cmd.TicketID)
			return nil, errors.NewConflictError("feedback has already been submitted for this ticket")
		}
		uc.logger.Errorw("failed to save feedback", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback submitted",
		"ticket_id", cmd.TicketID,
		"feedback_id", feedback.ID(),
		"stars", feedback.Stars())

	return dto.ToFeedbackDTO(feedback), nil
}
