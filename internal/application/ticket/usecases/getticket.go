package usecases

import (
	"context"

	"saigonbistro/internal/application/ticket/dto"
	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/biztime"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	feedbackRepo ticket.FeedbackRepository
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	feedbackRepo ticket.FeedbackRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		commentRepo:  commentRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var (
		t   *ticket.Ticket
		err error
	)
	if query.ActorRole.IsStaffOrAdmin() {
		t, err = uc.ticketRepo.GetByID(ctx, query.TicketID)
	} else {
		// customer lookups are scoped; someone else's ticket is not found
		t, err = uc.ticketRepo.GetByIDForCustomer(ctx, query.TicketID, query.ActorID)
	}
	if err != nil {
		uc.logger.Warnw("failed to load ticket",
			"ticket_id", query.TicketID,
			"actor_id", query.ActorID,
			"error", err)
		return nil, err
	}

	detail := &dto.TicketDetailDTO{
		Ticket:    dto.ToTicketDTO(t),
		Comments:  []dto.CommentDTO{},
		ReplyOpen: true,
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		// the ticket itself is still useful; flag the missing conversation
		// instead of failing the whole read
		uc.logger.Errorw("failed to load ticket conversation",
			"ticket_id", query.TicketID, "error", err)
		detail.CommentsUnavailable = true
		detail.ReplyOpen = false
	} else {
		for _, c := range comments {
			detail.Comments = append(detail.Comments, dto.ToCommentDTO(c))
		}

		window := ticket.ComputeReplyWindow(comments)
		detail.ReplyOpen = window.OpenAt(biztime.NowUTC())
		detail.ReplyDeadline = window.Deadline
		detail.LastSupportReplyAt = window.LastSupportReplyAt
	}

	feedback, err := uc.feedbackRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to load ticket feedback",
			"ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	detail.Feedback = dto.ToFeedbackDTO(feedback)

	return detail, nil
}
