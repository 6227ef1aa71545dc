package usecases

import (
	"context"

	"saigonbistro/internal/application/ticket/dto"
	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/biztime"
	"saigonbistro/internal/shared/db"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
	"saigonbistro/internal/shared/services/sanitize"
)

type AddCommentCommand struct {
	TicketID   uint
	ActorID    uint
	ActorRole  authorization.UserRole
	ActorEmail string
	Message    string
}

type AddCommentResult struct {
	Comment dto.CommentDTO `json:"comment"`

	// TicketStatus reflects the ticket after the comment, so callers see the
	// auto-reopen applied by a customer reply on a resolved ticket.
	TicketStatus string `json:"ticket_status"`
	Reopened     bool   `json:"reopened"`
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       *db.TransactionManager
	sanitizer   sanitize.Service
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr *db.TransactionManager,
	sanitizer sanitize.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.ActorID,
		"actor_role", cmd.ActorRole)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	if cmd.ActorRole.IsStaffOrAdmin() {
		return uc.addSupportComment(ctx, cmd)
	}
	return uc.addCustomerComment(ctx, cmd)
}

func (uc *AddCommentUseCase) addSupportComment(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := ticket.CanActOn(cmd.ActorID, cmd.ActorRole, t); err != nil {
		uc.logger.Warnw("support comment denied",
			"ticket_id", cmd.TicketID,
			"actor_id", cmd.ActorID,
			"error", err)
		return nil, errors.NewForbiddenError(err.Error())
	}

	comment, err := uc.saveComment(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return &AddCommentResult{
		Comment:      dto.ToCommentDTO(comment),
		TicketStatus: t.Status().String(),
	}, nil
}

func (uc *AddCommentUseCase) addCustomerComment(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	t, err := uc.ticketRepo.GetByIDForCustomer(ctx, cmd.TicketID, cmd.ActorID)
	if err != nil {
		uc.logger.Warnw("failed to load customer ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// the reply window is enforced here, on the write, regardless of what a
	// stale detail read showed the customer
	comments, err := uc.commentRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load conversation for reply-window check",
			"ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewDependencyError("unable to verify reply window, please try again")
	}

	window := ticket.ComputeReplyWindow(comments)
	if !window.OpenAt(biztime.NowUTC()) {
		uc.logger.Warnw("customer reply rejected, window closed",
			"ticket_id", cmd.TicketID,
			"deadline", window.Deadline)
		return nil, errors.NewForbiddenError("the reply window for this ticket has closed, please open a new ticket")
	}

	// the comment save and the auto-reopen commit together; if either fails
	// the whole reply is rolled back
	var (
		comment  *ticket.Comment
		reopened bool
	)
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		comment, err = uc.saveComment(txCtx, cmd)
		if err != nil {
			return err
		}

		if err := t.AddComment(comment); err != nil {
			return errors.NewValidationError(err.Error())
		}

		// a customer reply on a resolved ticket puts it back in the shared queue
		reopened, err = uc.ticketRepo.ReopenIfResolved(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to apply auto-reopen", "ticket_id", cmd.TicketID, "error", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	status := t.Status()
	if reopened {
		uc.logger.Infow("ticket reopened by customer reply", "ticket_id", cmd.TicketID)
		t.ReopenFromCustomerReply()
		status = t.Status()
	}

	return &AddCommentResult{
		Comment:      dto.ToCommentDTO(comment),
		TicketStatus: status.String(),
		Reopened:     reopened,
	}, nil
}

func (uc *AddCommentUseCase) saveComment(ctx context.Context, cmd AddCommentCommand) (*ticket.Comment, error) {
	actorID := cmd.ActorID
	comment, err := ticket.NewComment(
		cmd.TicketID,
		&actorID,
		cmd.ActorRole,
		cmd.ActorEmail,
		uc.sanitizer.Clean(cmd.Message),
	)
	if err != nil {
		uc.logger.Warnw("invalid comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return comment, nil
}
