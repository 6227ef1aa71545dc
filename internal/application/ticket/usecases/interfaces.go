package usecases

import (
	"context"

	"saigonbistro/internal/application/ticket/dto"
)

// Executor interfaces decouple the HTTP handlers from the concrete use cases.

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ClaimTicketExecutor interface {
	Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ReassignTicketExecutor interface {
	Execute(ctx context.Context, cmd ReassignTicketCommand) (*ReassignTicketResult, error)
}

type SubmitFeedbackExecutor interface {
	Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*dto.FeedbackDTO, error)
}

type ListAssignableUsersExecutor interface {
	Execute(ctx context.Context, query ListAssignableUsersQuery) (*ListAssignableUsersResult, error)
}
