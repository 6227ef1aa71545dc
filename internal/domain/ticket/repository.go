package ticket

import (
	"context"

	vo "saigonbistro/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. Claim and reopen writes are conditional
// single-row updates: when the row no longer matches the expected ownership
// state the write affects zero rows and the method reports claimed=false,
// never a silent overwrite.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)

	// GetByIDForCustomer scopes the lookup to the owning customer. A ticket
	// belonging to a different customer is reported as not found, so
	// existence never leaks.
	GetByIDForCustomer(ctx context.Context, ticketID, customerID uint) (*Ticket, error)

	ListAll(ctx context.Context) ([]*Ticket, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Ticket, error)

	// Claim sets owner and status using the conditional write selected by
	// mode. Returns claimed=false when a concurrent claim won the race.
	Claim(ctx context.Context, ticketID, ownerID uint, status vo.TicketStatus, mode ClaimMode) (bool, error)

	// SetOwner is the admin reassignment write: owner may be nil to
	// unassign, and an optional status may be applied in the same update.
	SetOwner(ctx context.Context, ticketID uint, ownerID *uint, status *vo.TicketStatus) error

	// ReopenIfResolved atomically moves a Resolved ticket to Reopened and
	// clears its owner. Returns false when the ticket was not Resolved,
	// which makes repeated customer replies idempotent.
	ReopenIfResolved(ctx context.Context, ticketID uint) (bool, error)
}

// CommentRepository persists the append-only ticket conversation.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

// FeedbackRepository persists one-shot ticket feedback. Save must surface a
// duplicate for the same ticket as a conflict, not an overwrite.
type FeedbackRepository interface {
	Save(ctx context.Context, feedback *Feedback) error
	GetByTicketID(ctx context.Context, ticketID uint) (*Feedback, error)
}

// NumberGenerator issues the human-facing ticket number sequence.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
