package ticket

import (
	"fmt"
	"strings"
	"time"

	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/biztime"
)

const maxMessageLength = 5000

// Comment is an append-only entry on a ticket's conversation. Comments are
// never edited or deleted. The author ID is nullable: staff-side entries may
// record only the role and email of whoever replied.
type Comment struct {
	id          uint
	ticketID    uint
	authorID    *uint
	authorRole  authorization.UserRole
	authorEmail string
	message     string
	createdAt   time.Time
}

func NewComment(
	ticketID uint,
	authorID *uint,
	authorRole authorization.UserRole,
	authorEmail string,
	message string,
) (*Comment, error) {
	message = strings.TrimSpace(message)

	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}
	if authorID != nil && *authorID == 0 {
		return nil, fmt.Errorf("author ID cannot be zero")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message cannot be empty")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	return &Comment{
		ticketID:    ticketID,
		authorID:    authorID,
		authorRole:  authorRole,
		authorEmail: authorEmail,
		message:     message,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID *uint,
	authorRole authorization.UserRole,
	authorEmail string,
	message string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", authorRole)
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		authorID:    authorID,
		authorRole:  authorRole,
		authorEmail: authorEmail,
		message:     message,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() *uint {
	return c.authorID
}

func (c *Comment) AuthorRole() authorization.UserRole {
	return c.authorRole
}

func (c *Comment) AuthorEmail() string {
	return c.authorEmail
}

func (c *Comment) Message() string {
	return c.message
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// IsFromSupport reports whether the comment was authored by staff or admin.
// Only support-side comments start or extend the customer reply window.
func (c *Comment) IsFromSupport() bool {
	return c.authorRole.IsStaffOrAdmin()
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
