package ticket

import (
	"fmt"
	"strings"
	"time"

	"saigonbistro/internal/shared/biztime"
)

const (
	MinStars = 1
	MaxStars = 5

	maxFeedbackCommentLength = 1000
)

// Feedback is a one-shot rating a customer leaves on a resolved ticket.
// At most one feedback row exists per ticket and it is immutable.
type Feedback struct {
	id        uint
	ticketID  uint
	stars     int
	comment   string
	createdAt time.Time
}

func NewFeedback(ticketID uint, stars int, comment string) (*Feedback, error) {
	comment = strings.TrimSpace(comment)

	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if stars < MinStars || stars > MaxStars {
		return nil, fmt.Errorf("stars must be between %d and %d", MinStars, MaxStars)
	}
	if len(comment) > maxFeedbackCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxFeedbackCommentLength)
	}

	return &Feedback{
		ticketID:  ticketID,
		stars:     stars,
		comment:   comment,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructFeedback(
	id uint,
	ticketID uint,
	stars int,
	comment string,
	createdAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Feedback{
		id:        id,
		ticketID:  ticketID,
		stars:     stars,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

func (f *Feedback) ID() uint {
	return f.id
}

func (f *Feedback) TicketID() uint {
	return f.ticketID
}

func (f *Feedback) Stars() int {
	return f.stars
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}
