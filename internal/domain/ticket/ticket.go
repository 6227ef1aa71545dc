package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/shared/biztime"
)

const (
	maxSubjectLength     = 200
	maxCategoryLength    = 50
	maxDescriptionLength = 5000
)

// Ticket is the aggregate root of the support-ticket lifecycle. Content
// fields (category, subject, description, order linkage, customer snapshot)
// are immutable after creation; only status and ownership change.
type Ticket struct {
	id            uint
	number        string
	customerID    uint
	customerName  string
	customerEmail string
	customerPhone string
	orderID       *uint
	category      string
	subject       string
	description   string
	ownerID       *uint
	status        vo.TicketStatus
	createdAt     time.Time
	updatedAt     time.Time
	comments      []*Comment
}

func NewTicket(
	customerID uint,
	customerName string,
	customerEmail string,
	customerPhone string,
	category string,
	subject string,
	description string,
	orderID *uint,
) (*Ticket, error) {
	category = strings.TrimSpace(category)
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)

	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if len(category) > maxCategoryLength {
		return nil, fmt.Errorf("category exceeds maximum length of %d characters", maxCategoryLength)
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if orderID != nil && *orderID == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Ticket{
		customerID:    customerID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		orderID:       orderID,
		category:      category,
		subject:       subject,
		description:   description,
		status:        vo.StatusNew,
		createdAt:     now,
		updatedAt:     now,
		comments:      []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	customerID uint,
	customerName string,
	customerEmail string,
	customerPhone string,
	orderID *uint,
	category string,
	subject string,
	description string,
	ownerID *uint,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:            id,
		number:        number,
		customerID:    customerID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		orderID:       orderID,
		category:      category,
		subject:       subject,
		description:   description,
		ownerID:       ownerID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		comments:      []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) CustomerID() uint {
	return t.customerID
}

func (t *Ticket) CustomerName() string {
	return t.customerName
}

func (t *Ticket) CustomerEmail() string {
	return t.customerEmail
}

func (t *Ticket) CustomerPhone() string {
	return t.customerPhone
}

func (t *Ticket) OrderID() *uint {
	return t.orderID
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) OwnerID() *uint {
	return t.ownerID
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the human-facing ticket number. Assigned exactly once,
// at creation, and never reused.
func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// ChangeStatus moves the ticket to any recognized status. There is no
// status-to-status restriction; legality of the actor is checked by the
// claim policy, not here.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AssignTo sets the owner and the claim status in one step.
func (t *Ticket) AssignTo(ownerID uint, status vo.TicketStatus) error {
	if ownerID == 0 {
		return fmt.Errorf("owner ID cannot be zero")
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}

	t.ownerID = &ownerID
	t.status = status
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ClearOwner releases the ticket back to the unassigned pool.
func (t *Ticket) ClearOwner() {
	t.ownerID = nil
	t.updatedAt = biztime.NowUTC()
}

// ReopenFromCustomerReply applies the auto-reopen rule: a customer reply on
// a Resolved ticket moves it to Reopened and clears ownership so it can be
// claimed afresh. Returns true when the transition fired. Replies on tickets
// in any other status, including Reopened, leave the ticket untouched.
func (t *Ticket) ReopenFromCustomerReply() bool {
	if !t.status.IsResolved() {
		return false
	}

	t.status = vo.StatusReopened
	t.ownerID = nil
	t.updatedAt = biztime.NowUTC()
	return true
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = biztime.NowUTC()
	return nil
}
