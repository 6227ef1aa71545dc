package dto

import (
	"time"

	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/domain/user"
)

type TicketDTO struct {
	ID            uint      `json:"id"`
	Number        string    `json:"ticket_number"`
	CustomerID    uint      `json:"customer_id"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	OrderID       *uint     `json:"order_id,omitempty"`
	Category      string    `json:"category"`
	Subject       string    `json:"subject"`
	Description   string    `json:"description"`
	OwnerID       *uint     `json:"owner_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TicketListItemDTO struct {
	ID        uint      `json:"id"`
	Number    string    `json:"ticket_number"`
	Category  string    `json:"category"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	OwnerID   *uint     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	AuthorID    *uint     `json:"author_id,omitempty"`
	AuthorRole  string    `json:"author_role"`
	AuthorEmail string    `json:"author_email,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeedbackDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketDetailDTO is the full detail projection: ticket, conversation,
// reply-window fields and feedback. The reply-window fields are advisory
// for the UI; the write path re-checks the window authoritatively.
type TicketDetailDTO struct {
	Ticket   TicketDTO    `json:"ticket"`
	Comments []CommentDTO `json:"comments"`

	// CommentsUnavailable marks the degraded case where the conversation
	// could not be loaded. Distinct from an empty conversation.
	CommentsUnavailable bool `json:"comments_unavailable,omitempty"`

	ReplyOpen          bool       `json:"reply_open"`
	ReplyDeadline      *time.Time `json:"reply_deadline,omitempty"`
	LastSupportReplyAt *time.Time `json:"last_support_reply_at,omitempty"`

	Feedback *FeedbackDTO `json:"feedback,omitempty"`
}

type AssignableUserDTO struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:            t.ID(),
		Number:        t.Number(),
		CustomerID:    t.CustomerID(),
		CustomerName:  t.CustomerName(),
		CustomerEmail: t.CustomerEmail(),
		CustomerPhone: t.CustomerPhone(),
		OrderID:       t.OrderID(),
		Category:      t.Category(),
		Subject:       t.Subject(),
		Description:   t.Description(),
		OwnerID:       t.OwnerID(),
		Status:        t.Status().String(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:        t.ID(),
		Number:    t.Number(),
		Category:  t.Category(),
		Subject:   t.Subject(),
		Status:    t.Status().String(),
		OwnerID:   t.OwnerID(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		AuthorID:    c.AuthorID(),
		AuthorRole:  c.AuthorRole().String(),
		AuthorEmail: c.AuthorEmail(),
		Message:     c.Message(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToFeedbackDTO(f *ticket.Feedback) *FeedbackDTO {
	if f == nil {
		return nil
	}
	return &FeedbackDTO{
		ID:        f.ID(),
		TicketID:  f.TicketID(),
		Stars:     f.Stars(),
		Comment:   f.Comment(),
		CreatedAt: f.CreatedAt(),
	}
}

func ToAssignableUserDTO(u *user.User) AssignableUserDTO {
	return AssignableUserDTO{
		ID:          u.ID(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		Role:        u.Role().String(),
	}
}
