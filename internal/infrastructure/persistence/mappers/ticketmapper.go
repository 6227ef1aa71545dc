package mappers

import (
	"time"

	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/infrastructure/persistence/models"
	"saigonbistro/internal/shared/authorization"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	FeedbackToModel(f *ticket.Feedback) *models.FeedbackModel
	FeedbackToDomain(model *models.FeedbackModel) (*ticket.Feedback, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.CustomerID,
		model.CustomerName,
		model.CustomerEmail,
		model.CustomerPhone,
		model.OrderID,
		model.Category,
		model.Subject,
		model.Description,
		model.OwnerID,
		status,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		AuthorID:    c.AuthorID(),
		AuthorRole:  c.AuthorRole().String(),
		AuthorEmail: c.AuthorEmail(),
		Message:     c.Message(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		authorization.ParseUserRole(model.AuthorRole),
		model.AuthorEmail,
		model.Message,
		convertMillisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) FeedbackToModel(f *ticket.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:        f.ID(),
		TicketID:  f.TicketID(),
		Stars:     f.Stars(),
		Comment:   f.Comment(),
		CreatedAt: f.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) FeedbackToDomain(model *models.FeedbackModel) (*ticket.Feedback, error) {
	return ticket.ReconstructFeedback(
		model.ID,
		model.TicketID,
		model.Stars,
		model.Comment,
		convertMillisToTime(model.CreatedAt),
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
