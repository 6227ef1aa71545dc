package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"saigonbistro/internal/domain/ticket"
	"saigonbistro/internal/infrastructure/persistence/mappers"
	"saigonbistro/internal/infrastructure/persistence/models"
	"saigonbistro/internal/shared/db"
	apperrors "saigonbistro/internal/shared/errors"
)

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save inserts the feedback row. The unique index on ticket_id makes a second
// submission fail; that failure is surfaced as a conflict rather than an
// overwrite.
func (r *FeedbackRepository) Save(ctx context.Context, feedback *ticket.Feedback) error {
	model := r.mapper.FeedbackToModel(feedback)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("feedback already exists for this ticket")
		}
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return feedback.SetID(model.ID)
}

func (r *FeedbackRepository) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Feedback, error) {
	var model models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("feedback not found")
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}

	return r.mapper.FeedbackToDomain(&model)
}
