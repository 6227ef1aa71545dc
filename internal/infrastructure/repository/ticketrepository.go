package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/infrastructure/persistence/mappers"
	"saigonbistro/internal/infrastructure/persistence/models"
	"saigonbistro/internal/shared/db"
	apperrors "saigonbistro/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"status":   t.Status().String(),
			"owner_id": t.OwnerID(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByIDForCustomer(ctx context.Context, ticketID, customerID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	// scoped lookup: a ticket of another customer is indistinguishable from a
	// missing one
	if err := tx.
		Where("id = ? AND customer_id = ?", ticketID, customerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(ticketModels)
}

func (r *TicketRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(ticketModels)
}

// Claim applies the claim as a single conditional UPDATE so two racing staff
// members can never both win: the loser's WHERE clause no longer matches and
// the update affects zero rows.
func (r *TicketRepository) Claim(ctx context.Context, ticketID, ownerID uint, status vo.TicketStatus, mode ticket.ClaimMode) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", ticketID)

	switch mode {
	case ticket.ClaimIfUnowned:
		query = query.Where("owner_id IS NULL")
	case ticket.ClaimIfReopened:
		query = query.Where("status = ?", vo.StatusReopened.String())
	}

	result := query.Updates(map[string]interface{}{
		"owner_id": ownerID,
		"status":   status.String(),
	})
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.
			Model(&models.TicketModel{}).
			Where("id = ?", ticketID).
			Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check ticket existence: %w", err)
		}
		if count == 0 {
			return false, apperrors.NewNotFoundError("ticket not found")
		}
		return false, nil
	}

	return true, nil
}

func (r *TicketRepository) SetOwner(ctx context.Context, ticketID uint, ownerID *uint, status *vo.TicketStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"owner_id": ownerID,
	}
	if status != nil {
		updates["status"] = status.String()
	}

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to set ticket owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

// ReopenIfResolved fires only while the ticket is still Resolved, so repeated
// customer replies reopen at most once.
func (r *TicketRepository) ReopenIfResolved(ctx context.Context, ticketID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND status = ?", ticketID, vo.StatusResolved.String()).
		Updates(map[string]interface{}{
			"owner_id": nil,
			"status":   vo.StatusReopened.String(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to reopen ticket: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *TicketRepository) toDomainList(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}
