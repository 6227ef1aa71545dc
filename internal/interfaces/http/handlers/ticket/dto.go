package ticket

import (
	"github.com/gin-gonic/gin"

	"saigonbistro/internal/application/ticket/usecases"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/constants"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/utils"
)

type CreateTicketRequest struct {
	Category    string `json:"category" binding:"required" validate:"required,max=50"`
	Subject     string `json:"subject" binding:"required" validate:"required,max=200"`
	Description string `json:"description" binding:"required" validate:"required,max=5000"`
	OrderID     *uint  `json:"order_id"`
}

func (r *CreateTicketRequest) Validate() error {
	return utils.ValidateStruct(r)
}

func (r *CreateTicketRequest) ToCommand(customerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		CustomerID:  customerID,
		Category:    r.Category,
		Subject:     r.Subject,
		Description: r.Description,
		OrderID:     r.OrderID,
	}
}

type AddCommentRequest struct {
	Message string `json:"message" binding:"required"`
}

type ClaimTicketRequest struct {
	Status *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReassignTicketRequest struct {
	OwnerID *uint   `json:"owner_id"`
	Status  *string `json:"status"`
}

type SubmitFeedbackRequest struct {
	Stars   int    `json:"stars" binding:"required" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

func (r *SubmitFeedbackRequest) Validate() error {
	return utils.ValidateStruct(r)
}

// actor is the authenticated identity placed in the request context by the
// auth middleware.
type actor struct {
	ID    uint
	Role  authorization.UserRole
	Email string
}

func actorFromContext(c *gin.Context) (actor, error) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return actor{}, errors.NewUnauthorizedError("authentication required")
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return actor{}, errors.NewUnauthorizedError("authentication required")
	}

	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	email := c.GetString(constants.ContextKeyUserEmail)

	return actor{ID: id, Role: role, Email: email}, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "ticket")
}
