package ticket

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"saigonbistro/internal/application/ticket/usecases"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/errors"
	"saigonbistro/internal/shared/logger"
	"saigonbistro/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	addCommentUC     usecases.AddCommentExecutor
	claimTicketUC    usecases.ClaimTicketExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	reassignTicketUC usecases.ReassignTicketExecutor
	submitFeedbackUC usecases.SubmitFeedbackExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	claimTicketUC usecases.ClaimTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	reassignTicketUC usecases.ReassignTicketExecutor,
	submitFeedbackUC usecases.SubmitFeedbackExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		addCommentUC:     addCommentUC,
		claimTicketUC:    claimTicketUC,
		changeStatusUC:   changeStatusUC,
		reassignTicketUC: reassignTicketUC,
		submitFeedbackUC: submitFeedbackUC,
		logger:           logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(act.ID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListMyTickets handles GET /tickets/mine
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		ActorID:   act.ID,
		ActorRole: authorization.RoleCustomer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMyTicket handles GET /tickets/mine/:id
func (h *TicketHandler) GetMyTicket(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:  ticketID,
		ActorID:   act.ID,
		ActorRole: authorization.RoleCustomer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddMyComment handles POST /tickets/mine/:id/comments
func (h *TicketHandler) AddMyComment(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:   ticketID,
		ActorID:    act.ID,
		ActorRole:  authorization.RoleCustomer,
		ActorEmail: act.Email,
		Message:    req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// SubmitFeedback handles POST /tickets/mine/:id/feedback
func (h *TicketHandler) SubmitFeedback(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitFeedbackUC.Execute(c.Request.Context(), usecases.SubmitFeedbackCommand{
		TicketID:   ticketID,
		CustomerID: act.ID,
		Stars:      req.Stars,
		Comment:    req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feedback submitted successfully")
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		ActorID:   act.ID,
		ActorRole: act.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:  ticketID,
		ActorID:   act.ID,
		ActorRole: act.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:   ticketID,
		ActorID:    act.ID,
		ActorRole:  act.Role,
		ActorEmail: act.Email,
		Message:    req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ClaimTicket handles PATCH /tickets/:id/claim
func (h *TicketHandler) ClaimTicket(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// the claim body is optional; an empty body claims with the default status
	var req ClaimTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.claimTicketUC.Execute(c.Request.Context(), usecases.ClaimTicketCommand{
		TicketID:  ticketID,
		ActorID:   act.ID,
		ActorRole: act.Role,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket claimed successfully", result)
}

// UpdateStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		ActorID:   act.ID,
		ActorRole: act.Role,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// ReassignTicket handles PATCH /tickets/:id/assignee
func (h *TicketHandler) ReassignTicket(c *gin.Context) {
	act, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReassignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.reassignTicketUC.Execute(c.Request.Context(), usecases.ReassignTicketCommand{
		TicketID:  ticketID,
		ActorRole: act.Role,
		OwnerID:   req.OwnerID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reassigned successfully", result)
}
