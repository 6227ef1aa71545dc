package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "saigonbistro/internal/interfaces/http/handlers/ticket"
	"saigonbistro/internal/interfaces/http/middleware"
	"saigonbistro/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware

	// WriteLimiter throttles customer-facing writes; nil disables limiting.
	WriteLimiter *middleware.RateLimiter
}

func SetupTicketRoutes(rg *gin.RouterGroup, config *TicketRouteConfig) {
	limit := func() gin.HandlerFunc {
		if config.WriteLimiter != nil {
			return config.WriteLimiter.Limit()
		}
		return func(c *gin.Context) { c.Next() }
	}

	tickets := rg.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Customer surface
		tickets.POST("",
			limit(),
			config.TicketHandler.CreateTicket)
		tickets.GET("/mine",
			config.TicketHandler.ListMyTickets)
		tickets.GET("/mine/:id",
			config.TicketHandler.GetMyTicket)
		tickets.POST("/mine/:id/comments",
			limit(),
			config.TicketHandler.AddMyComment)
		tickets.POST("/mine/:id/feedback",
			limit(),
			config.TicketHandler.SubmitFeedback)

		// Support surface
		tickets.GET("",
			authorization.RequireStaffOrAdmin(),
			config.TicketHandler.ListTickets)
		tickets.POST("/:id/comments",
			authorization.RequireStaffOrAdmin(),
			config.TicketHandler.AddComment)
		tickets.PATCH("/:id/claim",
			authorization.RequireStaffOrAdmin(),
			config.TicketHandler.ClaimTicket)
		tickets.PATCH("/:id/status",
			authorization.RequireStaffOrAdmin(),
			config.TicketHandler.UpdateStatus)
		tickets.PATCH("/:id/assignee",
			authorization.RequireAdmin(),
			config.TicketHandler.ReassignTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			authorization.RequireStaffOrAdmin(),
			config.TicketHandler.GetTicket)
	}
}
