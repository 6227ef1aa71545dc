package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "saigonbistro/internal/interfaces/http/handlers/user"
	"saigonbistro/internal/interfaces/http/middleware"
	"saigonbistro/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(rg *gin.RouterGroup, config *UserRouteConfig) {
	users := rg.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/assignable",
			authorization.RequireAdmin(),
			config.UserHandler.ListAssignableUsers)
	}
}
