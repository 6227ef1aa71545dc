package routes

import (
	"github.com/gin-gonic/gin"

	orderhandlers "saigonbistro/internal/interfaces/http/handlers/order"
	"saigonbistro/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler   *orderhandlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupOrderRoutes(rg *gin.RouterGroup, config *OrderRouteConfig) {
	orders := rg.Group("/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		orders.GET("/mine",
			config.OrderHandler.ListMyOrders)
	}
}
