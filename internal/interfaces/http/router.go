package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	orderusecases "saigonbistro/internal/application/order/usecases"
	"saigonbistro/internal/application/ticket/usecases"
	"saigonbistro/internal/infrastructure/auth"
	"saigonbistro/internal/infrastructure/config"
	"saigonbistro/internal/infrastructure/repository"
	"saigonbistro/internal/infrastructure/services"
	orderhandlers "saigonbistro/internal/interfaces/http/handlers/order"
	tickethandlers "saigonbistro/internal/interfaces/http/handlers/ticket"
	userhandlers "saigonbistro/internal/interfaces/http/handlers/user"
	"saigonbistro/internal/interfaces/http/middleware"
	"saigonbistro/internal/interfaces/http/routes"
	shareddb "saigonbistro/internal/shared/db"
	"saigonbistro/internal/shared/logger"
	"saigonbistro/internal/shared/services/sanitize"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	logger         logger.Interface
	ticketHandler  *tickethandlers.TicketHandler
	userHandler    *userhandlers.UserHandler
	orderHandler   *orderhandlers.OrderHandler
	authMiddleware *middleware.AuthMiddleware
	writeLimiter   *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	numberGen := services.NewTicketNumberGenerator(db)
	txMgr := shareddb.NewTransactionManager(db)
	sanitizer := sanitize.NewService()

	createTicketUC := usecases.NewCreateTicketUseCase(ticketRepo, orderRepo, userRepo, numberGen, sanitizer, log)
	getTicketUC := usecases.NewGetTicketUseCase(ticketRepo, commentRepo, feedbackRepo, log)
	listTicketsUC := usecases.NewListTicketsUseCase(ticketRepo, log)
	addCommentUC := usecases.NewAddCommentUseCase(ticketRepo, commentRepo, txMgr, sanitizer, log)
	claimTicketUC := usecases.NewClaimTicketUseCase(ticketRepo, log)
	changeStatusUC := usecases.NewChangeStatusUseCase(ticketRepo, log)
	reassignTicketUC := usecases.NewReassignTicketUseCase(ticketRepo, userRepo, log)
	submitFeedbackUC := usecases.NewSubmitFeedbackUseCase(ticketRepo, feedbackRepo, sanitizer, log)
	listAssignableUC := usecases.NewListAssignableUsersUseCase(userRepo, log)
	listOrdersUC := orderusecases.NewListOrdersUseCase(orderRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, addCommentUC,
		claimTicketUC, changeStatusUC, reassignTicketUC, submitFeedbackUC,
	)
	userHandler := userhandlers.NewUserHandler(listAssignableUC)
	orderHandler := orderhandlers.NewOrderHandler(listOrdersUC)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var writeLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		writeLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, 1*time.Minute)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		logger:         log,
		ticketHandler:  ticketHandler,
		userHandler:    userHandler,
		orderHandler:   orderHandler,
		authMiddleware: authMiddleware,
		writeLimiter:   writeLimiter,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	routes.SetupTicketRoutes(v1, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
		WriteLimiter:   r.writeLimiter,
	})

	routes.SetupUserRoutes(v1, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupOrderRoutes(v1, &routes.OrderRouteConfig{
		OrderHandler:   r.orderHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
