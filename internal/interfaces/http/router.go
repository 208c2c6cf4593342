// Package http wires the HTTP surface: routes, middleware, and the
// dependency graph behind every handler.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fractalyx/internal/agents"
	agentusecases "fractalyx/internal/application/agent/usecases"
	authusecases "fractalyx/internal/application/auth/usecases"
	billingusecases "fractalyx/internal/application/billing/usecases"
	chatusecases "fractalyx/internal/application/chat/usecases"
	checkpointusecases "fractalyx/internal/application/checkpoint/usecases"
	conversationusecases "fractalyx/internal/application/conversation/usecases"
	projectusecases "fractalyx/internal/application/project/usecases"
	ticketusecases "fractalyx/internal/application/ticket/usecases"
	infraauth "fractalyx/internal/infrastructure/auth"
	"fractalyx/internal/infrastructure/config"
	"fractalyx/internal/infrastructure/inference"
	stripepayment "fractalyx/internal/infrastructure/payment/stripe"
	"fractalyx/internal/infrastructure/ratelimit"
	"fractalyx/internal/infrastructure/repository"
	"fractalyx/internal/infrastructure/upload"
	"fractalyx/internal/interfaces/http/handlers"
	"fractalyx/internal/interfaces/http/middleware"
	"fractalyx/internal/shared/db"
	"fractalyx/internal/shared/logger"
)

// Router owns the gin engine and the wired handler graph.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter builds the full dependency graph and registers all routes.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)

	log := logger.NewLogger().With("component", "http")

	// Shared infrastructure
	txManager := db.NewTransactionManager(gormDB)
	jwtService := infraauth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenStore := infraauth.NewRedisTokenStore(redisClient)

	uploads, err := upload.NewStorage(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	inferenceClient := buildInferenceClient(&cfg.Ollama)
	gateway := stripepayment.NewClient(&cfg.Stripe, log.Named("stripe"))

	// Repositories
	projectRepo := repository.NewProjectRepository(gormDB)
	agentRepo := repository.NewAgentRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	checkpointRepo := repository.NewCheckpointRepository(gormDB)
	conversationRepo := repository.NewConversationRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)

	// Handlers
	ticketHandler := handlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, txManager, log.Named("ticket")),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log.Named("ticket")),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log.Named("ticket")),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, txManager, log.Named("ticket")),
		ticketusecases.NewAssignTicketUseCase(ticketRepo, agentRepo, txManager, log.Named("ticket")),
		ticketusecases.NewChangeTicketStatusUseCase(ticketRepo, txManager, log.Named("ticket")),
		ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, txManager, log.Named("ticket")),
		ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, log.Named("ticket")),
	)

	projectHandler := handlers.NewProjectHandler(
		projectusecases.NewCreateProjectUseCase(projectRepo, txManager, log.Named("project")),
		projectusecases.NewGetProjectUseCase(projectRepo, ticketRepo, log.Named("project")),
		projectusecases.NewListProjectsUseCase(projectRepo, ticketRepo, log.Named("project")),
	)

	checkpointHandler := handlers.NewCheckpointHandler(
		checkpointusecases.NewCreateCheckpointUseCase(checkpointRepo, projectRepo, ticketRepo, txManager, log.Named("checkpoint")),
		checkpointusecases.NewGetCheckpointUseCase(checkpointRepo, ticketRepo, log.Named("checkpoint")),
		checkpointusecases.NewListCheckpointsUseCase(checkpointRepo, projectRepo, log.Named("checkpoint")),
		checkpointusecases.NewSetCheckpointCompletedUseCase(checkpointRepo, txManager, log.Named("checkpoint")),
		checkpointusecases.NewAttachTicketUseCase(checkpointRepo, ticketRepo, txManager, log.Named("checkpoint")),
	)

	conversationHandler := handlers.NewConversationHandler(
		conversationusecases.NewCreateConversationUseCase(conversationRepo, projectRepo, txManager, log.Named("conversation")),
		conversationusecases.NewListConversationsUseCase(conversationRepo, log.Named("conversation")),
		conversationusecases.NewRecentConversationsUseCase(conversationRepo, log.Named("conversation")),
		conversationusecases.NewListMessagesUseCase(conversationRepo, messageRepo, agentRepo, log.Named("conversation")),
		chatusecases.NewPostMessageUseCase(
			conversationRepo, messageRepo, agentRepo, ticketRepo, checkpointRepo,
			txManager, inferenceClient, agents.NewKeywordClassifier(), log.Named("chat"),
		),
		uploads,
	)

	agentHandler := handlers.NewAgentHandler(
		agentusecases.NewListAgentsUseCase(agentRepo, log.Named("agent")),
		agentusecases.NewCreateAgentUseCase(agentRepo, txManager, log.Named("agent")),
	)

	authHandler := handlers.NewAuthHandler(
		authusecases.NewRegisterUseCase(customerRepo, hasher, jwtService, txManager, log.Named("auth")),
		authusecases.NewLoginUseCase(customerRepo, hasher, jwtService, log.Named("auth")),
		authusecases.NewRefreshTokenUseCase(jwtService, tokenStore, log.Named("auth")),
		authusecases.NewLogoutUseCase(jwtService, tokenStore, log.Named("auth")),
	)

	billingHandler := handlers.NewBillingHandler(
		billingusecases.NewListPlansUseCase(gateway, log.Named("billing")),
		billingusecases.NewCreateCheckoutSessionUseCase(customerRepo, gateway, txManager, log.Named("billing")),
		billingusecases.NewCreatePortalSessionUseCase(customerRepo, gateway, log.Named("billing")),
		billingusecases.NewHandleWebhookUseCase(customerRepo, subscriptionRepo, gateway, txManager, log.Named("billing")),
	)

	healthHandler := handlers.NewHealthHandler(inferenceClient)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r := &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}

	var chatLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		chatLimit = middleware.ChatRateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
			RequestsPerDay:    cfg.RateLimit.RequestsPerDay,
		}, log.Named("ratelimit"))
	}

	r.registerRoutes(
		authMiddleware,
		chatLimit,
		projectHandler,
		ticketHandler,
		checkpointHandler,
		conversationHandler,
		agentHandler,
		authHandler,
		billingHandler,
		healthHandler,
	)

	return r, nil
}

// buildInferenceClient picks the backend: a real Ollama client or the canned
// mock, which is the default.
func buildInferenceClient(cfg *config.OllamaConfig) inference.Client {
	if cfg.Mock {
		return inference.NewCannedClient(cfg.Model)
	}
	return inference.NewOllamaClient(cfg.Endpoint, cfg.Model)
}

func (r *Router) registerRoutes(
	authMiddleware *middleware.AuthMiddleware,
	chatLimit gin.HandlerFunc,
	projectHandler *handlers.ProjectHandler,
	ticketHandler *handlers.TicketHandler,
	checkpointHandler *handlers.CheckpointHandler,
	conversationHandler *handlers.ConversationHandler,
	agentHandler *handlers.AgentHandler,
	authHandler *handlers.AuthHandler,
	billingHandler *handlers.BillingHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := r.engine.Group("/api")

	// Public surface
	api.GET("/health", healthHandler.Health)
	api.GET("/ollama/status", healthHandler.OllamaStatus)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Webhook is unauthenticated; the payload signature is the credential.
	api.POST("/billing/webhook", billingHandler.Webhook)
	api.GET("/billing/success", billingHandler.CheckoutSuccess)
	api.GET("/billing/cancel", billingHandler.CheckoutCancel)

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.GET("", ticketHandler.ListTickets)
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PATCH("/:id", ticketHandler.UpdateTicket)
			tickets.POST("/:id/assign", ticketHandler.AssignTicket)
			tickets.PUT("/:id/status", ticketHandler.ChangeStatus)
			tickets.GET("/:id/comments", ticketHandler.ListComments)
			tickets.POST("/:id/comments", ticketHandler.AddComment)
		}

		checkpoints := protected.Group("/checkpoints")
		{
			checkpoints.GET("", checkpointHandler.ListCheckpoints)
			checkpoints.POST("", checkpointHandler.CreateCheckpoint)
			checkpoints.GET("/:id", checkpointHandler.GetCheckpoint)
			checkpoints.PUT("/:id/status", checkpointHandler.SetCompleted)
			checkpoints.POST("/:id/tickets", checkpointHandler.AttachTicket)
		}

		conversations := protected.Group("/conversations")
		{
			conversations.GET("", conversationHandler.ListConversations)
			conversations.POST("", conversationHandler.CreateConversation)
			conversations.GET("/recent", conversationHandler.RecentConversations)
			conversations.GET("/:id/messages", conversationHandler.ListMessages)

			if chatLimit != nil {
				conversations.POST("/:id/messages", chatLimit, conversationHandler.PostMessage)
			} else {
				conversations.POST("/:id/messages", conversationHandler.PostMessage)
			}
		}

		agents := protected.Group("/agents")
		{
			agents.GET("", agentHandler.ListAgents)
			agents.POST("", agentHandler.CreateAgent)
		}

		billing := protected.Group("/billing")
		{
			billing.GET("/plans", billingHandler.ListPlans)
			billing.POST("/checkout", billingHandler.CreateCheckout)
			billing.POST("/portal", billingHandler.CreatePortal)
		}
	}
}

// Engine exposes the underlying gin engine, mainly for tests and the server
// bootstrap.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
