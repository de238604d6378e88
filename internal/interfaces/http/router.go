package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountusecases "helioscale/internal/application/account/usecases"
	authusecases "helioscale/internal/application/auth/usecases"
	projectusecases "helioscale/internal/application/project/usecases"
	ticketusecases "helioscale/internal/application/ticket/usecases"
	"helioscale/internal/infrastructure/auth"
	"helioscale/internal/infrastructure/cache"
	"helioscale/internal/infrastructure/config"
	"helioscale/internal/infrastructure/email"
	"helioscale/internal/infrastructure/repository"
	"helioscale/internal/infrastructure/storage"
	accounthandlers "helioscale/internal/interfaces/http/handlers/account"
	authhandlers "helioscale/internal/interfaces/http/handlers/auth"
	projecthandlers "helioscale/internal/interfaces/http/handlers/project"
	tickethandlers "helioscale/internal/interfaces/http/handlers/ticket"
	"helioscale/internal/interfaces/http/middleware"
	"helioscale/internal/interfaces/http/routes"
	"helioscale/internal/shared/db"
	"helioscale/internal/shared/logger"
	"helioscale/internal/shared/services/markdown"
)

const authRateLimit = 10

// EmailService is the notification surface the usecases depend on.
// SMTPEmailService and NoopEmailService both satisfy it.
type EmailService interface {
	SendTicketAssignedEmail(to, assigneeName, subject string, ticketID uint) error
	SendTicketStatusEmail(to, subject string, ticketID uint, oldStatus, newStatus string) error
	SendWelcomeEmail(to, name string) error
	SendAccountVerifiedEmail(to, name string) error
}

// Router wires repositories, usecases, handlers and middleware into a
// gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger()

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.SecurityHeaders())
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	// Infrastructure services.
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryDays)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	mdService := markdown.NewService()
	txManager := db.NewTransactionManager(gormDB)

	uploadStore, err := storage.NewUploadStore(&cfg.Upload)
	if err != nil {
		return nil, err
	}

	roleCache := cache.NewRoleCache(redisClient,
		time.Duration(cfg.Auth.RoleCacheTTLSeconds)*time.Second)

	var emailService EmailService
	if cfg.Email.Enabled {
		emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	} else {
		emailService = email.NewNoopEmailService(log)
	}

	// Repositories.
	accountRepo := repository.NewAccountRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)

	// Usecases.
	signupUC := authusecases.NewSignupUseCase(accountRepo, hasher, emailService, log)
	loginUC := authusecases.NewLoginUseCase(accountRepo, hasher, jwtService,
		cfg.Auth.VerificationAllowList, log)
	promoteUC := authusecases.NewPromoteAccountUseCase(accountRepo,
		cfg.Auth.PromotionSecret, roleCache, log)

	createEmployeeUC := accountusecases.NewCreateEmployeeUseCase(accountRepo, hasher, emailService, log)
	listAccountsUC := accountusecases.NewListAccountsUseCase(accountRepo, log)
	setVerifiedUC := accountusecases.NewSetVerifiedUseCase(accountRepo, emailService, log)
	deactivateUC := accountusecases.NewDeactivateAccountUseCase(accountRepo, roleCache, log)
	getAccountUC := accountusecases.NewGetAccountUseCase(accountRepo, log)
	updateProfileUC := accountusecases.NewUpdateProfileUseCase(accountRepo, log)
	changePasswordUC := accountusecases.NewChangePasswordUseCase(accountRepo, hasher, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, accountRepo, mdService, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, accountRepo, emailService, log)
	updateStatusUC := ticketusecases.NewUpdateTicketStatusUseCase(ticketRepo, accountRepo, emailService, log)

	createProjectUC := projectusecases.NewCreateProjectUseCase(projectRepo, accountRepo, txManager, log)
	getProjectUC := projectusecases.NewGetProjectUseCase(projectRepo, log)
	listProjectsUC := projectusecases.NewListProjectsUseCase(projectRepo, log)
	assignTeamUC := projectusecases.NewAssignTeamUseCase(projectRepo, accountRepo, txManager, log)
	changeStatusUC := projectusecases.NewChangeProjectStatusUseCase(projectRepo, log)
	addImageUC := projectusecases.NewAddProjectImageUseCase(projectRepo, log)

	// Handlers.
	authHandler := authhandlers.NewHandler(signupUC, loginUC, promoteUC)
	accountHandler := accounthandlers.NewHandler(
		createEmployeeUC, listAccountsUC, setVerifiedUC, deactivateUC,
		getAccountUC, updateProfileUC, changePasswordUC)
	ticketHandler := tickethandlers.NewHandler(
		createTicketUC, getTicketUC, listTicketsUC, assignTicketUC, updateStatusUC)
	projectHandler := projecthandlers.NewHandler(
		createProjectUC, getProjectUC, listProjectsUC, assignTeamUC,
		changeStatusUC, addImageUC, uploadStore)

	// Middleware.
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	roleGate := middleware.NewRoleGateMiddleware(roleCache, accountRepo, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, authRateLimit, time.Minute)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimiter: rateLimiter,
	})
	routes.SetupAccountRoutes(engine, &routes.AccountRouteConfig{
		AccountHandler: accountHandler,
		AuthMiddleware: authMiddleware,
		RoleGate:       roleGate,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
		RoleGate:       roleGate,
	})
	routes.SetupProjectRoutes(engine, &routes.ProjectRouteConfig{
		ProjectHandler: projectHandler,
		AuthMiddleware: authMiddleware,
		RoleGate:       roleGate,
	})

	// Stored images are served directly from the uploads directory.
	engine.Static(cfg.Upload.PublicPath, uploadStore.Dir())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine, cfg: cfg}, nil
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
