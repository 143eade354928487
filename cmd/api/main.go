package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/simplyinvite/showcase-backend/docs"
	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	httphandlers "github.com/simplyinvite/showcase-backend/internal/handlers/http"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
	"github.com/simplyinvite/showcase-backend/internal/handlers/ws"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/auth"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/config"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/i18n"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/logging"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/persistence/postgres"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

//	@title			SimplyInvite Showcase API
//	@version		1.0
//	@description	API da plataforma de vitrine de talentos SimplyInvite

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Variáveis de um .env local têm precedência sobre defaults
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting showcase backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos no binário)
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	evaluationRepo := postgres.NewEvaluationRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura de autenticação
	hasher := auth.NewBcryptHasher()
	tokenManager, err := auth.NewManager(cfg.JWT, logger)
	if err != nil {
		logger.Error("failed to initialize token manager", "error", err)
		log.Fatal(err)
	}

	// Hub de notificações em tempo real
	hub := ws.NewHub(logger)
	defer hub.Close()

	// Inicializar services
	userService := services.NewUserService(userRepo, companyRepo, hasher, logger)
	authService := services.NewAuthService(userRepo, hasher, tokenManager, logger)
	companyService := services.NewCompanyService(companyRepo, logger)
	projectService := services.NewProjectService(projectRepo, userRepo, evaluationRepo, logger)
	evaluationService := services.NewEvaluationService(evaluationRepo, projectRepo, userRepo, companyRepo, logger)
	invitationService := services.NewInvitationService(invitationRepo, userRepo, companyRepo, projectRepo, uow, hub, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	companyHandler := httphandlers.NewCompanyHandler(companyService)
	projectHandler := httphandlers.NewProjectHandler(projectService, evaluationService)
	invitationHandler := httphandlers.NewInvitationHandler(invitationService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokenManager, userRepo)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authMiddleware.RequireAuth(), authHandler.Me)

		// Registro é público; o resto exige token
		api.POST("/users", userHandler.CreateUser)

		users := api.Group("/users", authMiddleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me/profile", userHandler.MyProfile)
			users.GET("/me/projects", projectHandler.ListMyProjects)
			users.PUT("/me/onboarding", userHandler.CompleteOnboarding)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/profile", userHandler.GetProfile)
		}

		companies := api.Group("/companies", authMiddleware.RequireAuth())
		{
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("", companyHandler.ListCompanies)
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id", companyHandler.UpdateCompany)
			companies.DELETE("/:id", companyHandler.DeleteCompany)
		}

		projects := api.Group("/projects", authMiddleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/user/:userId", projectHandler.ListUserProjects)
			projects.GET("/:id", projectHandler.GetProject)
		}

		api.GET("/evaluations/project/:projectId", authMiddleware.RequireAuth(), projectHandler.ListProjectEvaluations)

		invitations := api.Group("/invitations", authMiddleware.RequireAuth())
		{
			invitations.POST("", authMiddleware.RequireRole(entities.RoleHR, entities.RoleManager), invitationHandler.CreateInvitation)
			invitations.GET("/received", invitationHandler.ListReceivedInvitations)
			invitations.GET("/sent", invitationHandler.ListSentInvitations)
			invitations.POST("/:id/respond", invitationHandler.RespondInvitation)
		}

		// Notificações em tempo real
		api.GET("/ws/notifications", authMiddleware.RequireAuth(), hub.Handle)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
