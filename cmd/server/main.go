package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/BTulkas/Foster-Finder/internal/config"
	"github.com/BTulkas/Foster-Finder/internal/database"
	"github.com/BTulkas/Foster-Finder/internal/handler"
	applogger "github.com/BTulkas/Foster-Finder/internal/logger"
	"github.com/BTulkas/Foster-Finder/internal/middleware"
	"github.com/BTulkas/Foster-Finder/internal/repository"
	"github.com/BTulkas/Foster-Finder/internal/service"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	logger := applogger.NewLogger(cfg.Server.GinMode)
	defer logger.Sync()
	logger.Info("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		cfg.JWT.ResetTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.SeedReferenceData(db, cfg); err != nil {
		logger.Fatalf("Failed to seed reference data: %v", err)
	}

	// 4. Initialize repositories
	clinicRepo := repository.NewClinicRepo(db)
	volunteerRepo := repository.NewVolunteerRepo(db)
	phoneRepo := repository.NewPhoneRepo(db)
	lookupRepo := repository.NewLookupRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	mailer := &service.LogMailer{Logger: logger}
	authService := service.NewAuthService(clinicRepo, phoneRepo, lookupRepo, auditRepo, mailer, logger)
	clinicService := service.NewClinicService(clinicRepo, phoneRepo, lookupRepo, auditRepo, logger)
	volunteerService := service.NewVolunteerService(volunteerRepo, phoneRepo, lookupRepo, auditRepo, logger)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	clinicHandler := handler.NewClinicHandler(clinicService)
	volunteerHandler := handler.NewVolunteerHandler(volunteerService, clinicService)
	lookupHandler := handler.NewLookupHandler(lookupRepo)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "foster-finder",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/password-reset/request", authHandler.RequestPasswordReset)
		auth.POST("/password-reset", authHandler.ResetPassword)
	}

	// Reference lists (authenticated)
	meta := r.Group("/meta")
	meta.Use(middleware.AuthMiddleware())
	{
		meta.GET("/areas", lookupHandler.Areas)
		meta.GET("/species", lookupHandler.Species)
	}

	// Clinic routes (authenticated)
	clinics := r.Group("/clinics")
	clinics.Use(middleware.AuthMiddleware())
	{
		clinics.GET("/me", clinicHandler.Me)
		clinics.PUT("/me", clinicHandler.UpdateMe)

		// Admin-only routes
		clinics.GET("/search", middleware.RequireAdmin(), clinicHandler.Search)
	}

	// Volunteer routes (authenticated)
	volunteers := r.Group("/volunteers")
	volunteers.Use(middleware.AuthMiddleware())
	{
		volunteers.GET("/next", volunteerHandler.ListNext)   // Rotation: next volunteer to call
		volunteers.GET("/search", volunteerHandler.Search)   // Name / phone search
		volunteers.POST("", volunteerHandler.Create)
		volunteers.GET("/:id", volunteerHandler.Get)
		volunteers.PUT("/:id", volunteerHandler.Update)
		volunteers.POST("/:id/cycle", volunteerHandler.Cycle)
	}

	// 10. Setup graceful shutdown
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server exited")
}
