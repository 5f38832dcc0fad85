package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-care-backend/config"
	_ "go-care-backend/docs" // Important for Swagger
	v1 "go-care-backend/internal/delivery/http/v1"
	"go-care-backend/internal/repository/postgres"
	"go-care-backend/internal/usecase"
	"go-care-backend/pkg/auth"
	"go-care-backend/pkg/database"
	"go-care-backend/pkg/email"
	"go-care-backend/pkg/logger"
	"go-care-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Care Marketplace API
// @version         1.0
// @description     Backend for a two-sided care marketplace with carer matching.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting care marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when unavailable)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	requestRepo := postgres.NewCareRequestRepository(dbPool)
	recipientRepo := postgres.NewCareRecipientRepository(dbPool)
	carerRepo := postgres.NewCarerRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - match alert emails will be skipped")
	}

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	requestUC := usecase.NewCareRequestUsecase(requestRepo, recipientRepo)
	recipientUC := usecase.NewCareRecipientUsecase(recipientRepo, validate)
	carerUC := usecase.NewCarerUsecase(carerRepo, validate)
	matchingUC := usecase.NewMatchingUsecase(requestRepo, recipientRepo, carerRepo, matchRepo, notificationRepo, userRepo, emailService, cfg)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	adminUC := usecase.NewAdminUsecase(carerRepo, matchRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		CareRequestUC:   requestUC,
		CareRecipientUC: recipientUC,
		CarerUC:         carerUC,
		MatchingUC:      matchingUC,
		NotificationUC:  notificationUC,
		AdminUC:         adminUC,
		JWKSProvider:    jwksProvider,
		Config:          cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
