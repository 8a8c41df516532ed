package main

import (
	"context"
	"log"
	"time"

	"github.com/fahadalg/tailor-api/internal/application/service"
	"github.com/fahadalg/tailor-api/internal/config"
	"github.com/fahadalg/tailor-api/internal/infrastructure/database"
	"github.com/fahadalg/tailor-api/internal/infrastructure/repository"
	"github.com/fahadalg/tailor-api/internal/presentation/http/handler"
	"github.com/fahadalg/tailor-api/internal/presentation/http/routes"
	"github.com/fahadalg/tailor-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial staff account
	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	einvoiceRepo := repository.NewEInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to clean up idempotency keys: %v", err)
			}
		}
	}()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	measurementService := service.NewMeasurementService(measurementRepo, customerRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, measurementRepo, settingsRepo)
	einvoiceService := service.NewEInvoiceService(orderRepo, einvoiceRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Customer: handler.NewCustomerHandler(customerService, measurementService),
		Order:    handler.NewOrderHandler(orderService, einvoiceService),
		Settings: handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
