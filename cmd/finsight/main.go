package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finsight/internal/api"
	"finsight/internal/api/handlers"
	"finsight/internal/parser"
	"finsight/internal/repository"
	"finsight/internal/service"
	"finsight/pkg/auth"
	"finsight/pkg/config"
	"finsight/pkg/logger"
	"finsight/pkg/postgres"

	"go.uber.org/zap"
)

// @title Finsight API
// @version 1.0
// @description Bank-statement parsing and spending analytics service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finsight service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	stmtRepo := repository.NewStatementRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	pdfService := service.NewPDFService(appLogger)
	extractor := parser.NewExtractor(nil)
	stmtService := service.NewStatementService(stmtRepo, txRepo, pdfService, extractor, appLogger)
	summaryService := service.NewSummaryService(txRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	stmtHandler := handlers.NewStatementHandler(stmtService, appLogger)
	summaryHandler := handlers.NewSummaryHandler(summaryService, appLogger)

	// Setup router
	app := api.SetupRouter(cfg, authHandler, stmtHandler, summaryHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
