package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/betoquiroga/edmoney-backend/internal/api"
	"github.com/betoquiroga/edmoney-backend/internal/api/handlers"
	"github.com/betoquiroga/edmoney-backend/internal/repository"
	"github.com/betoquiroga/edmoney-backend/internal/service"
	"github.com/betoquiroga/edmoney-backend/pkg/auth"
	"github.com/betoquiroga/edmoney-backend/pkg/config"
	"github.com/betoquiroga/edmoney-backend/pkg/logger"
	"github.com/betoquiroga/edmoney-backend/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting edmoney backend")

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	txRepo := repository.NewTransactionRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	pmRepo := repository.NewPaymentMethodRepository(db, appLogger)
	imRepo := repository.NewInputMethodRepository(db, appLogger)

	// Token verification only; tokens are minted by the auth provider.
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey)

	// Services
	metricsService := service.NewMetricsService(txRepo, appLogger)
	txService := service.NewTransactionService(txRepo, categoryRepo, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	pmService := service.NewPaymentMethodService(pmRepo, appLogger)
	imService := service.NewInputMethodService(imRepo, appLogger)

	// Handlers
	metricsHandler := handlers.NewMetricsHandler(metricsService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, metricsService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, appLogger)
	pmHandler := handlers.NewPaymentMethodHandler(pmService, appLogger)
	imHandler := handlers.NewInputMethodHandler(imService, appLogger)

	app := api.SetupRouter(metricsHandler, txHandler, categoryHandler, pmHandler, imHandler, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
