package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"grammologue/internal/client"
	"grammologue/internal/config"
	"grammologue/internal/handler"
	"grammologue/internal/logger"
	"grammologue/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	inferenceClient, err := client.New(cfg, appLogger.Named("client"))
	if err != nil {
		appLogger.Fatal("Failed to create inference client", zap.Error(err))
	}
	appLogger.Info("Inference client initialized",
		zap.String("api_url", cfg.API.BaseURL),
		zap.String("inference_url", cfg.Inference.BaseURL),
		zap.Duration("timeout", cfg.HTTP.Timeout),
	)

	assessmentService := service.NewAssessmentService(inferenceClient, inferenceClient)
	app := handler.NewApp(cfg.Server, assessmentService)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Shutting down server...", zap.String("signal", fmt.Sprint(sig)))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
