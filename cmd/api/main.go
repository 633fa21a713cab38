package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-service/infrastructure/config"
	"user-service/infrastructure/di"
	"user-service/infrastructure/persistence/dynamodb"

	"go.uber.org/zap"
)

func main() {
	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	logger := container.Logger

	if cfg.AutoCreateTable {
		if err := dynamodb.EnsureTable(ctx, container.DynamoDB, cfg.DynamoDBTable, logger); err != nil {
			logger.Fatal("Failed to prepare DynamoDB table", zap.Error(err))
		}
	}

	// Hot-reload the log level from the config file in development
	if cfg.File != "" && cfg.IsDevelopment() {
		watcher, err := config.NewWatcher(cfg, logger)
		if err != nil {
			logger.Warn("Configuration watcher disabled", zap.Error(err))
		} else {
			watcher.OnChange(func(next *config.Config) {
				level, err := next.Level()
				if err != nil {
					return
				}
				container.LogLevel.SetLevel(level)
				logger.Info("Log level updated", zap.String("level", level.String()))
			})
			watcher.Start()
			defer watcher.Stop()
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      container.Router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("table", cfg.DynamoDBTable),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	// Clean up resources
	if err := logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}
