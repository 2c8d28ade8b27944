package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"stock-price-proxy/internal/api"
	"stock-price-proxy/internal/config"
	"stock-price-proxy/internal/logger"
	"stock-price-proxy/internal/platform"
	"stock-price-proxy/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize services
	stockService := service.NewStockService(cfg, logger)

	// Initialize HTTP handlers
	handlerConfig := api.HandlerConfig{
		Configuration: cfg,
		Logger:        logger,
		StockService:  stockService,
	}
	handlers := api.NewHandlers(handlerConfig)

	// Setup Gin router
	router := handlers.SetupRoutes()

	// Setup HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Stock price proxy listening on port " + cfg.Port)
		logger.Info("Allowed origin: " + cfg.AllowedOrigin)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Create a shutdown context that works across platforms
	shutdownCtx, stop := platform.NewShutdownContext(context.Background())
	defer stop()
	<-shutdownCtx.Done()

	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
