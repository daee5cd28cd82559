package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amitbasuri/content-service-go/internal/api"
	"github.com/amitbasuri/content-service-go/internal/config"
	"github.com/amitbasuri/content-service-go/internal/database"
	"github.com/amitbasuri/content-service-go/internal/storage/postgres"
	"github.com/amitbasuri/content-service-go/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Load the dotenv if exists
	_ = godotenv.Load()

	var env config.Server
	err := envconfig.Process("", &env)
	if err != nil {
		log.Fatal("Cannot load env:", err)
	}

	// Setup structured logging
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(telemetry.NewLogHandler(h)))

	slog.Info("Starting Content Service")

	ctx := context.Background()

	var provider *telemetry.Provider
	if env.Telemetry.Enabled {
		provider, err = telemetry.NewProvider(ctx, telemetry.Config{
			ServiceName:    env.Telemetry.ServiceName,
			ServiceVersion: env.Telemetry.ServiceVersion,
			Environment:    env.Telemetry.Environment,
		})
		if err != nil {
			log.Fatal("Failed to create tracer provider:", err)
		}
		slog.Info("Tracing enabled", "service", env.Telemetry.ServiceName)
	}

	// Initialize database connection pool
	db, err := database.Open(ctx, env.Database)
	if err != nil {
		log.Fatal("Failed to create database pool:", err)
	}

	// Initialize storage layer
	store := postgres.NewStore(db.Pool())

	// Initialize API handler
	apiHandler := api.NewHandler(store, db)

	// Setup HTTP routes
	r := gin.Default()
	apiHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + env.ServerPort,
		Handler: otelhttp.NewHandler(r, env.Telemetry.ServiceName),
	}

	// Start HTTP server in goroutine
	go func() {
		slog.Info("HTTP server listening", "port", env.ServerPort, "url", "http://localhost:"+env.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error:", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down content service...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	db.Close()

	if provider != nil {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to flush traces", "error", err)
		}
	}

	slog.Info("Content service exited gracefully")
}
