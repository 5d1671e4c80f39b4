// Package main is the entry point for the crewreach HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/events"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/middleware"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/service"
)

const (
	defaultConfigPath = "config.yaml"
	shutdownTimeout   = 10 * time.Second
	requestTimeout    = 30 * time.Second
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Dedupe fails open, so the engine can run without redis.
		logger.Warn("Redis unavailable, webhook dedupe degraded", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	callbacks, err := callback.NewBuilder(cfg.Webhook.PublicBaseURL)
	if err != nil {
		logger.Fatal("Invalid webhook base URL", zap.Error(err))
	}

	gw := gateway.NewTwilioGateway(cfg, logger)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, redisClient, gw, publisher, callbacks, logger)

	router := setupRouter(cfg, svc, gw, logger)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.Middleware.AllowedOrigins

	middlewareConfig := &middleware.Config{
		Logger:         logger,
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: requestTimeout,
	}
	if cfg.Middleware.EnableCORS {
		middlewareConfig.CORS = corsConfig
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.Chain(middlewareConfig)(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if cfg.Scheduler.Enabled {
		if err := svc.Scheduler.Start(); err != nil {
			logger.Error("Failed to start scheduler on startup", zap.Error(err))
		} else {
			logger.Info("Scheduler started on application startup")
		}
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.Scheduler.IsRunning() {
		if err := svc.Scheduler.Stop(); err != nil {
			logger.Error("Failed to stop scheduler", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newPublisher connects to the broker when one is configured and falls back
// to logging events otherwise.
func newPublisher(cfg *config.Config, logger *zap.Logger) (events.Publisher, func()) {
	if cfg.AMQP.URL == "" {
		logger.Info("No broker configured, events are logged only")
		return events.NewLogPublisher(logger), func() {}
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQP, logger)
	if err != nil {
		logger.Warn("Broker unavailable, events are logged only", zap.Error(err))
		return events.NewLogPublisher(logger), func() {}
	}

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close broker connection", zap.Error(err))
		}
	}
}
