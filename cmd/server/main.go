// Package main is the entry point for the pnba-gateway HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/pnba-gateway/internal/config"
	"github.com/popeskul/pnba-gateway/internal/handler"
	"github.com/popeskul/pnba-gateway/internal/infrastructure/migrate"
	"github.com/popeskul/pnba-gateway/internal/middleware"
	"github.com/popeskul/pnba-gateway/internal/repository"
	"github.com/popeskul/pnba-gateway/internal/service"
)

// requestTimeoutSlack keeps the HTTP deadline above the platform call deadline so
// provider timeouts are reported as such.
const requestTimeoutSlack = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			Driver:         cfg.Database.Driver,
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger)
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unreachable, session locks fall back to this instance", zap.Error(err))
	}
	pingCancel()
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, redisClient, logger)

	if err := svc.Publication.Start(); err != nil {
		logger.Fatal("Failed to start publication recorder", zap.Error(err))
	}

	router := setupRouter(handler.NewHandler(svc, logger))

	middlewareConfig := &middleware.Config{
		Logger:         logger,
		RequestTimeout: cfg.Provider.CallTimeout() + requestTimeoutSlack,
	}
	if cfg.Middleware.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.Middleware.RateLimit), cfg.Middleware.RateLimitBurst)
		defer limiter.Stop()
		middlewareConfig.Limiter = limiter
	}
	if cfg.Middleware.EnableCORS {
		cors := middleware.DefaultCORSConfig()
		cors.AllowedOrigins = cfg.Middleware.AllowedOrigins
		middlewareConfig.CORS = cors
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.Chain(middlewareConfig)(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := svc.Scheduler.Start(); err != nil {
		logger.Error("Failed to start reliability sweep", zap.Error(err))
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.Strings("platforms", cfg.Provider.Platforms),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.Scheduler.IsRunning() {
		if err := svc.Scheduler.Stop(); err != nil {
			logger.Error("Failed to stop reliability sweep", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// flushed only once the server stopped accepting requests
	if err := svc.Publication.Stop(ctx); err != nil {
		logger.Error("Failed to flush publication recorder", zap.Error(err))
	}

	logger.Info("Server exited")
}
