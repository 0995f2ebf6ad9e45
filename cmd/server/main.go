package main

import (
	"context"   // context package is needed for Redis operations and shutdown
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Exit codes
	"os/signal" // Shutdown signals
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"organizo/internal/api"        // Custom package for API handlers
	"organizo/internal/config"     // Custom package for configuration
	"organizo/internal/db"         // Database bootstrap
	"organizo/internal/repository" // Owner scoped stores
	"organizo/internal/utils"      // List cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database selected by DB_DRIVER
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatalf("failed to migrate DB: %v", err)
		}
	}

	cache := setupCache(cfg) // nil when REDIS_ADDR is empty

	// Set Mode to Release if in production
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Config:       cfg,
		Tasks:        repository.NewTaskRepository(gdb),
		Transactions: repository.NewTransactionRepository(gdb),
		Settings:     repository.NewSettingsRepository(gdb),
		Cache:        cache,
	})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":        cfg.AppPort,
			"environment": cfg.AppEnv,
			"driver":      cfg.DBDriver,
			"cache":       cfg.CacheEnabled(),
		}).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// setupLogger uses text output in development and JSON elsewhere
func setupLogger(cfg *config.Config) {
	if cfg.IsDev() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// setupCache connects to Redis when configured. The API works without it.
func setupCache(cfg *config.Config) *utils.ListCache {
	if !cfg.CacheEnabled() {
		logrus.Info("REDIS_ADDR not set, list cache disabled")
		return nil
	}
	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	return utils.NewListCache(redisClient, cfg.CacheTTL)
}
