package main

import (
	"context"   // context package is needed for Redis and shutdown
	"errors"    // errors package is needed for server exit checks
	"net/http"  // net/http package is needed for the server
	"os"        // os package is needed for signals
	"os/signal" // signal handling
	"syscall"   // signal numbers
	"time"      // time package is needed for timeouts

	"mindspace/internal/api"        // Custom package for API handlers
	"mindspace/internal/config"     // Custom package for configuration
	"mindspace/internal/db"         // Custom package for database bootstrap
	"mindspace/internal/repository" // Custom package for persistence
	"mindspace/internal/service"    // Custom package for account logic
	"mindspace/internal/utils"      // Custom package for hashing and caching

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	setupLogger(cfg)

	// Connect to the database, retrying while it comes up
	gormDB, err := db.ConnectWithRetry(cfg.DSN(), cfg.DBConnectTimeout, db.Open)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	sqlDB, err := db.ConfigurePool(gormDB, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logrus.Fatalf("failed to configure DB pool: %v", err)
	}
	defer sqlDB.Close()

	// Setup Redis client, the listing cache is optional
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		defer redisClient.Close()
		// Test Redis connection; cache errors are tolerated at request time too
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.WithField("error", err.Error()).Warn("Redis unreachable, users listing will read the database")
		}
	}

	// Wire repository, cache and service
	users := repository.NewCachedUserRepository(
		repository.NewUserRepository(gormDB),
		utils.NewCache(redisClient, "mindspace"),
		cfg.UsersCacheTTL,
	)
	accounts := service.NewAccountService(users, utils.NewBcryptHasher(utils.PasswordCost))

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := api.NewRouter(api.RouterConfig{
		Prefixes:       cfg.APIPrefixes,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		TrustedProxies: []string{"127.0.0.1"},
	}, accounts, sqlDB)
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done() // Wait for SIGINT/SIGTERM
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithField("error", err.Error()).Error("Graceful shutdown failed")
	}
}

// setupLogger configures the global logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
