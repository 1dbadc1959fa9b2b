package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tasfirul8269/frooxi-backend/internal/config"
	"github.com/tasfirul8269/frooxi-backend/internal/database"
	"github.com/tasfirul8269/frooxi-backend/internal/di"
	"github.com/tasfirul8269/frooxi-backend/internal/logger"
	"github.com/tasfirul8269/frooxi-backend/internal/redis"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/router"
	"github.com/tasfirul8269/frooxi-backend/internal/storage"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting frooxi backend...")

	// Error details are redacted from responses in production
	response.SetExposeDetails(!cfg.IsProduction())

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection (optional, shared rate limiting)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := &redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		}
		redisClient, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed (shared rate limiting disabled): %v", err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
		}
	}

	// Initialize object storage for image uploads
	objectStorage, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Object storage initialization failed: %v", err))
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Config:  cfg,
		DB:      db,
		Redis:   redisClient,
		Storage: objectStorage,
	})

	engine := router.Setup(cfg, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info(fmt.Sprintf("HTTP server listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("HTTP server failed: %v", err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Forced shutdown: %v", err))
	}

	appLog.Info("Server stopped")
}
