package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"

	"github.com/restaurants/restaurants-api/backend/go-services/handlers"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/config"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/database"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/repository"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/service"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	flush := logger.Configure(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON, File: cfg.Log.File})
	defer flush()
	logger.Infof("config loaded: env=%s mongo_db=%s redis=%v", cfg.Server.Environment, cfg.MongoDB.Database, cfg.Redis.Host != "")

	if !cfg.DevelopmentMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The listener is never bound without a live database.
	db, err := database.Initialize(ctx, database.ConnectionInfo{
		URI:      cfg.MongoDB.URI,
		Database: cfg.MongoDB.Database,
		Timeout:  cfg.MongoDB.Timeout,
		Attempts: cfg.MongoDB.ConnectAttempts,
	})
	if err != nil {
		logger.Fatalf("storage unavailable: %v", err)
	}
	logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)

	repo := repository.NewMongoRepo(db.Collection(cfg.MongoDB.Collection))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warnf("failed to ensure restaurant indexes: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			_ = rdb.Close()
			rdb = nil
		} else {
			logger.Infof("connected to Redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := handlers.NewRouter(handlers.Deps{
		Restaurants:     service.New(repo),
		Storage:         db,
		DevelopmentMode: cfg.DevelopmentMode(),
		RateLimit:       cfg.RateLimit,
		Redis:           rdb,
		Metrics:         true,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("restaurants API listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Errorf("server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Infof("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("graceful shutdown failed: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Warnf("failed to disconnect from MongoDB: %v", err)
	}
	logger.Infof("server stopped")
}
