package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/config"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/database"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/repository"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/seed"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/service"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
)

func main() {
	file := flag.String("file", "data/restaurants.json", "JSON array of restaurant records")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Initialize(ctx, database.ConnectionInfo{
		URI:      cfg.MongoDB.URI,
		Database: cfg.MongoDB.Database,
		Timeout:  cfg.MongoDB.Timeout,
		Attempts: cfg.MongoDB.ConnectAttempts,
	})
	if err != nil {
		logger.Fatalf("storage unavailable: %v", err)
	}
	defer func() { _ = db.Close(context.Background()) }()

	repo := repository.NewMongoRepo(db.Collection(cfg.MongoDB.Collection))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatalf("failed to ensure indexes: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	res, err := seed.Load(ctx, service.New(repo), f)
	if err != nil {
		_ = f.Close()
		_ = db.Close(context.Background())
		logger.Fatalf("seed aborted after %d records: %v", res.Created, err)
	}
	logger.Infof("seed complete: created=%d skipped=%d", res.Created, res.Skipped)
}
