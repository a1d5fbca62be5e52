package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-sportstore/internal/app"
	"go-sportstore/internal/bootstrap"
	"go-sportstore/internal/config"
	"go-sportstore/internal/shared/database/seed"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.StoreBackend != config.BackendPostgres {
		log.Fatalf("seeding needs STORE_BACKEND=%s", config.BackendPostgres)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := app.ConnectDBWithRetry(ctx, cfg.DBURL, cfg.ConnectRetries, logger)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	defer db.Close()

	if err := seed.SeedProducts(ctx, db, seed.SampleProducts(), logger); err != nil {
		logger.Fatal("seed products failed", zap.Error(err))
	}
}
