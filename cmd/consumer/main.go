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

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, logger.Named("consumer")); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
