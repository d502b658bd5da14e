package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/InhwanCho/penta-works-api/internal/config"
	"github.com/InhwanCho/penta-works-api/internal/db"
	httpserver "github.com/InhwanCho/penta-works-api/internal/http"
	"github.com/InhwanCho/penta-works-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "penta-works-api")
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("db connection error", zap.Error(err))
	}
	defer store.Close()

	srv := httpserver.New(cfg, store, zl)
	zl.Info("monitoring API listening", zap.String("addr", cfg.ListenAddr()))

	if err := srv.Run(ctx); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
