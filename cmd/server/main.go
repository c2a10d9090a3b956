package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/EMMA019/black-jackgames/internal/config"
	"github.com/EMMA019/black-jackgames/internal/httpapi"
	"github.com/EMMA019/black-jackgames/internal/hub"
	"github.com/EMMA019/black-jackgames/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var balances store.Balances
	if cfg.DatabaseURL != "" {
		g, err := store.OpenGorm(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("database unavailable", zap.Error(err))
		}
		balances = g
		logger.Info("using postgres balance store")
	} else {
		balances = store.NewMemory()
		logger.Info("using in-memory balance store")
	}

	ctx := context.Background()
	h := hub.NewHub(ctx, balances, cfg.TurnDelay, logger)

	handler := httpapi.SetupRoutes(h, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
