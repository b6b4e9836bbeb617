package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/api"
	"github.com/matt-dz/cookingpuppy/internal/config"
	"github.com/matt-dz/cookingpuppy/internal/env"
	"github.com/matt-dz/cookingpuppy/internal/log"
	"github.com/matt-dz/cookingpuppy/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	conf, err := config.LoadConfig()
	if err != nil {
		log.New(nil).Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := log.New(&slog.HandlerOptions{Level: conf.LogLevel.Level()})

	logger.DebugContext(ctx, "setting up store", slog.String("driver", string(conf.Storage.Driver)))
	if conf.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, recipes are lost on restart")
	}
	st, closeStore, err := setup.Store(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	env := &env.Env{
		Logger:   logger,
		Store:    st,
		Importer: setup.Importer(conf, st, logger),
		Config:   conf,
	}

	if err := api.Start(ctx, env); err != nil {
		env.Logger.Error("API Failed", slog.Any("error", err))
		closeStore()
		os.Exit(1)
	}
}
