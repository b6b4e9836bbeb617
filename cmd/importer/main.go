// Command importer imports the configured Marmiton recipes once and exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/config"
	"github.com/matt-dz/cookingpuppy/internal/importer"
	"github.com/matt-dz/cookingpuppy/internal/log"
	"github.com/matt-dz/cookingpuppy/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig()
	if err != nil {
		log.New(nil).Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := log.New(&slog.HandlerOptions{Level: conf.LogLevel.Level()})

	os.Exit(run(ctx, conf, logger))
}

func run(ctx context.Context, conf config.Config, logger *slog.Logger) int {
	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	// Imported recipes must outlive the process.
	if conf.Storage.Driver != config.StorageDriverPostgres {
		logger.Error("importer requires the postgres storage driver",
			slog.String("driver", string(conf.Storage.Driver)))
		return 1
	}

	ids, err := importer.LoadIDs(conf.Import.IDsPath)
	if err != nil {
		logger.Error("failed to load recipe ids", slog.Any("error", err))
		return 1
	}

	st, closeStore, err := setup.Store(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup store", slog.Any("error", err))
		return 1
	}
	defer closeStore()

	return importAll(ctx, setup.Importer(conf, st, logger), ids, logger)
}

// importAll runs one batch and returns the process exit code: 0 when every
// id was imported and 2 when some failed.
func importAll(ctx context.Context, job *importer.Job, ids []string, logger *slog.Logger) int {
	result := job.ImportBatch(ctx, ids)
	logger.Info("import finished",
		slog.Int("imported", result.Imported),
		slog.Any("failed", result.Failed))

	if len(result.Failed) > 0 {
		return 2
	}
	return 0
}
