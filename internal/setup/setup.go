// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/cookingpuppy/internal/config"
	"github.com/matt-dz/cookingpuppy/internal/database"
	mHttp "github.com/matt-dz/cookingpuppy/internal/http"
	"github.com/matt-dz/cookingpuppy/internal/importer"
	"github.com/matt-dz/cookingpuppy/internal/log"
	"github.com/matt-dz/cookingpuppy/internal/marmiton"
	"github.com/matt-dz/cookingpuppy/internal/store"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// ConnString builds the postgres connection string of conf.
func ConnString(conf config.Database) string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(conf.User, conf.Password),
		Host:   net.JoinHostPort(conf.Host, strconv.FormatUint(uint64(conf.Port), 10)),
		Path:   "/" + conf.Database,
	}
	return u.String()
}

// Database connects to postgres and applies the schema when it is missing.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	pool, err := pgxpool.New(ctx, ConnString(conf.Database))
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// Store opens the recipe store selected by conf. The returned func releases
// its resources.
func Store(ctx context.Context, conf config.Config) (store.Store, func(), error) {
	switch conf.Storage.Driver {
	case config.StorageDriverMemory:
		return store.NewMemory(), func() {}, nil
	case config.StorageDriverPostgres:
		db, err := Database(ctx, conf)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgres(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Storage.Driver)
	}
}

// HTTP creates the client used for outbound provider calls.
func HTTP(conf config.Config, logger *slog.Logger) *mHttp.HTTP {
	httpConfig := mHttp.DefaultConfig()
	httpConfig.Timeout = conf.Import.RequestTimeout
	httpConfig.RetryMax = conf.Import.RetryMax
	return mHttp.New(httpConfig, logger)
}

// Importer creates the import job, or returns nil when no ids file is
// configured.
func Importer(conf config.Config, st store.Store, logger *slog.Logger) *importer.Job {
	if logger == nil {
		logger = log.NullLogger()
	}
	if conf.Import.IDsPath == "" {
		logger.Info("no import ids path configured, imports are disabled")
		return nil
	}

	client := marmiton.New(HTTP(conf, logger), conf.Import.BaseURL)
	return importer.New(client, st, importer.Config{
		Concurrency:       conf.Import.Concurrency,
		RequestTimeout:    conf.Import.RequestTimeout,
		RequestsPerSecond: conf.Import.RequestsPerSecond,
	}, logger)
}
